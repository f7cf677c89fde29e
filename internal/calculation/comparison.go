package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nbsecon/catchment-calculator/internal/domain"
)

var million = decimal.NewFromInt(1_000_000)

// ComparisonTable assembles the strategic scenario comparison: the baseline
// row first (negative NPV, no BCR or reduction percentages), then each
// configuration in insertion order. NPVs are in EUR millions rounded to one
// decimal. Rows are not sorted; use RankByNPV for ranking.
func (ce *CalculationEngine) ComparisonTable() []domain.ComparisonRow {
	baseline := ce.ComputeBaseline()

	rows := make([]domain.ComparisonRow, 0, len(ce.Configs)+1)
	rows = append(rows, domain.ComparisonRow{
		Configuration: "Baseline (no NbS)",
		NPVMillions:   baseline.NPVDamages.Neg().Div(million).Round(1),
	})

	for _, cfg := range ce.Configs {
		bcr := cfg.BenefitCostRatio
		flood := cfg.FloodPeakReductionPct
		rows = append(rows, domain.ComparisonRow{
			Configuration:         cfg.Name,
			NPVMillions:           cfg.NetPresentValue.Div(million).Round(1),
			BenefitCostRatio:      &bcr,
			FloodReductionPct:     &flood,
			PollutionReductionPct: cfg.PollutionReductionPct,
			ExtremeResiliencePct:  cfg.ExtremeResiliencePct,
		})
	}
	return rows
}

// RankByNPV returns the configurations sorted descending by reported NPV.
// The sort is stable, so equal NPVs keep their original order. The input
// slice is not modified.
func RankByNPV(configs []domain.NbSConfig) []domain.NbSConfig {
	ranked := append([]domain.NbSConfig(nil), configs...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].NetPresentValue.GreaterThan(ranked[j].NetPresentValue)
	})
	return ranked
}

// ClimateEscalationMultipliers returns, per climate scenario, the ratio of
// that scenario's baseline damage NPV to the current climate's, rounded to
// two decimals. The current scenario's multiplier is exactly 1.00.
func (ce *CalculationEngine) ClimateEscalationMultipliers() map[string]decimal.Decimal {
	var current decimal.Decimal
	for _, sc := range ce.Climate {
		if sc.Name == "Current" {
			current = sc.BaselineNPVDamages
			break
		}
	}

	multipliers := make(map[string]decimal.Decimal, len(ce.Climate))
	for _, sc := range ce.Climate {
		multipliers[sc.Name] = sc.BaselineNPVDamages.Div(current).Round(2)
	}
	return multipliers
}

// ClimateEscalations pairs each scenario with its multiplier, preserving
// scenario order for reporting.
func (ce *CalculationEngine) ClimateEscalations() []domain.ClimateEscalation {
	multipliers := ce.ClimateEscalationMultipliers()
	out := make([]domain.ClimateEscalation, 0, len(ce.Climate))
	for _, sc := range ce.Climate {
		out = append(out, domain.ClimateEscalation{Scenario: sc, Multiplier: multipliers[sc.Name]})
	}
	return out
}

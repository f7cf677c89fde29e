package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nbsecon/catchment-calculator/internal/domain"
)

// The three territorial-competitiveness indicators are independent pure
// functions over fixed report inputs. Each returns both derived figures and,
// where the report states its own, the reported ones.

// BusinessInterruptionSavings computes, per strategy, the raw arithmetic
// saving (daily revenue x days avoided, per firm and across exposed firms)
// next to the report's stated per-firm and total figures. The report's stated
// values do not follow from its own inputs; both are preserved because
// flagging that inconsistency is part of the contract.
func BusinessInterruptionSavings(a domain.BusinessInterruptionAssumptions) []domain.BusinessInterruptionSaving {
	firms := decimal.NewFromInt(int64(a.ExposedFirms))

	out := make([]domain.BusinessInterruptionSaving, 0, len(a.InterruptionDays))
	for _, entry := range a.InterruptionDays {
		perFirm := a.DailyRevenuePerFirm.Mul(decimal.NewFromInt(int64(entry.Days)))
		out = append(out, domain.BusinessInterruptionSaving{
			Strategy:            entry.Strategy,
			DaysAvoidedPerYear:  entry.Days,
			DailyRevenuePerFirm: a.DailyRevenuePerFirm,
			ComputedPerFirm:     perFirm,
			ComputedTotal:       perFirm.Mul(firms),
			ReportedPerFirm:     a.ReportedPerFirm,
			ReportedTotalAnnual: a.ReportedTotalAnnual,
		})
	}
	return out
}

// PropertyValueProtection computes the property value protected by the flood
// probability reduction, as a low/high range over the capitalisation rates.
func PropertyValueProtection(exposedAssets decimal.Decimal, a domain.PropertyValueAssumptions) domain.PropertyValueProtection {
	reductionPP := a.BaselineFloodProbPct.Sub(a.MitigatedFloodProbPct)
	return domain.PropertyValueProtection{
		FloodProbReductionPP: reductionPP,
		ProtectedValueLow:    exposedAssets.Mul(reductionPP).Mul(a.CapitalisationRateLow),
		ProtectedValueHigh:   exposedAssets.Mul(reductionPP).Mul(a.CapitalisationRateHigh),
	}
}

// InsurancePremiumSavings computes the annual premium savings range across
// the catchment's insured properties.
func InsurancePremiumSavings(a domain.InsuranceAssumptions) domain.InsurancePremiumSavings {
	properties := decimal.NewFromInt(int64(a.PropertiesInCatchment))
	return domain.InsurancePremiumSavings{
		Properties:            a.PropertiesInCatchment,
		SavingPerPropertyLow:  a.SavingPerPropertyLow,
		SavingPerPropertyHigh: a.SavingPerPropertyHigh,
		TotalAnnualLow:        properties.Mul(a.SavingPerPropertyLow),
		TotalAnnualHigh:       properties.Mul(a.SavingPerPropertyHigh),
	}
}

package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nbsecon/catchment-calculator/internal/domain"
)

// Worked examples reproduced in the report's methodology section.
var damageExampleInputs = []struct {
	landUse string
	areaM2  int64
	depthM  float64
}{
	{"Residential", 10_000, 0.3},
	{"Commercial", 5_000, 0.5},
	{"Industrial", 8_000, 1.0},
	{"Infrastructure", 3_000, 1.5},
}

var productivityExampleDepths = []float64{0.3, 0.8, 2.0}

// productivityExampleGDP is the illustrative GDP in the flood zone used by the
// report's worked productivity examples.
var productivityExampleGDP = decimal.NewFromInt(500_000_000)

// RunAssessment evaluates the complete assessment: baseline, audits,
// comparison, climate escalation and indicators, assembled into one report
// for the presentation layer.
func (ce *CalculationEngine) RunAssessment() (*domain.AssessmentReport, error) {
	ce.Logger.Infof("running catchment assessment over %d years at %s discount rate",
		ce.Params.HorizonYears, ce.Params.DiscountRate)

	affordability, err := ce.UnitAffordability()
	if err != nil {
		return nil, err
	}

	baseline := ce.ComputeBaseline()

	damageExamples := make([]domain.DamageExample, 0, len(damageExampleInputs))
	for _, ex := range damageExampleInputs {
		area := decimal.NewFromInt(ex.areaM2)
		depth := decimal.NewFromFloat(ex.depthM)
		dmg, err := ce.DamageCalc.FloodDamage(ex.landUse, area, depth)
		if err != nil {
			return nil, err
		}
		damageExamples = append(damageExamples, domain.DamageExample{
			LandUse: ex.landUse,
			AreaM2:  area,
			DepthM:  depth,
			Damage:  dmg,
		})
	}

	productivityExamples := make([]domain.ProductivityExample, 0, len(productivityExampleDepths))
	for _, d := range productivityExampleDepths {
		depth := decimal.NewFromFloat(d)
		loss, err := ce.ProductivityCalc.ProductivityLoss(productivityExampleGDP, depth)
		if err != nil {
			return nil, err
		}
		productivityExamples = append(productivityExamples, domain.ProductivityExample{
			GDPInZone: productivityExampleGDP,
			DepthM:    depth,
			Loss:      loss,
		})
	}

	verifications, err := ce.VerifyAllConfigs()
	if err != nil {
		return nil, err
	}

	hybrid, err := ce.HybridBudgetBreakdown()
	if err != nil {
		return nil, err
	}

	return &domain.AssessmentReport{
		Parameters:             ce.Params,
		UnitAffordability:      affordability,
		Baseline:               baseline,
		Breakdown:              ce.BaselineCostBreakdown(baseline),
		StructuralLiabilityPct: ce.StructuralLiability(baseline),
		DamageExamples:         damageExamples,
		ProductivityExamples:   productivityExamples,
		Verifications:          verifications,
		HybridBudget:           hybrid,
		Comparison:             ce.ComparisonTable(),
		Climate:                ce.ClimateEscalations(),
		Interruption:           BusinessInterruptionSavings(DefaultInterruptionAssumptions()),
		PropertyProtection:     PropertyValueProtection(ce.Params.ExposedAssets, DefaultPropertyValueAssumptions()),
		InsuranceSavings:       InsurancePremiumSavings(DefaultInsuranceAssumptions()),
		Attractiveness:         AttractivenessIndex(),
		Ranked:                 RankByNPV(ce.Configs),
	}, nil
}

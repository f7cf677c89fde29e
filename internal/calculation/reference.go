package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nbsecon/catchment-calculator/internal/domain"
)

// Reference data reproduced from the source policy report. All tables are
// compiled in; the config package can substitute validated overrides.

// DefaultCatchmentParameters returns the model parameters table: a 25 km2
// catchment (50x50 grid of 100 m cells) with EUR 2.5bn of exposed assets and a
// EUR 10M intervention budget, assessed over 30 years at a 3% discount rate.
func DefaultCatchmentParameters() domain.CatchmentParameters {
	return domain.CatchmentParameters{
		AreaKm2:                decimal.NewFromInt(25),
		Population:             50000,
		ExposedAssets:          decimal.NewFromInt(2_500_000_000),
		BaselineFloodProb:      decimal.NewFromFloat(0.10), // 1-in-10 year
		BaselineNitrogenLoadKg: decimal.NewFromInt(12000),
		InterventionBudget:     decimal.NewFromInt(10_000_000),
		DiscountRate:           decimal.NewFromFloat(0.03),
		HorizonYears:           30,
		RestorationMultiplier:  decimal.NewFromFloat(2.5),
		ExpectedFloodEvents:    decimal.NewFromFloat(3.2),
	}
}

// DefaultDamageTable returns the depth-damage calibration per land use:
// asset density in EUR/m2 and damage fractions at the 0.5 m and 1.5 m
// benchmark depths.
func DefaultDamageTable() domain.DamageTable {
	return domain.DamageTable{
		"Residential": {
			LandUse:          "Residential",
			AssetDensity:     decimal.NewFromInt(800),
			DamageFraction05: decimal.NewFromFloat(0.25),
			DamageFraction15: decimal.NewFromFloat(0.60),
		},
		"Commercial": {
			LandUse:          "Commercial",
			AssetDensity:     decimal.NewFromInt(1500),
			DamageFraction05: decimal.NewFromFloat(0.35),
			DamageFraction15: decimal.NewFromFloat(0.75),
		},
		"Industrial": {
			LandUse:          "Industrial",
			AssetDensity:     decimal.NewFromInt(1200),
			DamageFraction05: decimal.NewFromFloat(0.30),
			DamageFraction15: decimal.NewFromFloat(0.70),
		},
		"Infrastructure": {
			LandUse:          "Infrastructure",
			AssetDensity:     decimal.NewFromInt(2000),
			DamageFraction05: decimal.NewFromFloat(0.40),
			DamageFraction15: decimal.NewFromFloat(0.80),
		},
	}
}

// DefaultProductivityTiers returns the depth-tiered disruption table. The
// last tier's ceiling is a sentinel so every depth matches a tier.
func DefaultProductivityTiers() []domain.ProductivityTier {
	return []domain.ProductivityTier{
		{DepthCeilingM: decimal.NewFromFloat(0.5), DisruptionFraction: decimal.NewFromFloat(0.05), DurationDays: 30},  // moderate
		{DepthCeilingM: decimal.NewFromFloat(1.5), DisruptionFraction: decimal.NewFromFloat(0.15), DurationDays: 90},  // severe
		{DepthCeilingM: decimal.NewFromInt(999), DisruptionFraction: decimal.NewFromFloat(0.25), DurationDays: 180}, // extreme
	}
}

// BuiltinUnitSpecs returns the NbS unit specifications table.
func BuiltinUnitSpecs() []domain.NbSUnitSpec {
	return []domain.NbSUnitSpec{
		{
			Name:               "Wetland",
			UnitSize:           "5 ha",
			StorageM3:          decimal.NewFromInt(15000),
			NitrogenRemovalPct: decimal.NewFromInt(50),
			ImplementationCost: decimal.NewFromInt(750_000),
			AnnualMaintenance:  decimal.NewFromInt(15000),
		},
		{
			Name:               "Riparian Buffer",
			UnitSize:           "1 km x 15 m",
			StorageM3:          decimal.NewFromInt(2000),
			NitrogenRemovalPct: decimal.NewFromInt(60),
			ImplementationCost: decimal.NewFromInt(30_000),
			AnnualMaintenance:  decimal.NewFromInt(2000),
		},
		{
			Name:               "Bioswale",
			UnitSize:           "0.1 ha",
			StorageM3:          decimal.NewFromInt(300),
			NitrogenRemovalPct: decimal.NewFromInt(65),
			ImplementationCost: decimal.NewFromInt(25_000),
			AnnualMaintenance:  decimal.NewFromInt(1500),
		},
		{
			Name:               "Green Corridor",
			UnitSize:           "2 ha",
			StorageM3:          decimal.NewFromInt(4000),
			NitrogenRemovalPct: decimal.NewFromInt(40),
			ImplementationCost: decimal.NewFromInt(200_000),
			AnnualMaintenance:  decimal.NewFromInt(8000),
		},
	}
}

// BuiltinConfigs returns the four strategic configurations with the report's
// stated performance, benefit and cost figures, in report order.
func BuiltinConfigs() []domain.NbSConfig {
	return []domain.NbSConfig{
		{
			Name:                       "Distributed Bioswales",
			UnitsDescription:           "400 bioswales",
			FloodPeakReductionPct:      decimal.NewFromInt(18),
			InundationAreaReductionPct: decimalPtr(decimal.NewFromInt(23)),
			ExtremeResiliencePct:       decimalPtr(decimal.NewFromInt(12)),
			PollutionReductionPct:      decimalPtr(decimal.NewFromInt(22)),
			DirectDamageAvoidedNPV:     decimal.NewFromInt(11_200_000),
			ProductivityAvoidedNPV:     decimal.NewFromInt(8_100_000),
			RestorationAvoidedNPV:      decimal.NewFromInt(28_000_000),
			TreatmentSavingsNPV:        decimal.Zero,
			TotalBenefitsNPV:           decimal.NewFromInt(47_300_000),
			ImplementationCost:         decimal.NewFromInt(10_000_000),
			MaintenanceCostNPV:         decimal.NewFromInt(9_300_000),
			NetPresentValue:            decimal.NewFromInt(28_000_000),
			BenefitCostRatio:           decimal.NewFromFloat(2.45),
			PaybackYears:               12,
		},
		{
			Name:                   "Riparian Buffer Network",
			UnitsDescription:       "333 km of buffers",
			FloodPeakReductionPct:  decimal.NewFromInt(21),
			ExtremeResiliencePct:   decimalPtr(decimal.NewFromInt(18)),
			PollutionReductionPct:  decimalPtr(decimal.NewFromInt(48)),
			DirectDamageAvoidedNPV: decimal.NewFromInt(13_700_000),
			ProductivityAvoidedNPV: decimal.NewFromInt(9_400_000),
			RestorationAvoidedNPV:  decimal.NewFromInt(34_300_000),
			TreatmentSavingsNPV:    decimal.NewFromInt(3_800_000),
			TotalBenefitsNPV:       decimal.NewFromInt(61_200_000),
			ImplementationCost:     decimal.NewFromInt(10_000_000),
			MaintenanceCostNPV:     decimal.NewFromInt(10_400_000),
			NetPresentValue:        decimal.NewFromInt(40_800_000),
			BenefitCostRatio:       decimal.NewFromFloat(3.00),
			PaybackYears:           9,
		},
		{
			Name:                   "Strategic Wetlands",
			UnitsDescription:       "13 wetlands (5 ha each)",
			FloodPeakReductionPct:  decimal.NewFromInt(35),
			ExtremeResiliencePct:   decimalPtr(decimal.NewFromInt(45)),
			PollutionReductionPct:  decimalPtr(decimal.NewFromInt(35)),
			DirectDamageAvoidedNPV: decimal.NewFromInt(19_800_000),
			ProductivityAvoidedNPV: decimal.NewFromInt(13_200_000),
			RestorationAvoidedNPV:  decimal.NewFromInt(49_500_000),
			TreatmentSavingsNPV:    decimal.Zero,
			TotalBenefitsNPV:       decimal.NewFromInt(82_500_000),
			ImplementationCost:     decimal.NewFromInt(10_000_000),
			MaintenanceCostNPV:     decimal.NewFromInt(7_800_000),
			NetPresentValue:        decimal.NewFromInt(64_700_000),
			BenefitCostRatio:       decimal.NewFromFloat(4.63),
			PaybackYears:           6,
		},
		{
			Name:                   "Hybrid Approach",
			UnitsDescription:       "5 wetlands + 100 bioswales + 50 km buffers",
			FloodPeakReductionPct:  decimal.NewFromInt(28),
			ExtremeResiliencePct:   decimalPtr(decimal.NewFromInt(32)),
			PollutionReductionPct:  decimalPtr(decimal.NewFromInt(41)),
			DirectDamageAvoidedNPV: decimal.NewFromInt(16_400_000),
			ProductivityAvoidedNPV: decimal.NewFromInt(11_300_000),
			RestorationAvoidedNPV:  decimal.NewFromInt(41_000_000),
			TreatmentSavingsNPV:    decimal.NewFromInt(2_600_000),
			TotalBenefitsNPV:       decimal.NewFromInt(71_300_000),
			ImplementationCost:     decimal.NewFromInt(10_000_000),
			MaintenanceCostNPV:     decimal.NewFromInt(8_900_000),
			NetPresentValue:        decimal.NewFromInt(52_400_000),
			BenefitCostRatio:       decimal.NewFromFloat(3.77),
			PaybackYears:           8,
		},
	}
}

// BuiltinClimateScenarios returns the three climate futures with their
// simulated baseline damage NPVs, current climate first.
func BuiltinClimateScenarios() []domain.ClimateScenario {
	return []domain.ClimateScenario{
		{
			Name:                  "Current",
			PrecipIntensityFactor: decimal.NewFromFloat(1.00),
			EventFreqFactor:       decimal.NewFromFloat(1.00), // 1-in-10 yr
			BaselineNPVDamages:    decimal.NewFromInt(124_200_000),
		},
		{
			Name:                  "Moderate Change",
			PrecipIntensityFactor: decimal.NewFromFloat(1.20),
			EventFreqFactor:       decimal.NewFromFloat(1.333), // 1-in-10 -> 1-in-7.5
			BaselineNPVDamages:    decimal.NewFromInt(178_000_000),
		},
		{
			Name:                  "Severe Change",
			PrecipIntensityFactor: decimal.NewFromFloat(1.40),
			EventFreqFactor:       decimal.NewFromFloat(2.00), // 1-in-10 -> 1-in-5
			BaselineNPVDamages:    decimal.NewFromInt(265_000_000),
		},
	}
}

// AttractivenessIndex returns the composite territorial attractiveness scores
// (0-100) per configuration, baseline first.
func AttractivenessIndex() []domain.AttractivenessScore {
	return []domain.AttractivenessScore{
		{Label: "Baseline (no NbS)", Score: 52},
		{Label: "Distributed Bioswales", Score: 64},
		{Label: "Riparian Buffers", Score: 67},
		{Label: "Strategic Wetlands", Score: 71},
		{Label: "Hybrid Approach", Score: 70},
	}
}

// DefaultInterruptionAssumptions returns the business-interruption indicator
// inputs: a typical SME with EUR 50k daily revenue, 50 exposed firms, and the
// report's stated per-firm/total savings (kept even though they disagree with
// the raw arithmetic).
func DefaultInterruptionAssumptions() domain.BusinessInterruptionAssumptions {
	return domain.BusinessInterruptionAssumptions{
		DailyRevenuePerFirm: decimal.NewFromInt(50_000),
		ExposedFirms:        50,
		InterruptionDays: []domain.InterruptionDaysEntry{
			{Strategy: "Strategic Wetlands", Days: 85},
			{Strategy: "Distributed Bioswales", Days: 35},
		},
		ReportedPerFirm:     decimal.NewFromInt(42_000),
		ReportedTotalAnnual: decimal.NewFromInt(2_100_000),
	}
}

// DefaultPropertyValueAssumptions returns the property-value indicator inputs
// for the Strategic Wetlands configuration (flood probability 10% -> 6.5%).
func DefaultPropertyValueAssumptions() domain.PropertyValueAssumptions {
	return domain.PropertyValueAssumptions{
		BaselineFloodProbPct:   decimal.NewFromFloat(10.0),
		MitigatedFloodProbPct:  decimal.NewFromFloat(6.5),
		CapitalisationRateLow:  decimal.NewFromFloat(0.005), // 0.5% per pp
		CapitalisationRateHigh: decimal.NewFromFloat(0.010), // 1.0% per pp
	}
}

// DefaultInsuranceAssumptions returns the insurance-premium indicator inputs.
func DefaultInsuranceAssumptions() domain.InsuranceAssumptions {
	return domain.InsuranceAssumptions{
		PropertiesInCatchment: 15000,
		SavingPerPropertyLow:  decimal.NewFromInt(120),
		SavingPerPropertyHigh: decimal.NewFromInt(180),
	}
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

package domain

import (
	"github.com/shopspring/decimal"
)

// ComparisonRow is one line of the strategic scenario comparison: the baseline
// first, then each configuration in insertion order. Optional fields are nil
// for the baseline, which has no BCR or reduction percentages.
type ComparisonRow struct {
	Configuration         string           `json:"configuration"`
	NPVMillions           decimal.Decimal  `json:"npv_millions"`
	BenefitCostRatio      *decimal.Decimal `json:"benefit_cost_ratio,omitempty"`
	FloodReductionPct     *decimal.Decimal `json:"flood_reduction_pct,omitempty"`
	PollutionReductionPct *decimal.Decimal `json:"pollution_reduction_pct,omitempty"`
	ExtremeResiliencePct  *decimal.Decimal `json:"extreme_resilience_pct,omitempty"`
}

// DamageExample is a worked flood-damage calculation included in the report
// for illustration.
type DamageExample struct {
	LandUse string          `json:"land_use"`
	AreaM2  decimal.Decimal `json:"area_m2"`
	DepthM  decimal.Decimal `json:"depth_m"`
	Damage  decimal.Decimal `json:"damage"`
}

// ProductivityExample is a worked productivity-loss calculation at one depth.
type ProductivityExample struct {
	GDPInZone decimal.Decimal `json:"gdp_in_zone"`
	DepthM    decimal.Decimal `json:"depth_m"`
	Loss      decimal.Decimal `json:"loss"`
}

// ClimateEscalation pairs a climate scenario with its damage-NPV multiplier
// relative to the current climate.
type ClimateEscalation struct {
	Scenario   ClimateScenario `json:"scenario"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// AssessmentReport is the full structured output consumed by the presentation
// layer. Every figure is computed by the engine; formatters only render.
type AssessmentReport struct {
	Parameters CatchmentParameters `json:"parameters"`

	UnitAffordability []UnitAffordability `json:"unit_affordability"`

	Baseline               BaselineResult    `json:"baseline"`
	Breakdown              BaselineBreakdown `json:"breakdown"`
	StructuralLiabilityPct decimal.Decimal   `json:"structural_liability_pct"`

	DamageExamples       []DamageExample       `json:"damage_examples"`
	ProductivityExamples []ProductivityExample `json:"productivity_examples"`

	Verifications []VerificationResult  `json:"verifications"`
	HybridBudget  HybridBudgetBreakdown `json:"hybrid_budget"`

	Comparison []ComparisonRow     `json:"comparison"`
	Climate    []ClimateEscalation `json:"climate"`

	Interruption       []BusinessInterruptionSaving `json:"interruption"`
	PropertyProtection PropertyValueProtection      `json:"property_protection"`
	InsuranceSavings   InsurancePremiumSavings      `json:"insurance_savings"`
	Attractiveness     []AttractivenessScore        `json:"attractiveness"`

	Ranked []NbSConfig `json:"ranked"`
}

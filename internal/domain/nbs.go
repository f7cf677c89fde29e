package domain

import (
	"github.com/shopspring/decimal"
)

// NbSUnitSpec describes one Nature-based Solution intervention type as costed
// in the source report. ImplementationCost must be positive: it is used as a
// divisor when sizing portfolios against a budget.
type NbSUnitSpec struct {
	Name               string          `yaml:"name" json:"name"`
	UnitSize           string          `yaml:"unit_size" json:"unit_size"` // descriptive, e.g. "5 ha"
	StorageM3          decimal.Decimal `yaml:"storage_m3" json:"storage_m3"`
	NitrogenRemovalPct decimal.Decimal `yaml:"nitrogen_removal_pct" json:"nitrogen_removal_pct"`
	ImplementationCost decimal.Decimal `yaml:"implementation_cost_eur" json:"implementation_cost_eur"`
	AnnualMaintenance  decimal.Decimal `yaml:"annual_maintenance_eur" json:"annual_maintenance_eur"`
}

// NbSConfig is one candidate mitigation portfolio with the report's stated
// performance, benefit and cost figures. NetPresentValue and BenefitCostRatio
// are the report's authoritative values; the engine re-derives both from the
// components and reports any gap, but never overwrites these fields.
type NbSConfig struct {
	Name             string `yaml:"name" json:"name"`
	UnitsDescription string `yaml:"units_description" json:"units_description"`

	FloodPeakReductionPct      decimal.Decimal  `yaml:"flood_peak_reduction_pct" json:"flood_peak_reduction_pct"`
	InundationAreaReductionPct *decimal.Decimal `yaml:"inundation_area_reduction_pct,omitempty" json:"inundation_area_reduction_pct,omitempty"`
	ExtremeResiliencePct       *decimal.Decimal `yaml:"extreme_resilience_pct,omitempty" json:"extreme_resilience_pct,omitempty"` // 1-in-50-yr peak reduction
	PollutionReductionPct      *decimal.Decimal `yaml:"pollution_reduction_pct,omitempty" json:"pollution_reduction_pct,omitempty"`

	DirectDamageAvoidedNPV decimal.Decimal `yaml:"direct_damage_avoided_npv" json:"direct_damage_avoided_npv"`
	ProductivityAvoidedNPV decimal.Decimal `yaml:"productivity_avoided_npv" json:"productivity_avoided_npv"`
	RestorationAvoidedNPV  decimal.Decimal `yaml:"restoration_avoided_npv" json:"restoration_avoided_npv"`
	TreatmentSavingsNPV    decimal.Decimal `yaml:"treatment_savings_npv" json:"treatment_savings_npv"`
	TotalBenefitsNPV       decimal.Decimal `yaml:"total_benefits_npv" json:"total_benefits_npv"`

	ImplementationCost decimal.Decimal `yaml:"implementation_cost" json:"implementation_cost"`
	MaintenanceCostNPV decimal.Decimal `yaml:"maintenance_cost_npv" json:"maintenance_cost_npv"`

	NetPresentValue  decimal.Decimal `yaml:"net_present_value" json:"net_present_value"`
	BenefitCostRatio decimal.Decimal `yaml:"benefit_cost_ratio" json:"benefit_cost_ratio"`
	PaybackYears     int             `yaml:"payback_years" json:"payback_years"`
}

// VerificationResult is the outcome of auditing one configuration's stated
// economics against its components. Produced per query, never persisted.
type VerificationResult struct {
	ConfigName  string          `json:"config_name"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	DerivedNPV  decimal.Decimal `json:"derived_npv"`
	ReportedNPV decimal.Decimal `json:"reported_npv"`
	NPVDelta    decimal.Decimal `json:"npv_delta"`
	DerivedBCR  decimal.Decimal `json:"derived_bcr"`
	ReportedBCR decimal.Decimal `json:"reported_bcr"`
}

// UnitAffordability pairs an intervention type with the whole-unit count the
// intervention budget can buy.
type UnitAffordability struct {
	Spec  NbSUnitSpec `json:"spec"`
	Units int64       `json:"units"`
}

// HybridBudgetBreakdown itemizes the implementation cost of the hybrid
// portfolio (wetlands + bioswales + buffers) against the budget.
type HybridBudgetBreakdown struct {
	WetlandsCost        decimal.Decimal `json:"wetlands_cost"`
	BioswalesCost       decimal.Decimal `json:"bioswales_cost"`
	BuffersCost         decimal.Decimal `json:"buffers_cost"`
	TotalImplementation decimal.Decimal `json:"total_implementation"`
	RemainingBudget     decimal.Decimal `json:"remaining_budget"`
}

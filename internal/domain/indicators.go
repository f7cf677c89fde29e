package domain

import (
	"github.com/shopspring/decimal"
)

// InterruptionDaysEntry records the business-interruption days one strategy
// avoids per year, per the source report.
type InterruptionDaysEntry struct {
	Strategy string `yaml:"strategy" json:"strategy"`
	Days     int    `yaml:"days" json:"days"`
}

// BusinessInterruptionAssumptions are the fixed report inputs behind the
// business-interruption indicator, including the report's own stated per-firm
// and total figures (which do not match the raw arithmetic; both are kept).
type BusinessInterruptionAssumptions struct {
	DailyRevenuePerFirm decimal.Decimal         `yaml:"daily_revenue_per_firm" json:"daily_revenue_per_firm"`
	ExposedFirms        int                     `yaml:"exposed_firms" json:"exposed_firms"`
	InterruptionDays    []InterruptionDaysEntry `yaml:"interruption_days" json:"interruption_days"`
	ReportedPerFirm     decimal.Decimal         `yaml:"reported_per_firm" json:"reported_per_firm"`
	ReportedTotalAnnual decimal.Decimal         `yaml:"reported_total_annual" json:"reported_total_annual"`
}

// BusinessInterruptionSaving is the per-strategy indicator output. Computed
// fields are the raw arithmetic cross-check; Reported fields are the report's
// independently stated values. The two need not agree.
type BusinessInterruptionSaving struct {
	Strategy            string          `json:"strategy"`
	DaysAvoidedPerYear  int             `json:"days_avoided_per_year"`
	DailyRevenuePerFirm decimal.Decimal `json:"daily_revenue_per_firm"`
	ComputedPerFirm     decimal.Decimal `json:"computed_per_firm"`
	ComputedTotal       decimal.Decimal `json:"computed_total"`
	ReportedPerFirm     decimal.Decimal `json:"reported_per_firm"`
	ReportedTotalAnnual decimal.Decimal `json:"reported_total_annual"`
}

// PropertyValueAssumptions are the fixed inputs behind the property-value
// protection indicator: flood-risk capitalisation reduces property values by
// 0.5-1.0% per percentage point of annual flood probability.
type PropertyValueAssumptions struct {
	BaselineFloodProbPct   decimal.Decimal `yaml:"baseline_flood_prob_pct" json:"baseline_flood_prob_pct"`
	MitigatedFloodProbPct  decimal.Decimal `yaml:"mitigated_flood_prob_pct" json:"mitigated_flood_prob_pct"`
	CapitalisationRateLow  decimal.Decimal `yaml:"capitalisation_rate_low" json:"capitalisation_rate_low"`
	CapitalisationRateHigh decimal.Decimal `yaml:"capitalisation_rate_high" json:"capitalisation_rate_high"`
}

// PropertyValueProtection is the property-value indicator output.
type PropertyValueProtection struct {
	FloodProbReductionPP decimal.Decimal `json:"flood_prob_reduction_pp"`
	ProtectedValueLow    decimal.Decimal `json:"protected_value_low"`
	ProtectedValueHigh   decimal.Decimal `json:"protected_value_high"`
}

// InsuranceAssumptions are the fixed inputs behind the insurance-premium
// indicator.
type InsuranceAssumptions struct {
	PropertiesInCatchment int             `yaml:"properties_in_catchment" json:"properties_in_catchment"`
	SavingPerPropertyLow  decimal.Decimal `yaml:"saving_per_property_low" json:"saving_per_property_low"`
	SavingPerPropertyHigh decimal.Decimal `yaml:"saving_per_property_high" json:"saving_per_property_high"`
}

// InsurancePremiumSavings is the insurance-premium indicator output.
type InsurancePremiumSavings struct {
	Properties            int             `json:"properties"`
	SavingPerPropertyLow  decimal.Decimal `json:"saving_per_property_low"`
	SavingPerPropertyHigh decimal.Decimal `json:"saving_per_property_high"`
	TotalAnnualLow        decimal.Decimal `json:"total_annual_low"`
	TotalAnnualHigh       decimal.Decimal `json:"total_annual_high"`
}

// AttractivenessScore is one row of the composite territorial attractiveness
// index (0-100), straight from the report.
type AttractivenessScore struct {
	Label string `yaml:"label" json:"label"`
	Score int    `yaml:"score" json:"score"`
}

package domain

import (
	"github.com/shopspring/decimal"
)

// CatchmentParameters groups the global assumptions every computation depends
// on. Passing them explicitly (rather than reading package-level constants)
// keeps each calculation testable in isolation.
type CatchmentParameters struct {
	AreaKm2                decimal.Decimal `yaml:"area_km2" json:"area_km2"`
	Population             int             `yaml:"population" json:"population"`
	ExposedAssets          decimal.Decimal `yaml:"exposed_assets_eur" json:"exposed_assets_eur"`
	BaselineFloodProb      decimal.Decimal `yaml:"baseline_flood_probability" json:"baseline_flood_probability"`
	BaselineNitrogenLoadKg decimal.Decimal `yaml:"baseline_nitrogen_load_kg" json:"baseline_nitrogen_load_kg"`
	InterventionBudget     decimal.Decimal `yaml:"intervention_budget_eur" json:"intervention_budget_eur"`
	DiscountRate           decimal.Decimal `yaml:"discount_rate" json:"discount_rate"`
	HorizonYears           int             `yaml:"horizon_years" json:"horizon_years"`

	// RestorationMultiplier scales direct damage into infrastructure
	// restoration cost. The source report quotes a 2-3x range and uses 2.5x.
	RestorationMultiplier decimal.Decimal `yaml:"restoration_multiplier" json:"restoration_multiplier"`

	// ExpectedFloodEvents is the expected count of major flood events over the
	// horizon. It is a stochastic-simulation output carried as data, not
	// probability times years.
	ExpectedFloodEvents decimal.Decimal `yaml:"expected_flood_events" json:"expected_flood_events"`
}

package domain

import (
	"github.com/shopspring/decimal"
)

// BaselineResult is the cost-of-inaction snapshot over the assessment horizon.
// It is constructed once per horizon/discount-rate pair and never mutated.
//
// NPVDamages is the report's stochastic-simulation figure and is the
// authoritative NPV. AnnuityCrossCheckNPV re-derives an NPV from the average
// annual total via the annuity formula; the two are expected to diverge and
// the divergence is a diagnostic, not an error.
type BaselineResult struct {
	ExpectedFloodEvents    decimal.Decimal `json:"expected_flood_events"`
	DirectFloodDamage30Yr  decimal.Decimal `json:"direct_flood_damage_30yr"`
	ProductivityLosses30Yr decimal.Decimal `json:"productivity_losses_30yr"`
	RestorationCosts30Yr   decimal.Decimal `json:"restoration_costs_30yr"`
	AnnualPollutionCost    decimal.Decimal `json:"annual_pollution_cost"`
	TotalUndiscounted30Yr  decimal.Decimal `json:"total_undiscounted_30yr"`
	NPVDamages             decimal.Decimal `json:"npv_damages"`
	AnnuityCrossCheckNPV   decimal.Decimal `json:"annuity_cross_check_npv"`
}

// BaselineBreakdown gives each cost category's share of the undiscounted
// 30-year total, in percent rounded to one decimal. The four shares sum to
// 100 within rounding.
type BaselineBreakdown struct {
	RestorationPct  decimal.Decimal `json:"restoration_pct"`
	DirectDamagePct decimal.Decimal `json:"direct_damage_pct"`
	ProductivityPct decimal.Decimal `json:"productivity_pct"`
	PollutionPct    decimal.Decimal `json:"pollution_pct"`
}

package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessInterruptionSavingsPreservesInconsistency(t *testing.T) {
	savings := BusinessInterruptionSavings(DefaultInterruptionAssumptions())
	require.Len(t, savings, 2)

	wetlands := savings[0]
	assert.Equal(t, "Strategic Wetlands", wetlands.Strategy)
	assert.Equal(t, 85, wetlands.DaysAvoidedPerYear)
	// Raw arithmetic: 50k/day * 85 days = 4.25M per firm, 212.5M across 50 firms.
	assert.True(t, wetlands.ComputedPerFirm.Equal(decimal.NewFromInt(4_250_000)), "got %s", wetlands.ComputedPerFirm)
	assert.True(t, wetlands.ComputedTotal.Equal(decimal.NewFromInt(212_500_000)), "got %s", wetlands.ComputedTotal)
	// The report's stated figures disagree with its own inputs; both are kept.
	assert.True(t, wetlands.ReportedPerFirm.Equal(decimal.NewFromInt(42_000)))
	assert.True(t, wetlands.ReportedTotalAnnual.Equal(decimal.NewFromInt(2_100_000)))
	assert.False(t, wetlands.ComputedPerFirm.Equal(wetlands.ReportedPerFirm))

	bioswales := savings[1]
	assert.Equal(t, "Distributed Bioswales", bioswales.Strategy)
	assert.Equal(t, 35, bioswales.DaysAvoidedPerYear)
	assert.True(t, bioswales.ComputedPerFirm.Equal(decimal.NewFromInt(1_750_000)), "got %s", bioswales.ComputedPerFirm)
}

func TestPropertyValueProtection(t *testing.T) {
	exposedAssets := decimal.NewFromInt(2_500_000_000)
	pvp := PropertyValueProtection(exposedAssets, DefaultPropertyValueAssumptions())

	// 10% -> 6.5% flood probability is a 3.5 pp reduction.
	assert.True(t, pvp.FloodProbReductionPP.Equal(decimal.NewFromFloat(3.5)), "got %s", pvp.FloodProbReductionPP)
	// 2.5bn * 3.5 * 0.5% = 43.75M; * 1.0% = 87.5M
	assert.True(t, pvp.ProtectedValueLow.Equal(decimal.NewFromInt(43_750_000)), "got %s", pvp.ProtectedValueLow)
	assert.True(t, pvp.ProtectedValueHigh.Equal(decimal.NewFromInt(87_500_000)), "got %s", pvp.ProtectedValueHigh)
}

func TestInsurancePremiumSavings(t *testing.T) {
	savings := InsurancePremiumSavings(DefaultInsuranceAssumptions())

	assert.Equal(t, 15000, savings.Properties)
	// 15,000 properties * EUR 120-180 per year.
	assert.True(t, savings.TotalAnnualLow.Equal(decimal.NewFromInt(1_800_000)), "got %s", savings.TotalAnnualLow)
	assert.True(t, savings.TotalAnnualHigh.Equal(decimal.NewFromInt(2_700_000)), "got %s", savings.TotalAnnualHigh)
}

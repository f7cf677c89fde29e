package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbsecon/catchment-calculator/internal/domain"
)

func TestComparisonTableOrderAndBaselineRow(t *testing.T) {
	ce := NewCalculationEngine()
	rows := ce.ComparisonTable()
	require.Len(t, rows, 5)

	baseline := rows[0]
	assert.Equal(t, "Baseline (no NbS)", baseline.Configuration)
	assert.True(t, baseline.NPVMillions.Equal(decimal.NewFromFloat(-124.2)), "got %s", baseline.NPVMillions)
	assert.Nil(t, baseline.BenefitCostRatio)
	assert.Nil(t, baseline.FloodReductionPct)
	assert.Nil(t, baseline.PollutionReductionPct)
	assert.Nil(t, baseline.ExtremeResiliencePct)

	// Configurations follow in insertion order, not sorted.
	expectedOrder := []string{
		"Distributed Bioswales",
		"Riparian Buffer Network",
		"Strategic Wetlands",
		"Hybrid Approach",
	}
	expectedNPV := []decimal.Decimal{
		decimal.NewFromFloat(28.0),
		decimal.NewFromFloat(40.8),
		decimal.NewFromFloat(64.7),
		decimal.NewFromFloat(52.4),
	}
	for i, row := range rows[1:] {
		assert.Equal(t, expectedOrder[i], row.Configuration)
		assert.True(t, row.NPVMillions.Equal(expectedNPV[i]),
			"%s: expected %s, got %s", row.Configuration, expectedNPV[i], row.NPVMillions)
		require.NotNil(t, row.BenefitCostRatio)
		require.NotNil(t, row.FloodReductionPct)
	}
}

func TestRankByNPV(t *testing.T) {
	ranked := RankByNPV(BuiltinConfigs())
	require.Len(t, ranked, 4)

	expected := []string{
		"Strategic Wetlands",
		"Hybrid Approach",
		"Riparian Buffer Network",
		"Distributed Bioswales",
	}
	for i, cfg := range ranked {
		assert.Equal(t, expected[i], cfg.Name, "rank %d", i+1)
	}
}

func TestRankByNPVStableOnTies(t *testing.T) {
	npv := decimal.NewFromInt(10_000_000)
	configs := []domain.NbSConfig{
		{Name: "first", NetPresentValue: npv},
		{Name: "second", NetPresentValue: npv},
		{Name: "third", NetPresentValue: npv},
	}

	ranked := RankByNPV(configs)
	require.Len(t, ranked, 3)
	assert.Equal(t, "first", ranked[0].Name)
	assert.Equal(t, "second", ranked[1].Name)
	assert.Equal(t, "third", ranked[2].Name)
}

func TestRankByNPVDoesNotMutateInput(t *testing.T) {
	configs := BuiltinConfigs()
	_ = RankByNPV(configs)
	assert.Equal(t, "Distributed Bioswales", configs[0].Name)
}

func TestClimateEscalationMultipliers(t *testing.T) {
	ce := NewCalculationEngine()
	mults := ce.ClimateEscalationMultipliers()
	require.Len(t, mults, 3)

	assert.True(t, mults["Current"].Equal(decimal.NewFromInt(1)), "got %s", mults["Current"])
	// 178.0 / 124.2 = 1.4331 -> 1.43
	assert.True(t, mults["Moderate Change"].Equal(decimal.NewFromFloat(1.43)), "got %s", mults["Moderate Change"])
	// 265.0 / 124.2 = 2.1336 -> 2.13
	assert.True(t, mults["Severe Change"].Equal(decimal.NewFromFloat(2.13)), "got %s", mults["Severe Change"])
}

func TestClimateEscalationsPreserveScenarioOrder(t *testing.T) {
	ce := NewCalculationEngine()
	escalations := ce.ClimateEscalations()
	require.Len(t, escalations, 3)

	assert.Equal(t, "Current", escalations[0].Scenario.Name)
	assert.Equal(t, "Moderate Change", escalations[1].Scenario.Name)
	assert.Equal(t, "Severe Change", escalations[2].Scenario.Name)
}

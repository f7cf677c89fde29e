package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloodDamageBenchmarkDepths(t *testing.T) {
	dc := NewDamageCalculator(DefaultDamageTable())

	tests := []struct {
		name     string
		landUse  string
		area     decimal.Decimal
		depth    decimal.Decimal
		expected decimal.Decimal
	}{
		{
			name:     "Zero depth causes zero damage",
			landUse:  "Residential",
			area:     decimal.NewFromInt(10000),
			depth:    decimal.Zero,
			expected: decimal.Zero,
		},
		{
			name:    "Residential at 0.5m benchmark",
			landUse: "Residential",
			area:    decimal.NewFromInt(10000),
			depth:   decimal.NewFromFloat(0.5),
			// 10000 * 800 * 0.25
			expected: decimal.NewFromInt(2_000_000),
		},
		{
			name:    "Commercial at 1.5m benchmark",
			landUse: "Commercial",
			area:    decimal.NewFromInt(5000),
			depth:   decimal.NewFromFloat(1.5),
			// 5000 * 1500 * 0.75
			expected: decimal.NewFromInt(5_625_000),
		},
		{
			name:    "Industrial at interpolation midpoint",
			landUse: "Industrial",
			area:    decimal.NewFromInt(8000),
			depth:   decimal.NewFromFloat(1.0),
			// pct = 0.30 + (0.70-0.30)*0.5 = 0.50; 8000 * 1200 * 0.50
			expected: decimal.NewFromInt(4_800_000),
		},
		{
			name:    "Residential on the ramp",
			landUse: "Residential",
			area:    decimal.NewFromInt(10000),
			depth:   decimal.NewFromFloat(0.3),
			// pct = 0.25 * 0.3/0.5 = 0.15; 10000 * 800 * 0.15
			expected: decimal.NewFromInt(1_200_000),
		},
		{
			name:     "Zero area causes zero damage",
			landUse:  "Infrastructure",
			area:     decimal.Zero,
			depth:    decimal.NewFromFloat(1.0),
			expected: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dmg, err := dc.FloodDamage(tt.landUse, tt.area, tt.depth)
			require.NoError(t, err)
			assert.True(t, dmg.Equal(tt.expected), "expected %s, got %s", tt.expected, dmg)
		})
	}
}

func TestFloodDamageCapAboveCalibration(t *testing.T) {
	dc := NewDamageCalculator(DefaultDamageTable())
	area := decimal.NewFromInt(3000)

	at15, err := dc.FloodDamage("Infrastructure", area, decimal.NewFromFloat(1.5))
	require.NoError(t, err)

	for _, depth := range []float64{1.6, 2.0, 3.5, 10.0} {
		dmg, err := dc.FloodDamage("Infrastructure", area, decimal.NewFromFloat(depth))
		require.NoError(t, err)
		assert.True(t, dmg.Equal(at15), "damage at depth %.1f should be capped at the 1.5m value", depth)
	}
}

func TestFloodDamageMonotonicOnRamp(t *testing.T) {
	dc := NewDamageCalculator(DefaultDamageTable())
	area := decimal.NewFromInt(10000)

	prev := decimal.NewFromInt(-1)
	for _, depth := range []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5} {
		dmg, err := dc.FloodDamage("Residential", area, decimal.NewFromFloat(depth))
		require.NoError(t, err)
		assert.False(t, dmg.IsNegative(), "damage must be non-negative at depth %.1f", depth)
		assert.True(t, dmg.GreaterThanOrEqual(prev), "damage must be non-decreasing at depth %.1f", depth)
		prev = dmg
	}
}

func TestLandUsesCoversCalibrationTable(t *testing.T) {
	dc := NewDamageCalculator(DefaultDamageTable())

	assert.ElementsMatch(t,
		[]string{"Residential", "Commercial", "Industrial", "Infrastructure"},
		dc.LandUses())
}

func TestFloodDamageUnknownLandUse(t *testing.T) {
	dc := NewDamageCalculator(DefaultDamageTable())

	_, err := dc.FloodDamage("Agricultural", decimal.NewFromInt(1000), decimal.NewFromFloat(0.5))
	assert.ErrorIs(t, err, ErrUnknownLandUse)
}

func TestFloodDamageRejectsNegativeInputs(t *testing.T) {
	dc := NewDamageCalculator(DefaultDamageTable())

	_, err := dc.FloodDamage("Residential", decimal.NewFromInt(-1), decimal.NewFromFloat(0.5))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = dc.FloodDamage("Residential", decimal.NewFromInt(1000), decimal.NewFromFloat(-0.5))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package timevalue

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAnnuityPresentValueZeroRate(t *testing.T) {
	tests := []struct {
		name     string
		annual   decimal.Decimal
		years    int
		expected decimal.Decimal
	}{
		{
			name:     "One year",
			annual:   decimal.NewFromInt(1000),
			years:    1,
			expected: decimal.NewFromInt(1000),
		},
		{
			name:     "Thirty years",
			annual:   decimal.NewFromInt(42000),
			years:    30,
			expected: decimal.NewFromInt(1260000),
		},
		{
			name:     "Fractional annual value",
			annual:   decimal.NewFromFloat(1234.56),
			years:    10,
			expected: decimal.NewFromFloat(12345.6),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pv := AnnuityPresentValue(tt.annual, decimal.Zero, tt.years)
			assert.True(t, pv.Equal(tt.expected),
				"expected %s, got %s", tt.expected, pv)
		})
	}
}

func TestAnnuityPresentValueDiscounted(t *testing.T) {
	rate := decimal.NewFromFloat(0.03)

	// The 30-year annuity factor at 3% is 19.60044...
	factor := AnnuityFactor(rate, 30)
	expected := decimal.NewFromFloat(19.6004)
	assert.True(t, factor.Sub(expected).Abs().LessThan(decimal.NewFromFloat(0.0001)),
		"expected factor ~%s, got %s", expected, factor)

	// PV of a discounted annuity is always below the undiscounted total.
	annual := decimal.NewFromInt(1000000)
	pv := AnnuityPresentValue(annual, rate, 30)
	assert.True(t, pv.LessThan(annual.Mul(decimal.NewFromInt(30))))
	assert.True(t, pv.IsPositive())
}

func TestAnnuityPresentValueSingleYear(t *testing.T) {
	// One year-end payment is just a lump sum discounted one year.
	rate := decimal.NewFromFloat(0.05)
	annual := decimal.NewFromInt(10000)

	annuity := AnnuityPresentValue(annual, rate, 1)
	lump := LumpSumPresentValue(annual, 1, rate)
	assert.True(t, annuity.Sub(lump).Abs().LessThan(decimal.NewFromFloat(0.000001)),
		"1-year annuity %s should equal 1-year lump sum %s", annuity, lump)
}

func TestLumpSumPresentValue(t *testing.T) {
	rate := decimal.NewFromFloat(0.03)

	tests := []struct {
		name     string
		future   decimal.Decimal
		year     int
		expected decimal.Decimal
	}{
		{
			name:     "Year zero is undiscounted",
			future:   decimal.NewFromInt(500000),
			year:     0,
			expected: decimal.NewFromInt(500000),
		},
		{
			name:     "One year at 3%",
			future:   decimal.NewFromInt(103000),
			year:     1,
			expected: decimal.NewFromInt(100000),
		},
		{
			name:     "Ten years at 3%",
			future:   decimal.NewFromInt(1000000),
			year:     10,
			expected: decimal.NewFromFloat(744093.91),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pv := LumpSumPresentValue(tt.future, tt.year, rate)
			assert.True(t, pv.Sub(tt.expected).Abs().LessThan(decimal.NewFromFloat(0.01)),
				"expected ~%s, got %s", tt.expected, pv)
		})
	}
}

func TestLumpSumDecreasesWithYear(t *testing.T) {
	rate := decimal.NewFromFloat(0.03)
	future := decimal.NewFromInt(1000000)

	prev := LumpSumPresentValue(future, 0, rate)
	for year := 1; year <= 30; year++ {
		pv := LumpSumPresentValue(future, year, rate)
		assert.True(t, pv.LessThan(prev), "PV should fall as year increases (year %d)", year)
		prev = pv
	}
}

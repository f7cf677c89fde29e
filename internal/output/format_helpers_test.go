package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"zero", decimal.Zero, "€0.00"},
		{"small", decimal.NewFromInt(950), "€950.00"},
		{"thousands", decimal.NewFromInt(42000), "€42,000.00"},
		{"millions", decimal.NewFromInt(47_320_000), "€47,320,000.00"},
		{"fractional", decimal.NewFromFloat(1234.5), "€1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatMillions(t *testing.T) {
	assert.Equal(t, "€124.2M", FormatMillions(decimal.NewFromInt(124_200_000)))
	assert.Equal(t, "€0.0M", FormatMillions(decimal.Zero))
	assert.Equal(t, "€-64.7M", FormatMillions(decimal.NewFromInt(-64_700_000)))
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "10.00%", FormatPercentage(decimal.NewFromInt(10)))
	assert.Equal(t, "0.17%", FormatPercentage(decimal.NewFromFloat(0.1656).Round(2)))
}

func TestFormatOptional(t *testing.T) {
	assert.Nil(t, formatOptional(nil, 2))

	v := decimal.NewFromFloat(4.625)
	got := formatOptional(&v, 2)
	if assert.NotNil(t, got) {
		assert.Equal(t, "4.63", *got)
	}
}

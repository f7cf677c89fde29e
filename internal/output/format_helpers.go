package output

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as EUR currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return "€" + groupThousands(amount.StringFixed(2)) }

// FormatMillions formats a decimal EUR amount as millions with 1 decimal.
func FormatMillions(amount decimal.Decimal) string {
	return "€" + amount.Div(decimal.NewFromInt(1_000_000)).StringFixed(1) + "M"
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// groupThousands inserts thousand separators into the integer part of a
// plain decimal string ("-1234567.89" -> "-1,234,567.89").
func groupThousands(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	intPart := s
	frac := ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i:]
			break
		}
	}
	if len(intPart) > 3 {
		var out []byte
		for i, c := range []byte(intPart) {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				out = append(out, ',')
			}
			out = append(out, c)
		}
		intPart = string(out)
	}
	if neg {
		return "-" + intPart + frac
	}
	return intPart + frac
}

func int64ToString(i int64) string { return strconv.FormatInt(i, 10) }

var hundredDec = decimal.NewFromInt(100)

// formatOptional renders a nilable decimal at fixed precision; nil stays nil
// so callers can substitute a placeholder.
func formatOptional(v *decimal.Decimal, places int32) *string {
	if v == nil {
		return nil
	}
	s := v.StringFixed(places)
	return &s
}

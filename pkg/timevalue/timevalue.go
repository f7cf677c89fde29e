// Package timevalue provides present-value arithmetic for level annual cash
// flows and single future cash flows, using decimal arithmetic throughout.
package timevalue

import (
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// AnnuityPresentValue returns the present value of annualValue paid at the end
// of each year for years years, discounted at rate.
//
// A zero rate returns annualValue * years, the limit of the annuity formula as
// the rate approaches zero. years must be a positive integer. Negative rates
// are not defined; the caller is responsible for not passing one.
func AnnuityPresentValue(annualValue, rate decimal.Decimal, years int) decimal.Decimal {
	if rate.IsZero() {
		return annualValue.Mul(decimal.NewFromInt(int64(years)))
	}
	// annualValue * (1 - (1+rate)^-years) / rate
	growth := one.Add(rate).Pow(decimal.NewFromInt(int64(years)))
	return annualValue.Mul(one.Sub(one.Div(growth))).Div(rate)
}

// LumpSumPresentValue returns the present value of futureValue received in
// year year (year 0 meaning today), discounted at rate.
func LumpSumPresentValue(futureValue decimal.Decimal, year int, rate decimal.Decimal) decimal.Decimal {
	if year == 0 {
		return futureValue
	}
	return futureValue.Div(one.Add(rate).Pow(decimal.NewFromInt(int64(year))))
}

// AnnuityFactor returns the present value of a one-unit annual cash flow over
// years years at rate. Useful for converting an annual figure to an NPV
// without repeating the annuity arithmetic.
func AnnuityFactor(rate decimal.Decimal, years int) decimal.Decimal {
	return AnnuityPresentValue(one, rate, years)
}

package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nbsecon/catchment-calculator/internal/domain"
)

var (
	depthRampTop = decimal.NewFromFloat(0.5)
	depthCapTop  = decimal.NewFromFloat(1.5)
)

// DamageCalculator evaluates the depth-damage curve for each land-use
// category. The benchmark damage ratios exist only at 0.5 m and 1.5 m, so the
// curve interpolates between them and extrapolates deterministically outside
// the calibration range.
type DamageCalculator struct {
	table domain.DamageTable
}

// NewDamageCalculator creates a damage calculator over the given table.
func NewDamageCalculator(table domain.DamageTable) *DamageCalculator {
	return &DamageCalculator{table: table}
}

// FloodDamage returns the direct damage in EUR for floodedArea square metres
// of the given land use inundated to depth metres.
//
// The damage fraction ramps linearly from 0 at depth 0 to the 0.5 m benchmark,
// interpolates linearly between the 0.5 m and 1.5 m benchmarks, and is capped
// at the 1.5 m benchmark above that (damage does not grow further).
func (dc *DamageCalculator) FloodDamage(landUse string, floodedArea, depth decimal.Decimal) (decimal.Decimal, error) {
	entry, ok := dc.table[landUse]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownLandUse, landUse)
	}
	if floodedArea.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: flooded area %s is negative", ErrInvalidInput, floodedArea)
	}
	if depth.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: depth %s is negative", ErrInvalidInput, depth)
	}

	var pct decimal.Decimal
	switch {
	case depth.LessThanOrEqual(depthRampTop):
		pct = entry.DamageFraction05.Mul(depth.Div(depthRampTop))
	case depth.LessThanOrEqual(depthCapTop):
		// Benchmarks are 1 m apart, so the interpolation slope is the raw
		// fraction difference.
		span := entry.DamageFraction15.Sub(entry.DamageFraction05)
		pct = entry.DamageFraction05.Add(span.Mul(depth.Sub(depthRampTop)))
	default:
		pct = entry.DamageFraction15
	}

	return floodedArea.Mul(entry.AssetDensity).Mul(pct), nil
}

// LandUses returns the known land-use categories.
func (dc *DamageCalculator) LandUses() []string {
	uses := make([]string, 0, len(dc.table))
	for lu := range dc.table {
		uses = append(uses, lu)
	}
	return uses
}

package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nbsecon/catchment-calculator/internal/domain"
)

var daysPerYear = decimal.NewFromInt(365)

// ProductivityCalculator evaluates depth-tiered productivity losses. Tiers are
// scanned in order and the first ceiling at or above the depth wins; the last
// tier's ceiling is an effectively unbounded sentinel, so a depth without a
// match is a table defect, not an input error.
type ProductivityCalculator struct {
	tiers []domain.ProductivityTier
}

// NewProductivityCalculator creates a productivity calculator over the given
// tier list. Ceilings must be strictly increasing.
func NewProductivityCalculator(tiers []domain.ProductivityTier) (*ProductivityCalculator, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: no productivity tiers", ErrInvalidInput)
	}
	for i := 1; i < len(tiers); i++ {
		if !tiers[i].DepthCeilingM.GreaterThan(tiers[i-1].DepthCeilingM) {
			return nil, fmt.Errorf("%w: tier ceilings must be strictly increasing (tier %d)", ErrInvalidInput, i)
		}
	}
	return &ProductivityCalculator{tiers: tiers}, nil
}

// ProductivityLoss returns the productivity loss for one flood event of the
// given depth: gdpInZone * disruption fraction * duration/365.
func (pc *ProductivityCalculator) ProductivityLoss(gdpInZone, depth decimal.Decimal) (decimal.Decimal, error) {
	if depth.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: depth %s is negative", ErrInvalidInput, depth)
	}
	tier := pc.tiers[len(pc.tiers)-1]
	for _, t := range pc.tiers {
		if depth.LessThanOrEqual(t.DepthCeilingM) {
			tier = t
			break
		}
	}
	days := decimal.NewFromInt(int64(tier.DurationDays))
	return gdpInZone.Mul(tier.DisruptionFraction).Mul(days.Div(daysPerYear)), nil
}

// ExpectedAnnualLoss is the simple expected-loss illustration from the
// report's introduction: GDP in the flood zone times annual flood probability
// times average impact factor.
func ExpectedAnnualLoss(gdpFloodZone, floodProb, impactFactor decimal.Decimal) decimal.Decimal {
	return gdpFloodZone.Mul(floodProb).Mul(impactFactor)
}

package calculation

import "errors"

var (
	// ErrUnknownLandUse is returned when a damage lookup references a land-use
	// category absent from the damage table. There is no silent default.
	ErrUnknownLandUse = errors.New("unknown land-use category")

	// ErrZeroCost is returned when a benefit-cost ratio would divide by a zero
	// total cost.
	ErrZeroCost = errors.New("total cost is zero")

	// ErrInvalidInput is returned for caller contract violations: negative
	// depths or areas, non-positive unit costs.
	ErrInvalidInput = errors.New("invalid input")
)

package costgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for costgrid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("costgrid: input grid must have at least one row and one column")

	// ErrMalformedGrid is wrapped by every structural or value error below,
	// so callers can test for any malformed input with a single errors.Is.
	ErrMalformedGrid = errors.New("costgrid: malformed grid")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)

	// ErrCostOutOfRange indicates a cell value below zero or above MaxCost.
	ErrCostOutOfRange = fmt.Errorf("%w: cell cost out of range", ErrMalformedGrid)

	// ErrCostOverflow indicates costs large enough that a route total
	// could overflow int.
	ErrCostOverflow = fmt.Errorf("%w: cell costs too large for the grid size", ErrMalformedGrid)

	// ErrBadDigit indicates a text cell that is not in '0'..'9'.
	ErrBadDigit = fmt.Errorf("%w: cell is not an ASCII digit", ErrMalformedGrid)
)

// DefaultMaxCost is the largest value a single digit can express.
const DefaultMaxCost = 9

// Options configures grid validation.
//
// MaxCost – inclusive upper bound for every cell value. Must be ≥ 0.
type Options struct {
	MaxCost int
}

// Option represents a functional option for configuring grid construction.
type Option func(*Options)

// WithMaxCost overrides the inclusive upper bound on cell values.
// The returned option panics when applied with a negative bound.
// New still rejects values whose route totals could overflow int
// (ErrCostOverflow), whatever the bound.
func WithMaxCost(max int) Option {
	return func(o *Options) {
		if max < 0 {
			panic("costgrid: MaxCost must be non-negative")
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns Options with MaxCost = DefaultMaxCost.
func DefaultOptions() Options {
	return Options{MaxCost: DefaultMaxCost}
}

// Grid is an immutable Width×Height matrix of traversal costs.
// cells is stored row-major: cells[y*width+x].
type Grid struct {
	width, height int
	cells         []int
}

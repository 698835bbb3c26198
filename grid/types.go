package grid

import (
	"errors"
	"fmt"
)

// ErrMalformedGrid is the umbrella for every grid construction failure.
var ErrMalformedGrid = errors.New("grid: malformed grid")

// Sentinel errors for grid construction. Each one wraps ErrMalformedGrid.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: input grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrNegativeCost indicates a cell holding a negative cost.
	ErrNegativeCost = fmt.Errorf("%w: cell cost must be non-negative", ErrMalformedGrid)
	// ErrCostOutOfRange indicates a cell above the configured maximum cost.
	ErrCostOutOfRange = fmt.Errorf("%w: cell cost exceeds maximum", ErrMalformedGrid)
	// ErrBadCharacter indicates a non-digit character in parsed text.
	ErrBadCharacter = fmt.Errorf("%w: cell is not an ASCII digit", ErrMalformedGrid)
)

// Pos addresses a single cell. Row grows downwards, Col grows to the right.
type Pos struct {
	Row, Col int
}

// Add returns p shifted by d.
func (p Pos) Add(d Pos) Pos {
	return Pos{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Scale returns p multiplied component-wise by n.
func (p Pos) Scale(n int) Pos {
	return Pos{Row: p.Row * n, Col: p.Col * n}
}

// String formats p as "row,col".
func (p Pos) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Options holds construction parameters for New.
type Options struct {
	// MaxCost, if ≥ 0, rejects any cell whose cost exceeds it.
	// A negative value disables the check.
	MaxCost int64
}

// Option configures New.
type Option func(*Options)

// WithMaxCost bounds every cell cost to [0, max].
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		o.MaxCost = max
	}
}

// DefaultOptions returns Options with no upper cost bound.
func DefaultOptions() Options {
	return Options{MaxCost: -1}
}

// Grid is an immutable rectangular array of cell costs.
// costs[Index(p)] holds the cost of entering cell p.
type Grid struct {
	height, width int
	costs         []int64
}

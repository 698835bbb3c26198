// Package grid provides the immutable cost grid searched by package search.
//
// Costs are stored row-major in one slice so that a cell index doubles as a
// dense key for per-cell bookkeeping (visited bits, parent links).
package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNegativeCost for a
// negative cell and ErrCostOutOfRange for a cell above WithMaxCost.
// Algorithmic complexity: O(W×H) time and memory.
func New(values [][]int64, opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	costs := make([]int64, 0, h*w)
	for y, row := range values {
		for x, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("%w: cell %d,%d = %d", ErrNegativeCost, y, x, c)
			}
			if cfg.MaxCost >= 0 && c > cfg.MaxCost {
				return nil, fmt.Errorf("%w: cell %d,%d = %d > %d", ErrCostOutOfRange, y, x, c, cfg.MaxCost)
			}
			costs = append(costs, c)
		}
	}

	return &Grid{height: h, width: w, costs: costs}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Cells returns Height×Width.
func (g *Grid) Cells() int { return len(g.costs) }

// Start is the top-left cell.
func (g *Grid) Start() Pos { return Pos{} }

// Goal is the bottom-right cell.
func (g *Grid) Goal() Pos { return Pos{Row: g.height - 1, Col: g.width - 1} }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Cost returns the cost of entering cell p.
// It panics if p is out of bounds; callers filter with InBounds first.
func (g *Grid) Cost(p Pos) int64 {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: position %s out of bounds %dx%d", p, g.height, g.width))
	}

	return g.costs[g.Index(p)]
}

// Index maps p to its row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) Index(p Pos) int {
	return p.Row*g.width + p.Col
}

// Coordinate converts a row-major index back to a Pos.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Pos {
	return Pos{Row: idx / g.width, Col: idx % g.width}
}

// Rows returns a fresh copy of the costs as a 2D slice.
func (g *Grid) Rows() [][]int64 {
	rows := make([][]int64, g.height)
	for y := range rows {
		rows[y] = make([]int64, g.width)
		copy(rows[y], g.costs[y*g.width:(y+1)*g.width])
	}

	return rows
}

// String renders the grid as digit text, one row per line.
// Grids holding any cost above 9 are rendered as space-separated numbers.
func (g *Grid) String() string {
	digits := true
	for _, c := range g.costs {
		if c > 9 {
			digits = false
			break
		}
	}

	var sb strings.Builder
	sb.Grow(len(g.costs) + g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.costs[y*g.width+x]
			if digits {
				sb.WriteByte(byte('0' + c))
				continue
			}
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatInt(c, 10))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

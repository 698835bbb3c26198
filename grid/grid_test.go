package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged or out-of-range inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int64
		opts   []grid.Option
		err    error
	}{
		{"EmptyRows", [][]int64{}, nil, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int64{{}}, nil, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int64{{1, 2}, {3}}, nil, grid.ErrNonRectangular},
		{"Negative", [][]int64{{1, -2}}, nil, grid.ErrNegativeCost},
		{"AboveMax", [][]int64{{1, 12}}, []grid.Option{grid.WithMaxCost(9)}, grid.ErrCostOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.values, tc.opts...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "New(%v) error = %v; want %v", tc.values, err, tc.err)
			assert.True(t, errors.Is(err, grid.ErrMalformedGrid), "every construction error is a malformed grid")
		})
	}
}

// TestNew_DeepCopy ensures later mutation of the input does not leak into the grid.
func TestNew_DeepCopy(t *testing.T) {
	values := [][]int64{{1, 2}, {3, 4}}
	g, err := grid.New(values)
	require.NoError(t, err)

	values[0][0] = 9
	assert.Equal(t, int64(1), g.Cost(grid.Pos{}))

	rows := g.Rows()
	rows[1][1] = 7
	assert.Equal(t, int64(4), g.Cost(grid.Pos{Row: 1, Col: 1}))
}

// TestNew_LargeCosts accepts any bounded non-negative integer.
func TestNew_LargeCosts(t *testing.T) {
	g, err := grid.New([][]int64{{0, 1000}, {42, 7}}, grid.WithMaxCost(1000))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), g.Cost(grid.Pos{Row: 0, Col: 1}))
	assert.Equal(t, "0 1000\n42 7\n", g.String())
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New([][]int64{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)

	for _, p := range []grid.Pos{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%s)", p)
	}
	for _, p := range []grid.Pos{{0, -1}, {0, 3}, {2, 1}, {-1, 2}} {
		assert.False(t, g.InBounds(p), "InBounds(%s)", p)
	}
}

// TestCost_PanicsOutOfBounds documents the out-of-bounds contract.
func TestCost_PanicsOutOfBounds(t *testing.T) {
	g, err := grid.New([][]int64{{1}})
	require.NoError(t, err)
	assert.Panics(t, func() { g.Cost(grid.Pos{Row: 1}) })
}

// TestIndexCoordinate round-trips every cell of a 3×4 grid.
func TestIndexCoordinate(t *testing.T) {
	g, err := grid.New([][]int64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 0, 1, 2},
	})
	require.NoError(t, err)
	require.Equal(t, 12, g.Cells())

	for idx := 0; idx < g.Cells(); idx++ {
		p := g.Coordinate(idx)
		assert.Equal(t, idx, g.Index(p))
	}
	assert.Equal(t, grid.Pos{Row: 2, Col: 3}, g.Goal())
	assert.Equal(t, grid.Pos{}, g.Start())
	assert.Equal(t, int64(7), g.Cost(grid.Pos{Row: 1, Col: 2}))
}

func TestPos(t *testing.T) {
	p := grid.Pos{Row: 2, Col: 3}
	assert.Equal(t, grid.Pos{Row: 1, Col: 5}, p.Add(grid.Pos{Row: -1, Col: 2}))
	assert.Equal(t, grid.Pos{Row: 8, Col: 12}, p.Scale(4))
	assert.Equal(t, "2,3", p.String())
}

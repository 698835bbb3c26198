package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/search"
)

func TestDirection_Opposite(t *testing.T) {
	pairs := [][2]search.Direction{
		{search.North, search.South},
		{search.East, search.West},
	}
	for _, p := range pairs {
		assert.Equal(t, p[1], p[0].Opposite())
		assert.Equal(t, p[0], p[1].Opposite())
		assert.True(t, search.IsOpposite(p[0], p[1]))
		assert.True(t, search.IsOpposite(p[1], p[0]))
		assert.False(t, search.IsOpposite(p[0], p[0]))
	}
	assert.Equal(t, search.None, search.None.Opposite())
	assert.False(t, search.IsOpposite(search.None, search.None))
	assert.False(t, search.IsOpposite(search.None, search.North))
}

func TestDirection_Perpendiculars(t *testing.T) {
	assert.Equal(t, [2]search.Direction{search.East, search.West}, search.North.Perpendiculars())
	assert.Equal(t, [2]search.Direction{search.East, search.West}, search.South.Perpendiculars())
	assert.Equal(t, [2]search.Direction{search.North, search.South}, search.East.Perpendiculars())
	assert.Equal(t, [2]search.Direction{search.North, search.South}, search.West.Perpendiculars())
	assert.Equal(t, [2]search.Direction{search.None, search.None}, search.None.Perpendiculars())

	for _, d := range []search.Direction{search.North, search.East, search.South, search.West} {
		for _, p := range d.Perpendiculars() {
			assert.NotEqual(t, d, p)
			assert.False(t, search.IsOpposite(d, p))
		}
	}
}

func TestDirection_Delta(t *testing.T) {
	assert.Equal(t, grid.Pos{Row: -1}, search.North.Delta())
	assert.Equal(t, grid.Pos{Row: 1}, search.South.Delta())
	assert.Equal(t, grid.Pos{Col: 1}, search.East.Delta())
	assert.Equal(t, grid.Pos{Col: -1}, search.West.Delta())
	assert.Equal(t, grid.Pos{}, search.None.Delta())

	for _, d := range []search.Direction{search.North, search.East, search.South, search.West} {
		assert.Equal(t, grid.Pos{}, d.Delta().Add(d.Opposite().Delta()), "%s + opposite", d)
	}
}

func TestDirection_Strings(t *testing.T) {
	assert.Equal(t, "north", search.North.String())
	assert.Equal(t, "none", search.None.String())
	assert.Equal(t, byte('>'), search.East.Arrow())
	assert.Equal(t, byte('v'), search.South.Arrow())
	assert.Equal(t, byte('<'), search.West.Arrow())
	assert.Equal(t, byte('^'), search.North.Arrow())
}

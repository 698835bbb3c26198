package search

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/grid"
)

// TestFrontier_PopsAscending pushes random costs and checks extraction order.
func TestFrontier_PopsAscending(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	var f frontier
	for i := 0; i < 500; i++ {
		f.push(candidate{cost: int64(r.Intn(100)), parent: -1})
	}

	prev := int64(-1)
	n := 0
	for {
		c, ok := f.popMin()
		if !ok {
			break
		}
		require.GreaterOrEqual(t, c.cost, prev)
		prev = c.cost
		n++
	}
	assert.Equal(t, 500, n)
}

func TestFrontier_EmptyPop(t *testing.T) {
	var f frontier
	_, ok := f.popMin()
	assert.False(t, ok)
}

// TestFrontier_Interleaved mixes pushes and pops the way the driver does.
func TestFrontier_Interleaved(t *testing.T) {
	var f frontier
	f.push(candidate{cost: 5})
	f.push(candidate{cost: 1})
	c, _ := f.popMin()
	assert.Equal(t, int64(1), c.cost)
	f.push(candidate{cost: 3})
	f.push(candidate{cost: 7})
	c, _ = f.popMin()
	assert.Equal(t, int64(3), c.cost)
	c, _ = f.popMin()
	assert.Equal(t, int64(5), c.cost)
	assert.Equal(t, 1, f.Len())
}

func TestVisitedSet_KeysAreDenseAndInvertible(t *testing.T) {
	const h, w, maxRun = 3, 4, 10
	v := newVisitedSet(h*w, w, maxRun)
	seen := make(map[int]bool)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			for d := None; d <= West; d++ {
				for run := 0; run <= maxRun; run++ {
					s := State{Pos: grid.Pos{Row: row, Col: col}, Dir: d, Run: run}
					k := v.key(s)
					require.False(t, seen[k], "duplicate key %d for %+v", k, s)
					seen[k] = true
					require.Less(t, k, len(v.bits)*64)
					assert.Equal(t, s, v.state(k))
				}
			}
		}
	}
	assert.Len(t, seen, h*w*numDirections*(maxRun+1))
}

func TestVisitedSet_Mark(t *testing.T) {
	v := newVisitedSet(9, 3, 3)
	a := State{Pos: grid.Pos{Row: 1, Col: 2}, Dir: East, Run: 3}
	b := State{Pos: grid.Pos{Row: 1, Col: 2}, Dir: East, Run: 2}

	assert.False(t, v.isVisited(a))
	assert.True(t, v.markVisited(a))
	assert.False(t, v.markVisited(a), "second mark is not new")
	assert.True(t, v.isVisited(a))
	assert.False(t, v.isVisited(b), "run length is part of identity")
	assert.True(t, v.markVisited(b))

	popcount := 0
	for _, w := range v.bits {
		popcount += bits.OnesCount64(w)
	}
	assert.Equal(t, 2, v.len())
	assert.Equal(t, v.len(), popcount)
}

// TestRunner_ExpandedMatchesVisited checks the counters agree with the bitset.
func TestRunner_ExpandedMatchesVisited(t *testing.T) {
	g, err := grid.Parse([]byte("1111\n1991\n1111\n"))
	require.NoError(t, err)

	cfg := DefaultOptions()
	rn := newRunner(cfg.Ctx, g, DefaultFreeTurn(), cfg, g.Start(), g.Goal())
	res, err := rn.process()
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, int64(5), res.Cost)
	assert.Equal(t, rn.visited.len(), res.Expanded)
	assert.GreaterOrEqual(t, res.Pushed, res.Expanded)
}

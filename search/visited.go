package search

import "github.com/katalvlaran/crucible/grid"

// visitedSet records finalized states in a dense bitset.
// A state's key packs cell index, direction and run length:
//
//	key = (cell*numDirections + dir) * (maxRun+1) + run
type visitedSet struct {
	bits  []uint64
	width int
	runs  int
	count int
}

// newVisitedSet sizes the bitset for a width-wide grid of cells cells whose
// states never exceed maxRun.
func newVisitedSet(cells, width, maxRun int) *visitedSet {
	runs := maxRun + 1
	n := cells * numDirections * runs

	return &visitedSet{
		bits:  make([]uint64, (n+63)/64),
		width: width,
		runs:  runs,
	}
}

// key maps s to its dense index.
func (v *visitedSet) key(s State) int {
	cell := s.Pos.Row*v.width + s.Pos.Col

	return (cell*numDirections+int(s.Dir))*v.runs + s.Run
}

// state inverts key.
func (v *visitedSet) state(key int) State {
	run := key % v.runs
	key /= v.runs
	dir := Direction(key % numDirections)
	cell := key / numDirections

	return State{
		Pos: grid.Pos{Row: cell / v.width, Col: cell % v.width},
		Dir: dir,
		Run: run,
	}
}

// markVisited sets the bit for s and reports whether it was newly set.
func (v *visitedSet) markVisited(s State) bool {
	k := v.key(s)
	word, mask := k>>6, uint64(1)<<(uint(k)&63)
	if v.bits[word]&mask != 0 {
		return false
	}
	v.bits[word] |= mask
	v.count++

	return true
}

// isVisited reports whether s was already finalized.
func (v *visitedSet) isVisited(s State) bool {
	k := v.key(s)

	return v.bits[k>>6]&(uint64(1)<<(uint(k)&63)) != 0
}

// len returns the number of marked states.
func (v *visitedSet) len() int { return v.count }

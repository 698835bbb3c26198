package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/crucible/grid"
)

// State is one node of the expanded search graph: where the crucible is,
// which way it entered that cell, and how many cells it has moved in that
// direction since its last turn. Two states are the same iff all fields match.
type State struct {
	Pos grid.Pos
	Dir Direction
	Run int
}

// Move is a legal successor of a state together with its incremental cost.
type Move struct {
	To   State
	Cost int64
}

// Regime is a movement ruleset. Successors appends every legal move out of s
// to dst and returns the extended slice; moves that would leave the grid are
// never produced. Every produced state must satisfy 0 ≤ Run ≤ MaxRun().
type Regime interface {
	Name() string
	MinRun() int
	MaxRun() int
	Successors(g *grid.Grid, s State, dst []Move) []Move
}

// Regime names accepted by ParseRegime.
const (
	FreeTurnName  = "free-turn"
	ForcedRunName = "forced-run"
)

// FreeTurn moves one cell at a time. It may turn left or right at any point,
// may keep straight while its run is shorter than Max, and never reverses.
type FreeTurn struct {
	Max int
}

// NewFreeTurn returns a FreeTurn regime capped at max straight cells.
func NewFreeTurn(max int) (FreeTurn, error) {
	if max < 1 {
		return FreeTurn{}, fmt.Errorf("%w: free-turn max run %d < 1", ErrBadRunBounds, max)
	}

	return FreeTurn{Max: max}, nil
}

// DefaultFreeTurn is the classic ruleset: at most three cells in a line.
func DefaultFreeTurn() FreeTurn { return FreeTurn{Max: 3} }

func (r FreeTurn) Name() string { return FreeTurnName }
func (r FreeTurn) MinRun() int  { return 1 }
func (r FreeTurn) MaxRun() int  { return r.Max }

// Successors yields up to three single-cell moves; the incremental cost is
// the cost of the destination cell.
func (r FreeTurn) Successors(g *grid.Grid, s State, dst []Move) []Move {
	for _, d := range headings {
		if IsOpposite(s.Dir, d) {
			continue
		}
		run := 1
		if d == s.Dir {
			if s.Run >= r.Max {
				continue
			}
			run = s.Run + 1
		}
		next := s.Pos.Add(d.Delta())
		if !g.InBounds(next) {
			continue
		}
		dst = append(dst, Move{
			To:   State{Pos: next, Dir: d, Run: run},
			Cost: g.Cost(next),
		})
	}

	return dst
}

// ForcedRun moves in straight leaps: after every turn, and from the start,
// it travels between Min and Max cells before it may turn again or stop.
// Each leap length is a distinct successor carrying the summed cost of every
// cell it crosses. Continuing straight after a leap is never generated
// because a single longer leap from the previous turn covers it.
type ForcedRun struct {
	Min, Max int
}

// NewForcedRun returns a ForcedRun regime with leaps of min..max cells.
func NewForcedRun(min, max int) (ForcedRun, error) {
	if min < 1 || max < min {
		return ForcedRun{}, fmt.Errorf("%w: forced-run bounds %d..%d", ErrBadRunBounds, min, max)
	}

	return ForcedRun{Min: min, Max: max}, nil
}

// DefaultForcedRun is the classic ruleset: leaps of four to ten cells.
func DefaultForcedRun() ForcedRun { return ForcedRun{Min: 4, Max: 10} }

func (r ForcedRun) Name() string { return ForcedRunName }
func (r ForcedRun) MinRun() int  { return r.Min }
func (r ForcedRun) MaxRun() int  { return r.Max }

// Successors yields one move per reachable leap length in each turning
// direction. A leap stops early at the grid edge.
func (r ForcedRun) Successors(g *grid.Grid, s State, dst []Move) []Move {
	for _, d := range headings {
		if d == s.Dir || IsOpposite(s.Dir, d) {
			continue
		}
		delta := d.Delta()
		p := s.Pos
		var acc int64
		for n := 1; n <= r.Max; n++ {
			p = p.Add(delta)
			if !g.InBounds(p) {
				break
			}
			acc += g.Cost(p)
			if n < r.Min {
				continue
			}
			dst = append(dst, Move{
				To:   State{Pos: p, Dir: d, Run: n},
				Cost: acc,
			})
		}
	}

	return dst
}

// ParseRegime maps a configuration name onto its default ruleset.
// Accepted names: "free-turn", "free", "part1" and "forced-run", "forced",
// "part2", "ultra".
func ParseRegime(name string) (Regime, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FreeTurnName, "free", "part1":
		return DefaultFreeTurn(), nil
	case ForcedRunName, "forced", "part2", "ultra":
		return DefaultForcedRun(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegime, name)
	}
}

// validateRegime checks the run bounds a Regime reports about itself.
func validateRegime(r Regime) error {
	if r.MinRun() < 1 || r.MaxRun() < r.MinRun() {
		return fmt.Errorf("%w: %s bounds %d..%d", ErrBadRunBounds, r.Name(), r.MinRun(), r.MaxRun())
	}

	return nil
}

// Package search implements Dijkstra's algorithm over the expanded state
// graph of a weighted grid, where a state is (cell, incoming direction,
// run length) and a Regime decides which moves are legal.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring entries whose state is already finalized.
//   - The goal test happens when a candidate is popped, not when it is
//     pushed, so the first goal pop carries the minimal cost.
//   - Visited states live in a dense bitset sized from the grid and the
//     regime's MaxRun, so lookups never hash.
//   - A single driver serves every Regime; regimes only generate moves.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/crucible/grid"
)

// ctxCheckInterval is how many pops pass between cancellation checks.
const ctxCheckInterval = 1024

// Search finds the minimal accumulated cost of moving from the start cell to
// the goal cell of g under regime r. Entering a cell costs that cell's value;
// the start cell itself is free.
//
// Returns:
//
//   - Result.Found == true and the minimal Result.Cost on success.
//   - Result.Found == false and a nil error when no legal route exists.
//   - ErrBudgetExceeded (wrapped) with the partial Result when MaxCost or
//     MaxExpansions stopped the search first.
//   - ctx.Err() when the context passed via WithContext is done.
//
// Preconditions and validation (in order):
//  1. every Option must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. r must be non-nil (ErrNilRegime) with sane bounds (ErrBadRunBounds).
//  4. start and goal must lie inside g (ErrOutOfBounds).
//
// Complexity:
//
//   - Time:  O(S log S), S = cells × 5 × (MaxRun+1) states.
//   - Space: O(S) bits for the visited set plus the frontier.
//
// Search never mutates g, so independent searches may share one grid
// across goroutines.
func Search(g *grid.Grid, r Regime, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if r == nil {
		return Result{}, ErrNilRegime
	}
	if err := validateRegime(r); err != nil {
		return Result{}, err
	}

	// 3) Resolve corners
	start, goal := g.Start(), g.Goal()
	if cfg.hasStart {
		start = cfg.Start
	}
	if cfg.hasGoal {
		goal = cfg.Goal
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: goal %s", ErrOutOfBounds, goal)
	}

	// 4) Run inside a span
	ctx, span := startSpan(cfg.Ctx, r, g.Height(), g.Width())
	defer span.End()

	began := time.Now()
	rn := newRunner(ctx, g, r, cfg, start, goal)
	res, err := rn.process()
	recordSearch(ctx, span, r.Name(), res, err, time.Since(began))

	return res, err
}

// MinCost is the external-driver entry point: the minimal cost from the
// top-left to the bottom-right cell and whether the goal is reachable.
func MinCost(g *grid.Grid, r Regime) (int64, bool, error) {
	res, err := Search(g, r)
	if err != nil {
		return 0, false, err
	}

	return res.Cost, res.Found, nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	ctx      context.Context
	g        *grid.Grid  // read-only
	regime   Regime      // successor generator
	options  Options     // budgets, hooks
	start    grid.Pos    // first cell
	goal     grid.Pos    // target cell
	frontier frontier    // min-heap of pending candidates
	visited  *visitedSet // finalized states
	parents  map[int]int // visited key → parent key, only with ReturnPath
	moves    []Move      // reused successor buffer
	res      Result      // counters accumulated as we go
}

func newRunner(ctx context.Context, g *grid.Grid, r Regime, cfg Options, start, goal grid.Pos) *runner {
	rn := &runner{
		ctx:      ctx,
		g:        g,
		regime:   r,
		options:  cfg,
		start:    start,
		goal:     goal,
		frontier: make(frontier, 0, g.Cells()),
		visited:  newVisitedSet(g.Cells(), g.Width(), r.MaxRun()),
		moves:    make([]Move, 0, 4*r.MaxRun()),
	}
	if cfg.ReturnPath {
		rn.parents = make(map[int]int, g.Cells())
	}

	return rn
}

// process is the main loop: pop the cheapest candidate, stop on the goal,
// skip finalized states, expand the rest.
func (rn *runner) process() (Result, error) {
	rn.push(candidate{cost: 0, state: State{Pos: rn.start}, parent: -1})

	pops := 0
	for {
		c, ok := rn.frontier.popMin()
		if !ok {
			// Frontier exhausted: the goal is unreachable under this regime.
			return rn.res, nil
		}

		pops++
		if pops%ctxCheckInterval == 0 {
			if err := rn.ctx.Err(); err != nil {
				return rn.res, err
			}
		}

		// Everything still pending costs at least c.cost.
		if c.cost > rn.options.MaxCost {
			return rn.res, fmt.Errorf("%w: cheapest pending cost %d > max cost %d",
				ErrBudgetExceeded, c.cost, rn.options.MaxCost)
		}

		if c.state.Pos == rn.goal {
			rn.res.Found = true
			rn.res.Cost = c.cost
			if rn.options.ReturnPath {
				rn.res.Path = rn.reconstruct(c)
			}

			return rn.res, nil
		}

		if !rn.visited.markVisited(c.state) {
			continue // a cheaper route already finalized this state
		}

		if rn.options.MaxExpansions > 0 && rn.res.Expanded >= rn.options.MaxExpansions {
			return rn.res, fmt.Errorf("%w: %d expansions", ErrBudgetExceeded, rn.res.Expanded)
		}
		rn.res.Expanded++
		if rn.parents != nil {
			rn.parents[rn.visited.key(c.state)] = c.parent
		}
		rn.options.OnExpand(c.state, c.cost)

		if err := rn.expand(c); err != nil {
			return rn.res, err
		}
	}
}

// expand pushes every unvisited successor of c.
func (rn *runner) expand(c candidate) error {
	rn.moves = rn.regime.Successors(rn.g, c.state, rn.moves[:0])
	parent := rn.visited.key(c.state)
	for _, m := range rn.moves {
		if err := rn.checkMove(c.state, m); err != nil {
			return err
		}
		if rn.visited.isVisited(m.To) {
			continue
		}
		rn.push(candidate{cost: c.cost + m.Cost, state: m.To, parent: parent})
	}

	return nil
}

func (rn *runner) push(c candidate) {
	rn.frontier.push(c)
	rn.res.Pushed++
}

// checkMove guards the visited-key encoding against regimes that break
// their contract.
func (rn *runner) checkMove(from State, m Move) error {
	switch {
	case !rn.g.InBounds(m.To.Pos):
		return fmt.Errorf("%w: %s produced %s from %s", ErrInvalidMove, rn.regime.Name(), m.To.Pos, from.Pos)
	case m.Cost < 0:
		return fmt.Errorf("%w: %s produced negative cost %d", ErrInvalidMove, rn.regime.Name(), m.Cost)
	case m.To.Run < 0 || m.To.Run > rn.regime.MaxRun():
		return fmt.Errorf("%w: %s produced run %d outside 0..%d", ErrInvalidMove, rn.regime.Name(), m.To.Run, rn.regime.MaxRun())
	case m.To.Dir > West:
		return fmt.Errorf("%w: %s produced direction %d", ErrInvalidMove, rn.regime.Name(), m.To.Dir)
	}

	return nil
}

// Package search defines core types and configuration options for the
// constrained shortest-path search.
//
// Options:
//
//	– Start / Goal:   cells to route between (default top-left → bottom-right).
//	– ReturnPath:     if true, Result.Path holds the cell-by-cell route.
//	– MaxCost:        search ends with ErrBudgetExceeded once every pending
//	                  candidate costs more than this.
//	– MaxExpansions:  search ends with ErrBudgetExceeded after this many
//	                  states have been expanded (0 = unlimited).
//	– Ctx:            cancellation, checked every 1024 pops; parents the span.
//	– OnExpand:       hook invoked for every finalized state.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the grid pointer is nil.
//	– ErrNilRegime       if no Regime is supplied.
//	– ErrBadRunBounds    if a Regime reports MinRun < 1 or MaxRun < MinRun.
//	– ErrUnknownRegime   if ParseRegime does not recognise a name.
//	– ErrOutOfBounds     if Start or Goal lies outside the grid.
//	– ErrOptionViolation if an option was given an invalid value.
//	– ErrInvalidMove     if a Regime produces an out-of-contract successor.
//	– ErrBudgetExceeded  if MaxCost or MaxExpansions stopped the search.
package search

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/grid"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNilRegime indicates that no movement Regime was supplied.
	ErrNilRegime = errors.New("search: regime is nil")

	// ErrBadRunBounds indicates a Regime whose run bounds are unusable.
	ErrBadRunBounds = errors.New("search: invalid run-length bounds")

	// ErrUnknownRegime indicates a regime name ParseRegime does not know.
	ErrUnknownRegime = errors.New("search: unknown regime")

	// ErrOutOfBounds indicates a start or goal cell outside the grid.
	ErrOutOfBounds = errors.New("search: position outside grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrInvalidMove indicates a Regime produced a successor that leaves the
	// grid, has a negative cost, or a run length outside 0..MaxRun.
	ErrInvalidMove = errors.New("search: regime produced an invalid move")

	// ErrBudgetExceeded indicates the search stopped on MaxCost or
	// MaxExpansions before reaching the goal. It is distinct from a
	// genuinely unreachable goal, which is reported as Result.Found == false
	// with a nil error.
	ErrBudgetExceeded = errors.New("search: budget exceeded before reaching goal")
)

// Options configures a single Search invocation.
type Options struct {
	// Ctx allows cancellation and carries the parent tracing span.
	Ctx context.Context

	// Start and Goal override the default corners when their flags are set.
	Start, Goal       grid.Pos
	hasStart, hasGoal bool

	// ReturnPath requests cell-by-cell path reconstruction.
	ReturnPath bool

	// MaxCost caps the accumulated cost explored. Default math.MaxInt64.
	MaxCost int64

	// MaxExpansions caps finalized states; 0 means unlimited.
	MaxExpansions int

	// OnExpand is called with each state as it is finalized and its cost.
	OnExpand func(s State, cost int64)

	// internal error recorded during option parsing
	err error
}

// Option configures Search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - context.Background()
//   - default corners (grid.Start → grid.Goal)
//   - no path reconstruction
//   - no cost or expansion budget
//   - no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		ReturnPath:    false,
		MaxCost:       math.MaxInt64,
		MaxExpansions: 0,
		OnExpand:      func(State, int64) {},
	}
}

// WithContext sets a custom context for cancellation and tracing.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStart routes from p instead of the top-left cell.
func WithStart(p grid.Pos) Option {
	return func(o *Options) {
		o.Start, o.hasStart = p, true
	}
}

// WithGoal routes to p instead of the bottom-right cell.
func WithGoal(p grid.Pos) Option {
	return func(o *Options) {
		o.Goal, o.hasGoal = p, true
	}
}

// WithReturnPath fills Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost stops the search once the cheapest pending candidate costs
// more than max. Negative values are an ErrOptionViolation.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithMaxExpansions stops the search after n finalized states.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run for every finalized state.
func WithOnExpand(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Step is one cell of a reconstructed path: the cell, the heading it was
// entered with, and the accumulated cost on arrival. The first Step is the
// start cell with Dir None and Cost 0.
type Step struct {
	Pos  grid.Pos
	Dir  Direction
	Cost int64
}

// Result is the outcome of a Search.
//
//   - Found:    true iff the goal was reached; Cost is then minimal.
//   - Cost:     minimal accumulated cost (0 when Found is false).
//   - Expanded: number of states finalized.
//   - Pushed:   number of candidates pushed onto the frontier.
//   - Path:     cell-by-cell route when WithReturnPath was given.
type Result struct {
	Cost     int64
	Found    bool
	Expanded int
	Pushed   int
	Path     []Step
}

// Package search finds minimal-cost routes across a weighted grid when the
// mover is constrained in how long it may travel straight and when it may
// turn.
//
// Overview:
//
//   - The search runs Dijkstra over an expanded state space: a state is the
//     triple (cell, incoming direction, run length), not a bare cell, because
//     two arrivals at the same cell with different headings or run lengths
//     have different futures.
//   - A Regime generates the legal successor moves of a state; the driver is
//     the same for every regime.
//   - Entering a cell costs that cell's value. The start cell is free.
//
// Regimes:
//
//   - FreeTurn{Max: 3}: one cell per move; turn left or right at any time,
//     keep straight while the run is below Max, never reverse.
//   - ForcedRun{Min: 4, Max: 10}: straight leaps of Min..Max cells; after
//     each leap the mover must turn. A leap's cost is the sum of every cell
//     it crosses. The goal only counts when a leap ends on it.
//   - Any other ruleset can implement Regime; the driver checks that every
//     produced move stays on the grid, has a non-negative cost and a run
//     length within 0..MaxRun.
//
// Outcomes:
//
//   - Found: Result.Found is true and Result.Cost is minimal.
//   - Unreachable: Result.Found is false and err is nil. This is a normal
//     answer, e.g. a 3×1 grid under ForcedRun.
//   - Budget exceeded: WithMaxCost / WithMaxExpansions stopped the search;
//     err wraps ErrBudgetExceeded and says nothing about reachability.
//   - Start equal to goal costs 0 under every regime: the empty route moves
//     zero cells and so never violates a run bound.
//
// Performance and complexity:
//
//   - Time:  O(S log S), S = cells × 5 × (MaxRun+1) distinct states.
//   - Space: one bit per potential state for the visited set, plus the
//     frontier (lazy decrease-key, so up to one entry per pushed move).
//
// Thread safety:
//
//   - A Grid is immutable. Each Search owns its frontier and visited set, so
//     any number of searches may run concurrently on one grid.
//
// Observability:
//
//   - Every Search opens an OpenTelemetry span "search.Search" and records
//     crucible_search_total, crucible_search_duration_seconds and
//     crucible_states_expanded through the global providers. Without an
//     installed SDK these are no-ops.
//
// Example usage:
//
//	g, _ := grid.Parse(input)
//	res, err := search.Search(g, search.DefaultForcedRun(), search.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Found {
//	    fmt.Println("unreachable")
//	    return
//	}
//	fmt.Println(res.Cost)
//	fmt.Print(search.Render(g, res.Path))
package search

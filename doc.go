// Package crucible finds the cheapest route for a crucible of lava crossing a
// city block grid, where every block costs its digit in heat loss and the
// crucible's steering is limited by how far it has travelled in a straight
// line.
//
// What is in the box?
//
//	grid/         — immutable rectangular cost grid, digit-text parsing & printing
//	search/       — Dijkstra over (cell, heading, run length) states with
//	                pluggable movement regimes, budgets, hooks and path rendering
//	cmd/crucible/ — command line front end (cobra + viper + zerolog)
//
// Two regimes ship with the library:
//
//   - free-turn:  one block per move, at most three in a line, turn left or
//     right at any time, never reverse.
//   - forced-run: leaps of four to ten blocks, each followed by a turn; the
//     goal only counts when a leap ends on it.
//
// Quick example:
//
//	g, _ := grid.Parse(input)
//	res, _ := search.Search(g, search.DefaultForcedRun(), search.WithReturnPath())
//	fmt.Println(res.Cost)
//	fmt.Print(search.Render(g, res.Path))
//
// Both regimes run over the same immutable grid, so callers may search
// several regimes concurrently without locking.
//
//	go install github.com/katalvlaran/crucible/cmd/crucible@latest
package crucible

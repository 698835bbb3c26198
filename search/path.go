package search

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/crucible/grid"
)

// reconstruct walks parent links back from the goal candidate and unrolls
// every move into single-cell Steps, so leaps show each cell they cross.
func (rn *runner) reconstruct(goal candidate) []Step {
	chain := []State{goal.state}
	for key := goal.parent; key >= 0; key = rn.parents[key] {
		chain = append(chain, rn.visited.state(key))
	}
	// reverse to get start → goal
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	path := make([]Step, 0, len(chain))
	path = append(path, Step{Pos: chain[0].Pos, Dir: None, Cost: 0})
	var cost int64
	for _, s := range chain[1:] {
		from := path[len(path)-1].Pos
		n, ok := straightRun(from, s)
		if !ok {
			// Not a straight move along s.Dir; record the jump as one step.
			cost += rn.g.Cost(s.Pos)
			path = append(path, Step{Pos: s.Pos, Dir: s.Dir, Cost: cost})
			continue
		}
		p := from
		for i := 0; i < n; i++ {
			p = p.Add(s.Dir.Delta())
			cost += rn.g.Cost(p)
			path = append(path, Step{Pos: p, Dir: s.Dir, Cost: cost})
		}
	}

	return path
}

// Render overlays path on g: every cell entered along the path shows the
// arrow of the heading it was entered with, all other cells show their cost.
// Digit grids render without separators, others space-separated.
func Render(g *grid.Grid, path []Step) string {
	rows := g.Rows()
	cells := make([][]string, len(rows))
	sep := ""
	for y, row := range rows {
		cells[y] = make([]string, len(row))
		for x, c := range row {
			if c > 9 {
				sep = " "
			}
			cells[y][x] = strconv.FormatInt(c, 10)
		}
	}
	for _, st := range path {
		if st.Dir == None || !g.InBounds(st.Pos) {
			continue
		}
		cells[st.Pos.Row][st.Pos.Col] = string(st.Dir.Arrow())
	}

	var sb strings.Builder
	for _, row := range cells {
		sb.WriteString(strings.Join(row, sep))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// straightRun reports how many cells along to.Dir separate from and to.Pos.
func straightRun(from grid.Pos, to State) (int, bool) {
	d := to.Dir.Delta()
	dr, dc := to.Pos.Row-from.Row, to.Pos.Col-from.Col
	switch {
	case d.Row != 0 && dc == 0 && dr*d.Row > 0:
		return dr * d.Row, true
	case d.Col != 0 && dr == 0 && dc*d.Col > 0:
		return dc * d.Col, true
	default:
		return 0, false
	}
}

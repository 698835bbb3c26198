package search

import "github.com/katalvlaran/crucible/grid"

// Direction is the heading of the last move. None marks the initial state,
// before any move has been made.
type Direction uint8

const (
	None Direction = iota
	North
	East
	South
	West
)

// numDirections counts None plus the four headings; it sizes visited keys.
const numDirections = 5

// headings lists the four real directions in clockwise order.
var headings = [4]Direction{North, East, South, West}

// Opposite returns the reverse heading. None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return None
	}
}

// IsOpposite reports whether a and b are reverse headings of each other.
// None is opposite to nothing, so the first move may go anywhere.
func IsOpposite(a, b Direction) bool {
	return a != None && a.Opposite() == b
}

// Perpendiculars returns the two headings at a right angle to d.
// For None both entries are None.
func (d Direction) Perpendiculars() [2]Direction {
	switch d {
	case North, South:
		return [2]Direction{East, West}
	case East, West:
		return [2]Direction{North, South}
	default:
		return [2]Direction{None, None}
	}
}

// Delta is the one-cell offset of a move in direction d.
func (d Direction) Delta() grid.Pos {
	switch d {
	case North:
		return grid.Pos{Row: -1}
	case South:
		return grid.Pos{Row: 1}
	case East:
		return grid.Pos{Col: 1}
	case West:
		return grid.Pos{Col: -1}
	default:
		return grid.Pos{}
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "none"
	}
}

// Arrow is the glyph used by Render for a cell entered moving in d.
func (d Direction) Arrow() byte {
	switch d {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	default:
		return '.'
	}
}

// Package game contains the pure simulation core: the maze grid, layout
// parsing, the Universe state model and the move resolver. It has no external
// dependencies and performs no I/O, timing or randomness, so every operation
// is deterministic and directly testable.
package game

// Position is a 0-indexed (row, column) grid coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// P is a shorthand constructor for Position.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the position offset by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// ManhattanDist returns the L1 distance to another position.
func (p Position) ManhattanDist(other Position) int {
	return abs(p.Row-other.Row) + abs(p.Col-other.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Direction is one of the five permitted moves. Stop is the zero-delta move
// and is always legal.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Stop
)

// Directions lists all moves in their canonical order. Iterating this slice
// instead of a map keeps derived tables deterministic.
var Directions = []Direction{North, South, East, West, Stop}

// Delta returns the (row, col) offset of one step in this direction.
// North decreases the row, West decreases the column.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Cell is the static classification of a grid square. Food and bots are
// tracked outside the grid, so at rest a cell is only ever Wall or Free.
type Cell uint8

const (
	Free Cell = iota
	Wall
)

// Layout characters accepted by the parser.
const (
	CharWall = '#'
	CharFood = '.'
	CharFree = ' '
)

package game

import "strings"

// Grid is the static maze: a rectangular matrix of Wall/Free cells stored in
// a row-major flat slice. Walls never change during a match.
type Grid struct {
	height int
	width  int
	cells  []Cell
}

// NewGrid creates a grid of the given dimensions with all cells Free.
func NewGrid(height, width int) *Grid {
	return &Grid{
		height: height,
		width:  width,
		cells:  make([]Cell, height*width),
	}
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// InBounds returns true if the position is inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the cell at the given position. Out-of-bounds access is a typed
// error instead of a panic.
func (g *Grid) At(p Position) (Cell, error) {
	if !g.InBounds(p) {
		return Free, &OutOfBoundsError{Pos: p, Height: g.height, Width: g.width}
	}
	return g.cells[p.Row*g.width+p.Col], nil
}

// Set writes the cell at the given position.
func (g *Grid) Set(p Position, c Cell) error {
	if !g.InBounds(p) {
		return &OutOfBoundsError{Pos: p, Height: g.height, Width: g.width}
	}
	g.cells[p.Row*g.width+p.Col] = c
	return nil
}

// IsWall reports whether the position holds a wall. Out-of-bounds positions
// count as walls so callers never step outside the maze.
func (g *Grid) IsWall(p Position) bool {
	if !g.InBounds(p) {
		return true
	}
	return g.cells[p.Row*g.width+p.Col] == Wall
}

// Walls returns all wall positions in row-major order.
func (g *Grid) Walls() []Position {
	walls := make([]Position, 0)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r*g.width+c] == Wall {
				walls = append(walls, P(r, c))
			}
		}
	}
	return walls
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{height: g.height, width: g.width, cells: cells}
}

// Equal reports whether two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.height != other.height || g.width != other.width {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid with layout characters, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r*g.width+c] == Wall {
				b.WriteByte(CharWall)
			} else {
				b.WriteByte(CharFree)
			}
		}
		if r < g.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Package world provides cave generation and map management.
package world

// Grid is a fixed-size matrix of wall/floor cells backed by a flat
// row-major slice. The zero cell value is floor; dimensions never change
// after construction.
type Grid struct {
	Height int
	Width  int
	cells  []bool
}

// NewGrid allocates an all-floor grid of the given dimensions. Zero (or
// negative) dimensions are valid and produce an empty grid.
func NewGrid(height, width int) *Grid {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	return &Grid{
		Height: height,
		Width:  width,
		cells:  make([]bool, height*width),
	}
}

// Get reports whether the cell at (row, col) is wall. Coordinates outside
// the grid always read as wall: the map is conceptually surrounded by
// infinite wall, which lets neighbor counting at the edges skip any
// special cases.
func (g *Grid) Get(row, col int) bool {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return true
	}
	return g.cells[row*g.Width+col]
}

// Set writes the cell at (row, col). Writes outside the grid are
// silently ignored.
func (g *Grid) Set(row, col int, wall bool) {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return
	}
	g.cells[row*g.Width+col] = wall
}

// IsPassable reports whether the given position can be walked on.
func (g *Grid) IsPassable(row, col int) bool {
	return g.Tile(row, col).IsPassable()
}

// Tile returns the display tile at the given position.
func (g *Grid) Tile(row, col int) Tile {
	return TileFor(g.Get(row, col))
}

// WallCount returns the number of wall cells inside the grid bounds.
func (g *Grid) WallCount() int {
	count := 0
	for _, wall := range g.cells {
		if wall {
			count++
		}
	}
	return count
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Height != other.Height || g.Width != other.Width {
		return false
	}
	for i, wall := range g.cells {
		if wall != other.cells[i] {
			return false
		}
	}
	return true
}

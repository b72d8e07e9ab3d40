package world

// farRing lists the 16 offsets at Chebyshev distance exactly 2 from a
// cell, clockwise from the top-left corner.
var farRing = [16][2]int{
	{-2, -2}, {-2, -1}, {-2, 0}, {-2, 1}, {-2, 2},
	{-1, 2}, {0, 2}, {1, 2},
	{2, 2}, {2, 1}, {2, 0}, {2, -1}, {2, -2},
	{1, -2}, {0, -2}, {-1, -2},
}

// CountNeighbors returns how many of the 8 cells immediately surrounding
// (row, col) are wall. Off-grid neighbors count as wall, so the result
// for any coordinate is in [0, 8].
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.Get(row+dr, col+dc) {
				count++
			}
		}
	}
	return count
}

// CountFarNeighbors returns the local neighbor count plus the number of
// wall cells on the distance-2 ring around (row, col). The result is in
// [0, 24] and never below CountNeighbors for the same cell.
func (g *Grid) CountFarNeighbors(row, col int) int {
	count := g.CountNeighbors(row, col)
	for _, d := range farRing {
		if g.Get(row+d[0], col+d[1]) {
			count++
		}
	}
	return count
}

// IsEmptySpace reports whether no wall exists within Chebyshev distance 2
// of (row, col). Growth passes seed new wall in such cells so fully open
// regions do not stay static.
func (g *Grid) IsEmptySpace(row, col int) bool {
	return g.CountFarNeighbors(row, col) == 0
}

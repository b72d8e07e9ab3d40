package ui

// Explorer marks the current walking position inside a generated map.
// X is the column and Y the row, matching screen coordinates.
type Explorer struct {
	X, Y int
}

// NewExplorer creates an explorer at the given position.
func NewExplorer(x, y int) *Explorer {
	return &Explorer{X: x, Y: y}
}

// Move updates the explorer position by the given delta.
func (e *Explorer) Move(dx, dy int) {
	e.X += dx
	e.Y += dy
}

// Position returns the current x, y coordinates.
func (e *Explorer) Position() (int, int) {
	return e.X, e.Y
}

// Package ui provides terminal map viewing using tcell.
package ui

// Mode represents the current viewer interaction mode.
type Mode int

const (
	// ModeWalk moves the explorer marker through passable cells.
	ModeWalk Mode = iota
	// ModePan scrolls the viewport across maps larger than the terminal.
	ModePan
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeWalk:
		return "walk"
	case ModePan:
		return "pan"
	default:
		return "unknown"
	}
}

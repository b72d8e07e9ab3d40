package ui

import "github.com/gdamore/tcell/v2"

// defaultStyle is applied at init and used by Clear for cells outside
// the drawn map area.
var defaultStyle = tcell.StyleDefault.
	Background(tcell.ColorBlack).
	Foreground(tcell.ColorWhite)

// Screen owns the terminal for the lifetime of the viewer, exposing the
// small slice of tcell the viewer needs.
type Screen struct {
	screen tcell.Screen
}

// NewScreen captures the terminal and puts it in cell-addressed mode.
// Callers must Close to restore the terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(defaultStyle)
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close restores the terminal to its previous state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Clear wipes the buffer back to the default style.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// SetContent places one rune at (x, y) in the buffer.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Show flushes buffered changes to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Sync redraws everything, discarding any stale terminal state. Called
// after resize events.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// PollEvent blocks until the next key or resize event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

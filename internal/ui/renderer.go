package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/JacobJanzen/map-generator/internal/theme"
	"github.com/JacobJanzen/map-generator/internal/world"
)

// Renderer handles drawing a generated map to the screen.
type Renderer struct {
	screen *Screen

	wallGlyph     rune
	floorGlyph    rune
	explorerGlyph rune
	wallStyle     tcell.Style
	floorStyle    tcell.Style
	explorerStyle tcell.Style
}

// NewRenderer creates a renderer drawing with the given theme.
func NewRenderer(screen *Screen, th *theme.ThemeDef) *Renderer {
	r := &Renderer{screen: screen}
	r.SetTheme(th)
	return r
}

// SetTheme switches the glyphs and colors used for drawing.
func (r *Renderer) SetTheme(th *theme.ThemeDef) {
	r.wallGlyph = th.WallRune()
	r.floorGlyph = th.FloorRune()
	r.explorerGlyph = th.ExplorerRune()
	r.wallStyle = tcell.StyleDefault.Foreground(th.WallTCellColor())
	r.floorStyle = tcell.StyleDefault.Foreground(th.FloorTCellColor())
	r.explorerStyle = tcell.StyleDefault.
		Foreground(th.ExplorerTCellColor()).
		Bold(true)
}

// Render draws the visible part of the grid, the explorer marker and a
// status line. offsetX and offsetY give the map cell drawn at the
// top-left corner of the screen; the bottom row holds the status line.
func (r *Renderer) Render(grid *world.Grid, explorer *Explorer, offsetX, offsetY int, status string) {
	r.screen.Clear()

	width, height := r.screen.Size()
	viewHeight := height - 1

	// Draw map cells
	for y := 0; y < viewHeight; y++ {
		row := y + offsetY
		if row >= grid.Height {
			break
		}
		for x := 0; x < width; x++ {
			col := x + offsetX
			if col >= grid.Width {
				break
			}
			if grid.Tile(row, col) == world.TileWall {
				r.screen.SetContent(x, y, r.wallGlyph, r.wallStyle)
			} else {
				r.screen.SetContent(x, y, r.floorGlyph, r.floorStyle)
			}
		}
	}

	// Draw explorer on top when it is inside the viewport
	if explorer != nil {
		x := explorer.X - offsetX
		y := explorer.Y - offsetY
		if x >= 0 && x < width && y >= 0 && y < viewHeight {
			r.screen.SetContent(x, y, r.explorerGlyph, r.explorerStyle)
		}
	}

	r.RenderMessage(status, height-1)

	r.screen.Show()
}

// RenderMessage displays a message at the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}

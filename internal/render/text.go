// Package render converts generated maps to text.
package render

import (
	"strings"

	"github.com/JacobJanzen/map-generator/internal/world"
)

// Options control the glyphs and framing of text output.
type Options struct {
	Wall   rune
	Floor  rune
	Border bool
}

// DefaultOptions renders with the standard map tile glyphs inside a
// one-cell wall border.
func DefaultOptions() Options {
	return Options{
		Wall:   world.TileWall.Rune(),
		Floor:  world.TileFloor.Rune(),
		Border: true,
	}
}

// Text renders the grid as newline-separated rows with no trailing
// newline. With a border the output is height+2 lines of width+2
// glyphs; the frame is drawn as wall because everything outside the
// grid is wall. Zero glyphs fall back to the defaults.
func Text(g *world.Grid, opts Options) string {
	if opts.Wall == 0 {
		opts.Wall = world.TileWall.Rune()
	}
	if opts.Floor == 0 {
		opts.Floor = world.TileFloor.Rune()
	}

	var b strings.Builder
	b.Grow((g.Height + 2) * (g.Width + 3))

	if opts.Border {
		writeWallRow(&b, opts.Wall, g.Width+2)
		for row := 0; row < g.Height; row++ {
			b.WriteByte('\n')
			b.WriteRune(opts.Wall)
			writeCells(&b, g, row, opts)
			b.WriteRune(opts.Wall)
		}
		b.WriteByte('\n')
		writeWallRow(&b, opts.Wall, g.Width+2)
		return b.String()
	}

	for row := 0; row < g.Height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		writeCells(&b, g, row, opts)
	}
	return b.String()
}

func writeCells(b *strings.Builder, g *world.Grid, row int, opts Options) {
	for col := 0; col < g.Width; col++ {
		if g.Tile(row, col) == world.TileWall {
			b.WriteRune(opts.Wall)
		} else {
			b.WriteRune(opts.Floor)
		}
	}
}

func writeWallRow(b *strings.Builder, wall rune, n int) {
	for i := 0; i < n; i++ {
		b.WriteRune(wall)
	}
}

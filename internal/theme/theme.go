package theme

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/JacobJanzen/map-generator/internal/render"
)

// ThemeDef defines a display theme loaded from JSON.
type ThemeDef struct {
	ID            string `json:"id"`            // Unique identifier (e.g., "classic")
	Name          string `json:"name"`          // Display name (e.g., "Classic")
	WallGlyph     string `json:"wallGlyph"`     // Single character for wall cells (e.g., "#")
	FloorGlyph    string `json:"floorGlyph"`    // Single character for floor cells (e.g., ".")
	ExplorerGlyph string `json:"explorerGlyph"` // Single character for the explorer marker (e.g., "@")
	WallColor     string `json:"wallColor"`     // Hex color code (e.g., "#8A8A8A")
	FloorColor    string `json:"floorColor"`    // Hex color code
	ExplorerColor string `json:"explorerColor"` // Hex color code
}

// WallRune returns the wall glyph as a rune for rendering.
func (t *ThemeDef) WallRune() rune {
	return firstRune(t.WallGlyph, '#')
}

// FloorRune returns the floor glyph as a rune for rendering.
func (t *ThemeDef) FloorRune() rune {
	return firstRune(t.FloorGlyph, '.')
}

// ExplorerRune returns the explorer glyph as a rune for rendering.
func (t *ThemeDef) ExplorerRune() rune {
	return firstRune(t.ExplorerGlyph, '@')
}

// WallTCellColor returns the wall color as a tcell.Color.
func (t *ThemeDef) WallTCellColor() tcell.Color {
	return colorOrWhite(t.WallColor)
}

// FloorTCellColor returns the floor color as a tcell.Color.
func (t *ThemeDef) FloorTCellColor() tcell.Color {
	return colorOrWhite(t.FloorColor)
}

// ExplorerTCellColor returns the explorer color as a tcell.Color.
func (t *ThemeDef) ExplorerTCellColor() tcell.Color {
	return colorOrWhite(t.ExplorerColor)
}

// RenderOptions returns text rendering options using this theme's
// glyphs, with the border enabled.
func (t *ThemeDef) RenderOptions() render.Options {
	return render.Options{
		Wall:   t.WallRune(),
		Floor:  t.FloorRune(),
		Border: true,
	}
}

func firstRune(s string, fallback rune) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return fallback
	}
	return r
}

func colorOrWhite(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []ThemeDef `json:"themes"`
}

// LoadThemes loads theme definitions from the embedded themes.json file.
func LoadThemes() ([]ThemeDef, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	return file.Themes, nil
}

// MustLoadThemes loads theme definitions, panicking on error.
func MustLoadThemes() []ThemeDef {
	return MustLoad[ThemesFile]("themes.json").Themes
}

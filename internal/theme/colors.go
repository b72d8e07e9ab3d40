package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	// Remove leading # if present
	trimmed := strings.TrimPrefix(hex, "#")

	if len(trimmed) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	var rgb [3]int32
	for i, component := range []string{"red", "green", "blue"} {
		v, err := strconv.ParseUint(trimmed[i*2:i*2+2], 16, 8)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid %s component in %s: %w", component, hex, err)
		}
		rgb[i] = int32(v)
	}

	return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

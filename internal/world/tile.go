package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall represents an impassable wall tile, the value of any
	// out-of-bounds coordinate.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
)

// TileFor converts a raw cell value to its display tile.
func TileFor(wall bool) Tile {
	if wall {
		return TileWall
	}
	return TileFloor
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

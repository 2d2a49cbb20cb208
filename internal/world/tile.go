// Package world provides dungeon generation and map management.
package world

// TileType classifies a map tile.
type TileType uint8

const (
	// Wall is impassable and blocks line of sight. It is the zero value, so
	// an untouched tile is a wall.
	Wall TileType = iota
	// Floor is passable and transparent.
	Floor
)

// String returns a human-readable tile type name.
func (t TileType) String() string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	default:
		return "unknown"
	}
}

// IsPassable returns true if the tile can be walked on.
func (t TileType) IsPassable() bool {
	return t == Floor
}

// BlocksLOS returns true if the tile stops a line of sight.
func (t TileType) BlocksLOS() bool {
	return t != Floor
}

// Rune returns the tile's display character.
func (t TileType) Rune() rune {
	if t == Floor {
		return '.'
	}
	return '#'
}

// Tile is a single grid cell: its classification plus the two fog-of-war
// flags owned by the visibility pass.
type Tile struct {
	Type TileType

	// InLOS is recomputed from scratch on every visibility pass.
	InLOS bool
	// Visited only ever goes from false to true for the life of the grid.
	Visited bool

	// Room is set for floor stamped by room carving rather than the walk.
	Room bool
}

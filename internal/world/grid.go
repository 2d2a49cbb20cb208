package world

import (
	"fmt"
	"strings"
)

// Coord is an integer grid position.
type Coord struct {
	X, Y int
}

// Add returns c offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Neighbors4 returns the four orthogonal neighbours of c, in up, right,
// down, left order. Callers must bounds-check them.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{
		{c.X, c.Y - 1},
		{c.X + 1, c.Y},
		{c.X, c.Y + 1},
		{c.X - 1, c.Y},
	}
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is the game map. Tiles live in one row-major slice that is allocated
// once by NewGrid and never resized; a regeneration builds a new Grid.
type Grid struct {
	Width  int
	Height int
	tiles  []Tile
}

// NewGrid creates a grid filled with walls.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
	}, nil
}

// ParseGrid builds a grid from rows of '#' (wall) and '.' (floor), the
// same layout String produces. All rows must have the same length.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimensions, y, len(row), g.Width)
		}
		for x, ch := range row {
			switch ch {
			case '#':
			case '.':
				g.tiles[y*g.Width+x].Type = Floor
			default:
				return nil, fmt.Errorf("unknown tile %q at (%d,%d)", ch, x, y)
			}
		}
	}
	return g, nil
}

// InBounds returns true if c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Check returns ErrOutOfBounds if c lies outside the grid.
func (g *Grid) Check(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v not in %dx%d", ErrOutOfBounds, c, g.Width, g.Height)
	}
	return nil
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.Width + c.X
}

// At returns the tile at c. The second result is false when c is outside
// the grid.
func (g *Grid) At(c Coord) (Tile, bool) {
	if !g.InBounds(c) {
		return Tile{}, false
	}
	return g.tiles[g.index(c)], true
}

// Type returns the tile type at c. Anything outside the grid is a wall.
func (g *Grid) Type(c Coord) TileType {
	if !g.InBounds(c) {
		return Wall
	}
	return g.tiles[g.index(c)].Type
}

// SetType changes the tile type at c. Out-of-bounds writes are ignored.
func (g *Grid) SetType(c Coord, t TileType) {
	if !g.InBounds(c) {
		return
	}
	tile := &g.tiles[g.index(c)]
	tile.Type = t
	if t == Wall {
		tile.Room = false
	}
}

// IsPassable returns true if the given position can be walked on.
func (g *Grid) IsPassable(c Coord) bool {
	return g.Type(c).IsPassable()
}

// BlocksLOS reports whether the tile at c stops a ray. Out-of-bounds
// positions do not block; the visibility pass never reaches them.
func (g *Grid) BlocksLOS(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.tiles[g.index(c)].Type.BlocksLOS()
}

// Reveal marks c as currently visible and visited.
func (g *Grid) Reveal(c Coord) {
	if !g.InBounds(c) {
		return
	}
	tile := &g.tiles[g.index(c)]
	tile.InLOS = true
	tile.Visited = true
}

// ClearLOS resets the InLOS flag of every tile. Visited is left untouched.
func (g *Grid) ClearLOS() {
	for i := range g.tiles {
		g.tiles[i].InLOS = false
	}
}

// Count returns the number of tiles matching pred.
func (g *Grid) Count(pred func(Tile) bool) int {
	n := 0
	for _, t := range g.tiles {
		if pred(t) {
			n++
		}
	}
	return n
}

// Each calls fn for every tile in row-major order.
func (g *Grid) Each(fn func(c Coord, t Tile)) {
	for i, t := range g.tiles {
		fn(Coord{X: i % g.Width, Y: i / g.Width}, t)
	}
}

// Equal reports whether both grids have the same size and tile types.
// Visibility flags are ignored.
func (g *Grid) Equal(other *Grid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i].Type != other.tiles[i].Type || g.tiles[i].Room != other.tiles[i].Room {
			return false
		}
	}
	return true
}

// String renders the grid as rows of '#' and '.'.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			b.WriteRune(g.tiles[y*g.Width+x].Type.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// stampRoom carves every cell of r that lies inside the grid.
func (g *Grid) stampRoom(r Room) {
	r = r.Clamp(g.Width, g.Height)
	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			tile := &g.tiles[y*g.Width+x]
			tile.Type = Floor
			tile.Room = true
		}
	}
}

// sealBorder turns the outermost ring of tiles back into walls.
func (g *Grid) sealBorder() {
	for x := 0; x < g.Width; x++ {
		g.SetType(Coord{x, 0}, Wall)
		g.SetType(Coord{x, g.Height - 1}, Wall)
	}
	for y := 0; y < g.Height; y++ {
		g.SetType(Coord{0, y}, Wall)
		g.SetType(Coord{g.Width - 1, y}, Wall)
	}
}

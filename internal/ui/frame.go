package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/fogcrawl/internal/entity"
	"github.com/samdwyer/fogcrawl/internal/gamedata"
	"github.com/samdwyer/fogcrawl/internal/world"
)

// Shade is the fog-of-war state a tile is drawn in.
type Shade int

const (
	// ShadeHidden tiles have never been seen and are not drawn.
	ShadeHidden Shade = iota
	// ShadeRemembered tiles were seen before and are drawn dimmed.
	ShadeRemembered
	// ShadeLit tiles are in line of sight and drawn at full brightness.
	ShadeLit
)

// ShadeOf applies the fog-of-war policy to a tile. With revealAll every
// tile is lit.
func ShadeOf(t world.Tile, revealAll bool) Shade {
	switch {
	case revealAll || t.InLOS:
		return ShadeLit
	case t.Visited:
		return ShadeRemembered
	default:
		return ShadeHidden
	}
}

// Frame is everything a renderer needs for one redraw.
type Frame struct {
	Grid      *world.Grid
	Viewer    *entity.Viewer
	RevealAll bool
	Status    string
}

// Theme maps tiles to colours using a palette.
type Theme struct {
	palette gamedata.Palette
}

// NewTheme creates a theme from a resolved palette.
func NewTheme(p gamedata.Palette) Theme {
	return Theme{palette: p}
}

// TileColor returns the foreground colour for a tile drawn in the given shade.
func (th Theme) TileColor(t world.Tile, shade Shade) tcell.Color {
	var s gamedata.Shade
	switch {
	case t.Type == world.Wall:
		s = th.palette.Wall
	case t.Room:
		s = th.palette.RoomFloor
	default:
		s = th.palette.Floor
	}
	if shade == ShadeRemembered {
		return s.Remembered
	}
	return s.Lit
}

// cell is one resolved screen cell.
type cell struct {
	ch    rune
	color tcell.Color
	bold  bool
}

var blankCell = cell{ch: ' ', color: tcell.ColorDefault}

// viewport is the window of the map shown on screen.
type viewport struct {
	offX, offY    int
	width, height int
}

// newViewport centres the view on the viewer, clamped so the map edge
// never scrolls past the screen edge.
func newViewport(f Frame, width, height int) viewport {
	return viewport{
		offX:   cameraOffset(f.Viewer.Pos.X, f.Grid.Width, width),
		offY:   cameraOffset(f.Viewer.Pos.Y, f.Grid.Height, height),
		width:  width,
		height: height,
	}
}

func cameraOffset(focus, mapSize, viewSize int) int {
	if mapSize <= viewSize {
		return 0
	}
	return min(max(focus-viewSize/2, 0), mapSize-viewSize)
}

// cellAt resolves the screen cell (sx, sy) inside the viewport.
func (th Theme) cellAt(f Frame, vp viewport, sx, sy int) cell {
	c := world.Coord{X: sx + vp.offX, Y: sy + vp.offY}

	if c == f.Viewer.Pos {
		return cell{ch: f.Viewer.Symbol, color: th.palette.Viewer, bold: true}
	}

	tile, ok := f.Grid.At(c)
	if !ok {
		return blankCell
	}
	shade := ShadeOf(tile, f.RevealAll)
	if shade == ShadeHidden {
		return blankCell
	}
	return cell{ch: tile.Type.Rune(), color: th.TileColor(tile, shade)}
}

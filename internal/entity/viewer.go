// Package entity provides the actors that move around a map.
package entity

import "github.com/samdwyer/fogcrawl/internal/world"

// DefaultSymbol is the glyph the viewer is drawn with.
const DefaultSymbol = '@'

// Viewer is the one actor whose line of sight drives the fog of war.
type Viewer struct {
	Pos          world.Coord // Current position on the grid
	Symbol       rune        // Display symbol
	VisionRadius int         // Side of the square sampled by the visibility pass
}

// NewViewer creates a viewer at the given position.
func NewViewer(pos world.Coord, visionRadius int) *Viewer {
	return &Viewer{
		Pos:          pos,
		Symbol:       DefaultSymbol,
		VisionRadius: visionRadius,
	}
}

// Move updates the viewer position by the given delta.
func (v *Viewer) Move(dx, dy int) {
	v.Pos = v.Pos.Add(dx, dy)
}

// Position returns the current x, y coordinates.
func (v *Viewer) Position() (int, int) {
	return v.Pos.X, v.Pos.Y
}

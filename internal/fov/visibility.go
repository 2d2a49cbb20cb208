package fov

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fogcrawl/internal/telemetry"
	"github.com/samdwyer/fogcrawl/internal/world"
)

// PlotMode selects what a ray does at each cell it passes through.
type PlotMode int

const (
	// BlockingPlot stops at the first wall, leaving the wall itself unmarked,
	// and reveals a 3x3 stamp around every open cell before it.
	BlockingPlot PlotMode = iota
	// AlwaysVisiblePlot reveals a 3x3 stamp around every cell of the line
	// and never stops. Used to highlight debug paths.
	AlwaysVisiblePlot
)

// String returns a human-readable plot mode name.
func (m PlotMode) String() string {
	switch m {
	case BlockingPlot:
		return "blocking"
	case AlwaysVisiblePlot:
		return "always_visible"
	default:
		return "unknown"
	}
}

// plot handles one cell of a ray and reports whether the ray continues.
func (m PlotMode) plot(g *world.Grid, c world.Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	if m == BlockingPlot && g.BlocksLOS(c) {
		return false
	}
	revealAround(g, c)
	return true
}

// revealAround marks c and its eight neighbours. The stamp is wider than the
// ray so diagonal gaps between wall corners do not leave pinholes.
func revealAround(g *world.Grid, c world.Coord) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			g.Reveal(c.Add(dx, dy))
		}
	}
}

// CastRay traces one line from origin to target with the given plot mode.
// It reports whether the ray reached the target.
func CastRay(g *world.Grid, origin, target world.Coord, mode PlotMode) bool {
	reached := false
	Line(origin, target, func(c world.Coord) bool {
		if !mode.plot(g, c) {
			return false
		}
		reached = c == target
		return true
	})
	return reached
}

// Stats describes one visibility pass.
type Stats struct {
	Rays    int // Lines cast
	Visible int // Tiles with InLOS set afterwards
}

// Compute recomputes line of sight from origin. Every InLOS flag is cleared,
// then rays are cast to each cell of a square box with half-extent radius/2
// around origin. Visited is only ever set, never cleared.
//
// This over-reveals and is not an exact single-cell visibility
// test. The cost grows with the cube of the radius, so call it when the
// viewer moves or the grid changes, not per frame.
func Compute(ctx context.Context, g *world.Grid, origin world.Coord, radius int) Stats {
	tracer := telemetry.Tracer("fov")
	_, span := tracer.Start(ctx, "fov.compute")
	defer span.End()

	g.ClearLOS()

	var stats Stats
	if g.InBounds(origin) {
		hr := max(radius, 0) / 2

		minX, maxX := max(origin.X-hr, 0), min(origin.X+hr, g.Width-1)
		minY, maxY := max(origin.Y-hr, 0), min(origin.Y+hr, g.Height-1)

		for ty := minY; ty <= maxY; ty++ {
			for tx := minX; tx <= maxX; tx++ {
				CastRay(g, origin, world.Coord{X: tx, Y: ty}, BlockingPlot)
				stats.Rays++
			}
		}
	}

	stats.Visible = g.Count(func(t world.Tile) bool { return t.InLOS })

	span.SetAttributes(
		attribute.Int("fov.origin_x", origin.X),
		attribute.Int("fov.origin_y", origin.Y),
		attribute.Int("fov.radius", radius),
		attribute.Int("fov.rays", stats.Rays),
		attribute.Int("fov.visible", stats.Visible),
	)

	return stats
}

// Package fov computes line of sight and fog-of-war memory over a world grid.
package fov

import "github.com/samdwyer/fogcrawl/internal/world"

// Line walks the Bresenham line from "from" to "to", calling visit for every
// cell including both endpoints. The walk stops early when visit returns
// false.
//
// The dominant axis is picked from the doubled absolute deltas. When the
// error term is exactly zero the minor axis steps only if the dominant axis
// runs in the positive direction, so a line and its reverse cover the same
// cells.
func Line(from, to world.Coord, visit func(world.Coord) bool) {
	x, y := from.X, from.Y

	dx := to.X - x
	ix := 1
	if dx <= 0 {
		ix = -1
	}
	dx = 2 * abs(dx)

	dy := to.Y - y
	iy := 1
	if dy <= 0 {
		iy = -1
	}
	dy = 2 * abs(dy)

	if !visit(world.Coord{X: x, Y: y}) {
		return
	}

	if dx >= dy {
		err := dy - dx/2
		for x != to.X {
			if err > 0 || (err == 0 && ix > 0) {
				err -= dx
				y += iy
			}
			err += dy
			x += ix
			if !visit(world.Coord{X: x, Y: y}) {
				return
			}
		}
		return
	}

	err := dx - dy/2
	for y != to.Y {
		if err > 0 || (err == 0 && iy > 0) {
			err -= dy
			x += ix
		}
		err += dx
		y += iy
		if !visit(world.Coord{X: x, Y: y}) {
			return
		}
	}
}

// Points returns every cell of the line from "from" to "to".
func Points(from, to world.Coord) []world.Coord {
	var pts []world.Coord
	Line(from, to, func(c world.Coord) bool {
		pts = append(pts, c)
		return true
	})
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

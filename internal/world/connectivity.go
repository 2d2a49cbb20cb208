package world

import "github.com/zyedidia/generic/mapset"

// Connectivity summarises how much of the carved floor can be walked to.
// The generator does not guarantee a connected map; this is a report only.
type Connectivity struct {
	Reachable  int // Floor tiles 4-connected to the start
	TotalFloor int // All floor tiles in the grid
	Pockets    int // Floor components not containing the start
}

// Unreachable returns the number of floor tiles cut off from the start.
func (c Connectivity) Unreachable() int {
	return c.TotalFloor - c.Reachable
}

// AnalyzeConnectivity flood-fills from start and counts the isolated floor
// pockets left over. A start that is not floor reaches nothing.
func AnalyzeConnectivity(grid *Grid, start Coord) Connectivity {
	seen := mapset.New[Coord]()

	var report Connectivity
	if grid.IsPassable(start) {
		report.Reachable = fill(grid, start, seen)
	}

	grid.Each(func(c Coord, t Tile) {
		if t.Type != Floor {
			return
		}
		report.TotalFloor++
		if !seen.Has(c) {
			fill(grid, c, seen)
			report.Pockets++
		}
	})

	return report
}

// fill marks every floor tile 4-connected to from and returns how many it
// added to seen.
func fill(grid *Grid, from Coord, seen mapset.Set[Coord]) int {
	added := 0
	queue := []Coord{from}
	seen.Put(from)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		added++
		for _, n := range current.Neighbors4() {
			if grid.IsPassable(n) && !seen.Has(n) {
				seen.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return added
}

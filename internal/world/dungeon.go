package world

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/fogcrawl/internal/telemetry"
)

// Result is the output of one generation run.
type Result struct {
	Grid  *Grid
	Spawn Coord
	// Rooms are the boxes carved during the walk, in carving order.
	Rooms []Room
	Steps int
}

// Generator builds maps with a bounded random walk that occasionally stamps
// rooms along its path.
type Generator struct {
	cfg GenConfig
}

// NewGenerator creates a generator with the given settings.
func NewGenerator(cfg GenConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate builds a width x height map with the default settings.
func Generate(ctx context.Context, width, height int, rng Random) (*Result, error) {
	cfg := DefaultGenConfig()
	cfg.Width = width
	cfg.Height = height
	return NewGenerator(cfg).Generate(ctx, rng)
}

// Generate creates a new map. The same rng seed and config always produce
// the same grid, rooms and spawn point.
func (g *Generator) Generate(ctx context.Context, rng Random) (*Result, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	if err := g.cfg.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid config")
		return nil, err
	}

	grid, err := NewGrid(g.cfg.Width, g.cfg.Height)
	if err != nil {
		return nil, err
	}

	w := newWalker(grid, g.cfg, rng)
	budget := g.cfg.IterationBudget()
	for w.steps < budget {
		w.step()
	}

	// Rooms near the edge may have carved into the border.
	grid.sealBorder()

	span.SetAttributes(
		attribute.Int("dungeon.width", g.cfg.Width),
		attribute.Int("dungeon.height", g.cfg.Height),
		attribute.Int("dungeon.steps", w.steps),
		attribute.Int("dungeon.room_count", len(w.rooms)),
	)

	if len(w.rooms) == 0 {
		err := fmt.Errorf("%w: walk of %d steps carved no rooms", ErrGenerationFailure, w.steps)
		span.RecordError(err)
		span.SetStatus(codes.Error, "no rooms")
		return nil, err
	}

	spawn, err := pickSpawn(grid, w.rooms, rng, g.cfg.SpawnAttempts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "no spawn")
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("dungeon.spawn_x", spawn.X),
		attribute.Int("dungeon.spawn_y", spawn.Y),
		attribute.Int("dungeon.floor_tiles", grid.Count(func(t Tile) bool { return t.Type == Floor })),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return &Result{
		Grid:  grid,
		Spawn: spawn,
		Rooms: w.rooms,
		Steps: w.steps,
	}, nil
}

// walker is the state of the carving walk.
type walker struct {
	grid *Grid
	cfg  GenConfig
	rng  Random

	pos      Coord
	dir      Coord // unit vector, zero until the first turn
	needTurn bool
	cooldown int
	steps    int
	rooms    []Room
}

func newWalker(grid *Grid, cfg GenConfig, rng Random) *walker {
	p := cfg.BorderPadding
	return &walker{
		grid: grid,
		cfg:  cfg,
		rng:  rng,
		pos: Coord{
			X: rng.IntRange(p, cfg.Width-p-1),
			Y: rng.IntRange(p, cfg.Height-p-1),
		},
		needTurn: true,
	}
}

// step advances the walk by at most one cell. A step blocked by the padded
// edge only turns and does not count against the budget.
func (w *walker) step() {
	if w.needTurn {
		w.turn()
	}

	next := w.pos.Add(w.dir.X, w.dir.Y)
	if !w.inWalkArea(next) {
		w.needTurn = true
		return
	}

	// The move still happens; the turn applies to the next step.
	if chance(w.rng, w.cfg.DirectionChangeChance) {
		w.needTurn = true
	}

	w.pos = next

	if w.cooldown == 0 && !w.besideCarved() && chance(w.rng, w.cfg.RoomChance) {
		w.carveRoom()
	}

	if w.grid.Type(w.pos) == Wall {
		w.grid.SetType(w.pos, Floor)
	}

	w.steps++
	if w.cooldown > 0 {
		w.cooldown--
	}
}

// turn switches to the other axis with a random sign, or picks a random
// axis when the walk has no direction yet.
func (w *walker) turn() {
	w.needTurn = false

	sign := 1
	if w.rng.IntRange(0, 1) == 0 {
		sign = -1
	}

	switch {
	case w.dir.X != 0:
		w.dir = Coord{X: 0, Y: sign}
	case w.dir.Y != 0:
		w.dir = Coord{X: sign, Y: 0}
	default:
		if w.rng.IntRange(0, 1) == 0 {
			w.dir = Coord{X: sign, Y: 0}
		} else {
			w.dir = Coord{X: 0, Y: sign}
		}
	}
}

func (w *walker) inWalkArea(c Coord) bool {
	p := w.cfg.BorderPadding
	return c.X >= p && c.X < w.cfg.Width-p && c.Y >= p && c.Y < w.cfg.Height-p
}

// besideCarved reports whether a cell on the axis perpendicular to travel
// is already carved, i.e. the walk is running alongside open space.
func (w *walker) besideCarved() bool {
	var a, b Coord
	if w.dir.Y != 0 {
		a, b = w.pos.Add(-1, 0), w.pos.Add(1, 0)
	} else {
		a, b = w.pos.Add(0, -1), w.pos.Add(0, 1)
	}
	return w.grid.Type(a) != Wall || w.grid.Type(b) != Wall
}

// carveRoom stamps a randomly sized room centred on the walker.
func (w *walker) carveRoom() {
	width := w.rng.IntRange(w.cfg.RoomMinWidth, w.cfg.RoomMaxWidth)
	height := w.rng.IntRange(w.cfg.RoomMinHeight, w.cfg.RoomMaxHeight)

	room := NewRoom(w.pos, width, height).Clamp(w.cfg.Width, w.cfg.Height)
	w.grid.stampRoom(room)
	w.rooms = append(w.rooms, room)
	w.cooldown = w.cfg.RoomCooldown
}

// pickSpawn samples a floor tile inside a random room.
func pickSpawn(grid *Grid, rooms []Room, rng Random, attempts int) (Coord, error) {
	for i := 0; i < attempts; i++ {
		room := rooms[rng.IntRange(0, len(rooms)-1)]
		c := Coord{
			X: rng.IntRange(room.MinX, room.MaxX),
			Y: rng.IntRange(room.MinY, room.MaxY),
		}
		if grid.IsPassable(c) {
			return c, nil
		}
	}

	// Sampling kept landing on resealed border cells; take the first floor
	// tile of any room instead.
	for _, room := range rooms {
		for y := room.MinY; y <= room.MaxY; y++ {
			for x := room.MinX; x <= room.MaxX; x++ {
				if c := (Coord{x, y}); grid.IsPassable(c) {
					return c, nil
				}
			}
		}
	}

	return Coord{}, fmt.Errorf("%w: no floor tile in %d rooms", ErrGenerationFailure, len(rooms))
}

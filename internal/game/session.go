package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fogcrawl/internal/entity"
	"github.com/samdwyer/fogcrawl/internal/fov"
	"github.com/samdwyer/fogcrawl/internal/telemetry"
	"github.com/samdwyer/fogcrawl/internal/world"
)

// Session is one viewer exploring one map. It owns the grid and the fog of
// war over it; nothing in it is shared, and it is not safe for concurrent use.
type Session struct {
	cfg       Config
	generator *world.Generator
	rng       *world.RandSource

	grid   *world.Grid
	rooms  []world.Room
	spawn  world.Coord
	viewer *entity.Viewer
	mode   ViewMode

	connectivity world.Connectivity

	generation int // Maps built so far
	attempts   int // Generator runs needed for the current map
	losPasses  int
}

// NewSession creates a session and generates its first map. A zero seed in
// cfg is replaced with a time-based one.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:       cfg,
		generator: world.NewGenerator(cfg.Gen),
		rng:       world.NewRandom(cfg.Seed),
		mode:      ModeFog,
	}
	if err := s.Regenerate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate builds a new map from the continuing random stream and swaps
// it in once it is complete. Maps without rooms are retried up to
// MaxGenerationAttempts times; on failure the current map is kept.
func (s *Session) Regenerate(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.regenerate")
	defer span.End()

	var (
		res *world.Result
		err error
	)
	attempts := 0
	for attempts < s.cfg.MaxGenerationAttempts {
		attempts++
		res, err = s.generator.Generate(ctx, s.rng)
		if err == nil || !errors.Is(err, world.ErrGenerationFailure) {
			break
		}
	}
	span.SetAttributes(attribute.Int("session.attempts", attempts))
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("regenerate after %d attempts: %w", attempts, err)
	}

	// Swap only a fully built map.
	s.grid = res.Grid
	s.rooms = res.Rooms
	s.spawn = res.Spawn
	s.attempts = attempts
	s.generation++

	if s.viewer == nil {
		s.viewer = entity.NewViewer(res.Spawn, s.cfg.VisionRadius)
	} else {
		s.viewer.Pos = res.Spawn
	}

	s.connectivity = world.AnalyzeConnectivity(s.grid, s.spawn)
	s.updateVisibility(ctx)

	span.SetAttributes(
		attribute.Int64("session.seed", s.cfg.Seed),
		attribute.Int("session.generation", s.generation),
		attribute.Int("session.rooms", len(s.rooms)),
		attribute.Int("session.reachable", s.connectivity.Reachable),
		attribute.Int("session.pockets", s.connectivity.Pockets),
	)
	return nil
}

// Reseed restarts the random stream from seed and regenerates. Reseeding
// twice with the same seed yields the same map and spawn point.
func (s *Session) Reseed(ctx context.Context, seed int64) error {
	s.cfg.Seed = seed
	s.rng = world.NewRandom(seed)
	return s.Regenerate(ctx)
}

// Move steps the viewer one tile in dir. Moves into walls are rejected.
// Every accepted move runs exactly one visibility pass.
func (s *Session) Move(ctx context.Context, dir Direction) bool {
	dx, dy, ok := dir.Delta()
	if !ok {
		return false
	}

	target := s.viewer.Pos.Add(dx, dy)
	if !s.grid.IsPassable(target) {
		return false
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.move")
	defer span.End()
	span.SetAttributes(
		attribute.String("move.direction", dir.String()),
		attribute.Int("move.x", target.X),
		attribute.Int("move.y", target.Y),
	)

	s.viewer.Move(dx, dy)
	s.updateVisibility(ctx)
	return true
}

// TraceToSpawn lights the straight line from the viewer to the spawn point,
// walls included. It is a debug aid; the next move clears the highlight
// from the line of sight but the tiles stay visited.
func (s *Session) TraceToSpawn() {
	fov.CastRay(s.grid, s.viewer.Pos, s.spawn, fov.AlwaysVisiblePlot)
}

// ToggleMode switches between fog of war and the fully revealed map.
func (s *Session) ToggleMode() ViewMode {
	s.mode = s.mode.Toggle()
	return s.mode
}

func (s *Session) updateVisibility(ctx context.Context) {
	fov.Compute(ctx, s.grid, s.viewer.Pos, s.viewer.VisionRadius)
	s.losPasses++
}

// Grid returns the current map.
func (s *Session) Grid() *world.Grid {
	return s.grid
}

// Viewer returns the viewer.
func (s *Session) Viewer() *entity.Viewer {
	return s.viewer
}

// Spawn returns where the viewer started on the current map.
func (s *Session) Spawn() world.Coord {
	return s.spawn
}

// Rooms returns the rooms carved for the current map.
func (s *Session) Rooms() []world.Room {
	return s.rooms
}

// Mode returns the current view mode.
func (s *Session) Mode() ViewMode {
	return s.mode
}

// Seed returns the seed the random stream started from.
func (s *Session) Seed() int64 {
	return s.cfg.Seed
}

// Generation returns how many maps this session has built.
func (s *Session) Generation() int {
	return s.generation
}

// VisibilityPasses returns how many times line of sight was recomputed.
func (s *Session) VisibilityPasses() int {
	return s.losPasses
}

// Connectivity returns the reachability report for the current map.
func (s *Session) Connectivity() world.Connectivity {
	return s.connectivity
}

// Dump renders the whole map as text with the viewer drawn on top,
// ignoring the fog of war.
func (s *Session) Dump() string {
	var b strings.Builder
	b.Grow((s.grid.Width + 1) * s.grid.Height)
	for y := 0; y < s.grid.Height; y++ {
		for x := 0; x < s.grid.Width; x++ {
			c := world.Coord{X: x, Y: y}
			if c == s.viewer.Pos {
				b.WriteRune(s.viewer.Symbol)
				continue
			}
			b.WriteRune(s.grid.Type(c).Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Summary describes the current map in one line, for logs and status bars.
func (s *Session) Summary() string {
	return fmt.Sprintf("seed %d  map #%d  %dx%d  rooms %d  attempts %d  reachable %d/%d  pockets %d",
		s.cfg.Seed, s.generation, s.grid.Width, s.grid.Height, len(s.rooms), s.attempts,
		s.connectivity.Reachable, s.connectivity.TotalFloor, s.connectivity.Pockets)
}

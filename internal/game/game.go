package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fogcrawl/internal/gamedata"
	"github.com/samdwyer/fogcrawl/internal/telemetry"
	"github.com/samdwyer/fogcrawl/internal/ui"
)

// Game runs a session in the local terminal.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	message  string
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}

	theme := ui.NewTheme(palette)
	screen, err := ui.NewScreen(theme)
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		running:  true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	session, err := NewSession(ctx, g.cfg)
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		g.screen.Close()
		return err
	}
	g.session = session

	spawn := session.Spawn()
	initSpan.SetAttributes(
		attribute.String("game.preset", g.cfg.Preset),
		attribute.Int("dungeon.rooms", len(session.Rooms())),
		attribute.Int("viewer.start_x", spawn.X),
		attribute.Int("viewer.start_y", spawn.Y),
	)
	initSpan.End()

	for g.running {
		g.renderer.Render(g.session.Frame(g.message))
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.running, g.message = g.session.Apply(ctx, KeyAction(ev))
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}

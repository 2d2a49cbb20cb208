package ui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/fogcrawl/internal/entity"
	"github.com/samdwyer/fogcrawl/internal/gamedata"
	"github.com/samdwyer/fogcrawl/internal/world"
)

func TestShadeOf(t *testing.T) {
	tests := []struct {
		name      string
		tile      world.Tile
		revealAll bool
		want      Shade
	}{
		{"unseen", world.Tile{}, false, ShadeHidden},
		{"remembered", world.Tile{Visited: true}, false, ShadeRemembered},
		{"in sight", world.Tile{InLOS: true, Visited: true}, false, ShadeLit},
		{"unseen revealed", world.Tile{}, true, ShadeLit},
		{"remembered revealed", world.Tile{Visited: true}, true, ShadeLit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShadeOf(tt.tile, tt.revealAll); got != tt.want {
				t.Errorf("ShadeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCameraOffset(t *testing.T) {
	tests := []struct {
		name                     string
		focus, mapSize, viewSize int
		want                     int
	}{
		{"map fits", 3, 10, 20, 0},
		{"map exactly fits", 9, 20, 20, 0},
		{"centred", 50, 128, 20, 40},
		{"clamped at start", 2, 128, 20, 0},
		{"clamped at end", 126, 128, 20, 108},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cameraOffset(tt.focus, tt.mapSize, tt.viewSize); got != tt.want {
				t.Errorf("cameraOffset(%d, %d, %d) = %d, want %d",
					tt.focus, tt.mapSize, tt.viewSize, got, tt.want)
			}
		})
	}
}

func TestTileColor(t *testing.T) {
	palette := gamedata.MustLoadPalette()
	theme := NewTheme(palette)

	tests := []struct {
		name  string
		tile  world.Tile
		shade Shade
		want  tcell.Color
	}{
		{"lit wall", world.Tile{Type: world.Wall}, ShadeLit, palette.Wall.Lit},
		{"remembered wall", world.Tile{Type: world.Wall}, ShadeRemembered, palette.Wall.Remembered},
		{"lit corridor", world.Tile{Type: world.Floor}, ShadeLit, palette.Floor.Lit},
		{"remembered corridor", world.Tile{Type: world.Floor}, ShadeRemembered, palette.Floor.Remembered},
		{"lit room", world.Tile{Type: world.Floor, Room: true}, ShadeLit, palette.RoomFloor.Lit},
		{"remembered room", world.Tile{Type: world.Floor, Room: true}, ShadeRemembered, palette.RoomFloor.Remembered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := theme.TileColor(tt.tile, tt.shade); got != tt.want {
				t.Errorf("TileColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

// smallFrame is a 5x3 map with only the viewer's tile and its right
// neighbour seen.
func smallFrame(t *testing.T) Frame {
	t.Helper()
	g, err := world.ParseGrid(
		"#####",
		"#...#",
		"#####",
	)
	if err != nil {
		t.Fatalf("ParseGrid() error = %v", err)
	}
	g.Reveal(world.Coord{X: 1, Y: 1})
	g.Reveal(world.Coord{X: 2, Y: 1})
	return Frame{
		Grid:   g,
		Viewer: entity.NewViewer(world.Coord{X: 1, Y: 1}, 4),
		Status: "hi",
	}
}

var escapes = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

func TestComposeFrame(t *testing.T) {
	theme := NewTheme(gamedata.MustLoadPalette())
	f := smallFrame(t)

	got := escapes.ReplaceAllString(theme.ComposeFrame(f, 5, 4), "")
	want := "     " + " @.  " + "     " + "hi   "
	if got != want {
		t.Errorf("fog frame = %q, want %q", got, want)
	}

	f.RevealAll = true
	got = escapes.ReplaceAllString(theme.ComposeFrame(f, 5, 4), "")
	want = "#####" + "#@..#" + "#####" + "hi   "
	if got != want {
		t.Errorf("revealed frame = %q, want %q", got, want)
	}
}

func TestComposeFrameTruncatesStatus(t *testing.T) {
	theme := NewTheme(gamedata.MustLoadPalette())
	f := smallFrame(t)
	f.Status = "a status line longer than the terminal"

	got := escapes.ReplaceAllString(theme.ComposeFrame(f, 5, 4), "")
	if !strings.HasSuffix(got, "a sta") {
		t.Errorf("frame = %q, want status truncated to %q", got, "a sta")
	}
}

func TestComposeFrameColours(t *testing.T) {
	palette := gamedata.MustLoadPalette()
	theme := NewTheme(palette)
	f := smallFrame(t)

	out := theme.ComposeFrame(f, 5, 4)
	if !strings.Contains(out, foreground(palette.Viewer)) {
		t.Error("frame is missing the viewer colour")
	}
	if !strings.Contains(out, foreground(palette.Floor.Lit)) {
		t.Error("frame is missing the lit floor colour")
	}
	if !strings.HasSuffix(out, ResetStyle) {
		t.Error("frame should end by resetting the style")
	}
}

func TestComposeFrameEmptyTerminal(t *testing.T) {
	theme := NewTheme(gamedata.MustLoadPalette())
	if got := theme.ComposeFrame(smallFrame(t), 0, 0); got != "" {
		t.Errorf("ComposeFrame on a zero-size terminal = %q, want empty", got)
	}
}

func TestMoveTo(t *testing.T) {
	if got := MoveTo(3, 7); got != "\x1b[3;7H" {
		t.Errorf("MoveTo(3, 7) = %q", got)
	}
}

func TestRenderer(t *testing.T) {
	theme := NewTheme(gamedata.MustLoadPalette())
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := initScreen(sim, theme)
	if err != nil {
		t.Fatalf("initScreen() error = %v", err)
	}
	defer screen.Close()
	sim.SetSize(5, 4)

	r := NewRenderer(screen, theme)
	r.Render(smallFrame(t))

	tests := []struct {
		x, y int
		want rune
	}{
		{1, 1, '@'},
		{2, 1, '.'},
		{3, 1, ' '}, // never seen
		{0, 1, ' '}, // wall never seen
		{0, 3, 'h'},
		{1, 3, 'i'},
	}
	for _, tt := range tests {
		got, _, _, _ := sim.GetContent(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("cell (%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

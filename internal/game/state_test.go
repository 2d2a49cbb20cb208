package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestViewMode(t *testing.T) {
	tests := []struct {
		mode   ViewMode
		name   string
		toggle ViewMode
	}{
		{ModeFog, "fog", ModeRevealed},
		{ModeRevealed, "revealed", ModeFog},
		{ViewMode(5), "unknown", ModeFog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.mode.Toggle(); got != tt.toggle {
				t.Errorf("Toggle() = %v, want %v", got, tt.toggle)
			}
		})
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		name   string
		dx, dy int
		ok     bool
	}{
		{DirUp, "up", 0, -1, true},
		{DirDown, "down", 0, 1, true},
		{DirLeft, "left", -1, 0, true},
		{DirRight, "right", 1, 0, true},
		{Direction(-1), "unknown", 0, 0, false},
		{Direction(4), "unknown", 0, 0, false},
	}

	for _, tt := range tests {
		dx, dy, ok := tt.dir.Delta()
		if dx != tt.dx || dy != tt.dy || ok != tt.ok {
			t.Errorf("%v.Delta() = (%d, %d, %v), want (%d, %d, %v)", tt.dir, dx, dy, ok, tt.dx, tt.dy, tt.ok)
		}
		if got := tt.dir.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
	}
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Move(DirUp)},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), Move(DirDown)},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Move(DirLeft)},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), Move(DirRight)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Action{Kind: ActionQuit}},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Action{Kind: ActionQuit}},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), Move(DirUp)},
		{"D", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), Move(DirRight)},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), Action{Kind: ActionRegenerate}},
		{"l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), Action{Kind: ActionToggleMode}},
		{"t", tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone), Action{Kind: ActionTrace}},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Action{Kind: ActionQuit}},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), Action{}},
		{"unbound key", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), Action{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyAction(tt.ev); got != tt.want {
				t.Errorf("KeyAction() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

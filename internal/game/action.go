package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/fogcrawl/internal/ui"
)

// Action is a player command, independent of the input device.
type Action struct {
	Kind ActionKind
	Dir  Direction // Only for ActionMove
}

// ActionKind identifies what an Action does.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionMove
	ActionRegenerate
	ActionToggleMode
	ActionTrace
	ActionQuit
)

// Move returns a movement action.
func Move(dir Direction) Action {
	return Action{Kind: ActionMove, Dir: dir}
}

// KeyAction maps a tcell key event to an action.
func KeyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Kind: ActionQuit}
	case tcell.KeyUp:
		return Move(DirUp)
	case tcell.KeyDown:
		return Move(DirDown)
	case tcell.KeyLeft:
		return Move(DirLeft)
	case tcell.KeyRight:
		return Move(DirRight)
	case tcell.KeyRune:
		return RuneAction(ev.Rune())
	}
	return Action{}
}

// RuneAction maps a character key to an action.
func RuneAction(r rune) Action {
	switch r {
	case 'w', 'W':
		return Move(DirUp)
	case 's', 'S':
		return Move(DirDown)
	case 'a', 'A':
		return Move(DirLeft)
	case 'd', 'D':
		return Move(DirRight)
	case 'r', 'R':
		return Action{Kind: ActionRegenerate}
	case 'l', 'L':
		return Action{Kind: ActionToggleMode}
	case 't', 'T':
		return Action{Kind: ActionTrace}
	case 'q', 'Q':
		return Action{Kind: ActionQuit}
	}
	return Action{}
}

// Apply performs an action on the session. It returns false once the
// player asked to quit, plus a short message for the status line.
func (s *Session) Apply(ctx context.Context, a Action) (bool, string) {
	switch a.Kind {
	case ActionQuit:
		return false, ""
	case ActionMove:
		if !s.Move(ctx, a.Dir) {
			return true, "blocked"
		}
	case ActionRegenerate:
		if err := s.Regenerate(ctx); err != nil {
			return true, err.Error()
		}
		return true, fmt.Sprintf("new map, %d rooms", len(s.rooms))
	case ActionToggleMode:
		return true, s.ToggleMode().String()
	case ActionTrace:
		s.TraceToSpawn()
		return true, "traced to spawn " + s.spawn.String()
	}
	return true, ""
}

const helpLine = "arrows/wasd move  r regen  l fog  t trace  q quit"

// Status formats the status line shown under the map.
func (s *Session) Status(msg string) string {
	line := fmt.Sprintf("seed %d  map #%d  rooms %d  %s  %s",
		s.cfg.Seed, s.generation, len(s.rooms), s.viewer.Pos, s.mode)
	if msg != "" {
		line += "  | " + msg
	}
	return line + "  | " + helpLine
}

// Frame returns what the renderers need to draw the session.
func (s *Session) Frame(msg string) ui.Frame {
	return ui.Frame{
		Grid:      s.grid,
		Viewer:    s.viewer,
		RevealAll: s.mode == ModeRevealed,
		Status:    s.Status(msg),
	}
}

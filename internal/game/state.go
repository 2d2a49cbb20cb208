// Package game provides the play session and the terminal game loop.
package game

// ViewMode controls how much of the map the renderers show.
type ViewMode int

const (
	// ModeFog is the default: lit tiles at full brightness, remembered tiles
	// dimmed, unseen tiles hidden.
	ModeFog ViewMode = iota
	// ModeRevealed draws the whole map lit, ignoring the fog of war.
	ModeRevealed
)

// String returns a human-readable mode name.
func (m ViewMode) String() string {
	switch m {
	case ModeFog:
		return "fog"
	case ModeRevealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode.
func (m ViewMode) Toggle() ViewMode {
	if m == ModeFog {
		return ModeRevealed
	}
	return ModeFog
}

// Direction is one of the four axis-aligned moves.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit vector for the direction. ok is false for values
// outside the four defined directions.
func (d Direction) Delta() (dx, dy int, ok bool) {
	switch d {
	case DirUp:
		return 0, -1, true
	case DirDown:
		return 0, 1, true
	case DirLeft:
		return -1, 0, true
	case DirRight:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

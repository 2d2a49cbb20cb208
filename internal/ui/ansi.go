package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

const (
	esc = "\x1b"
	csi = esc + "["

	// ResetStyle clears all colour attributes.
	ResetStyle = csi + "0m"
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return csi + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return csi + "2J"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return csi + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return csi + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return csi + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return csi + "?1049l"
}

// foreground returns the truecolor escape for c, or the default-colour
// escape when c carries no RGB value.
func foreground(c tcell.Color) string {
	if !c.Valid() || c == tcell.ColorDefault {
		return csi + "39m"
	}
	r, g, b := c.RGB()
	return csi + "38;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m"
}

// ComposeFrame renders f as a full-screen ANSI string for a width x height
// terminal. The bottom row holds the status line. Colour escapes are only
// emitted when the colour changes.
func (th Theme) ComposeFrame(f Frame, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	mapHeight := height - 1
	vp := newViewport(f, width, mapHeight)

	var b strings.Builder
	b.Grow(width * height * 4)

	background := th.palette.Background
	if background.Valid() {
		r, g, bl := background.RGB()
		b.WriteString(csi + "48;2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(bl)) + "m")
	}

	var current tcell.Color
	haveColor := false
	bold := false
	for sy := 0; sy < mapHeight; sy++ {
		b.WriteString(MoveTo(sy+1, 1))
		for sx := 0; sx < width; sx++ {
			c := th.cellAt(f, vp, sx, sy)
			if c.ch != ' ' && (!haveColor || c.color != current) {
				b.WriteString(foreground(c.color))
				current, haveColor = c.color, true
			}
			if c.bold != bold {
				if c.bold {
					b.WriteString(csi + "1m")
				} else {
					b.WriteString(csi + "22m")
				}
				bold = c.bold
			}
			b.WriteRune(c.ch)
		}
	}

	b.WriteString(MoveTo(height, 1))
	b.WriteString(foreground(th.palette.Status))
	if bold {
		b.WriteString(csi + "22m")
	}
	status := []rune(f.Status)
	if len(status) > width {
		status = status[:width]
	}
	b.WriteString(string(status))
	b.WriteString(strings.Repeat(" ", width-len(status)))
	b.WriteString(ResetStyle)

	return b.String()
}

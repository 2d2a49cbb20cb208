package ui

import (
	"github.com/gdamore/tcell/v2"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  Theme
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws the visible part of the map, the viewer and the status line.
// The bottom row of the screen is reserved for the status line.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	width, height := r.screen.Size()
	mapHeight := max(height-1, 0)
	vp := newViewport(f, width, mapHeight)

	for sy := 0; sy < mapHeight; sy++ {
		for sx := 0; sx < width; sx++ {
			c := r.theme.cellAt(f, vp, sx, sy)
			if c.ch == ' ' {
				continue
			}
			style := tcell.StyleDefault.
				Background(r.theme.palette.Background).
				Foreground(c.color).
				Bold(c.bold)
			r.screen.SetContent(sx, sy, c.ch, style)
		}
	}

	if height > 0 {
		r.RenderMessage(f.Status, height-1)
	}

	r.screen.Show()
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(r.theme.palette.Status)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}

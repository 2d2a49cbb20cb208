package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ShadeDef holds the two colours a tile kind is drawn with.
type ShadeDef struct {
	Lit        string `json:"lit"`        // Colour while in line of sight
	Remembered string `json:"remembered"` // Colour once seen but out of sight
}

// PaletteDef is the raw content of palette.json.
type PaletteDef struct {
	Wall       ShadeDef `json:"wall"`
	Floor      ShadeDef `json:"floor"`     // Corridor floor carved by the walk
	RoomFloor  ShadeDef `json:"roomFloor"` // Floor stamped by a room
	Viewer     string   `json:"viewer"`
	Background string   `json:"background"`
	Status     string   `json:"status"`
}

// Shade is a resolved lit/remembered colour pair.
type Shade struct {
	Lit        tcell.Color
	Remembered tcell.Color
}

// Palette is the resolved set of colours used by the renderers.
type Palette struct {
	Wall       Shade
	Floor      Shade
	RoomFloor  Shade
	Viewer     tcell.Color
	Background tcell.Color
	Status     tcell.Color
}

// Resolve parses every colour in the definition.
func (d PaletteDef) Resolve() (Palette, error) {
	var (
		p   Palette
		err error
	)

	parse := func(field, hex string, dst *tcell.Color) {
		if err != nil {
			return
		}
		var c tcell.Color
		if c, err = ParseHexColor(hex); err != nil {
			err = fmt.Errorf("palette %s: %w", field, err)
			return
		}
		*dst = c
	}

	parse("wall.lit", d.Wall.Lit, &p.Wall.Lit)
	parse("wall.remembered", d.Wall.Remembered, &p.Wall.Remembered)
	parse("floor.lit", d.Floor.Lit, &p.Floor.Lit)
	parse("floor.remembered", d.Floor.Remembered, &p.Floor.Remembered)
	parse("roomFloor.lit", d.RoomFloor.Lit, &p.RoomFloor.Lit)
	parse("roomFloor.remembered", d.RoomFloor.Remembered, &p.RoomFloor.Remembered)
	parse("viewer", d.Viewer, &p.Viewer)
	parse("background", d.Background, &p.Background)
	parse("status", d.Status, &p.Status)

	return p, err
}

// LoadPalette loads and resolves the embedded palette.json.
func LoadPalette() (Palette, error) {
	def, err := Load[PaletteDef]("palette.json")
	if err != nil {
		return Palette{}, err
	}
	return def.Resolve()
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

package gamedata

import (
	"fmt"

	"github.com/samdwyer/fogcrawl/internal/world"
)

// PresetDef is a named set of generator settings loaded from JSON.
type PresetDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "caverns")
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // One-line summary for -help output

	Width               int     `json:"width"`
	Height              int     `json:"height"`
	BorderPadding       int     `json:"borderPadding"`
	IterationMultiplier float64 `json:"iterationMultiplier"`

	DirectionChangeChance int `json:"directionChangeChance"` // Percent
	RoomChance            int `json:"roomChance"`            // Percent
	RoomCooldown          int `json:"roomCooldown"`          // Steps

	RoomWidth  [2]int `json:"roomWidth"`  // Inclusive min/max
	RoomHeight [2]int `json:"roomHeight"` // Inclusive min/max

	VisionRadius int `json:"visionRadius"`
}

// GenConfig converts the preset into generator settings. Fields the preset
// does not cover keep their defaults.
func (p *PresetDef) GenConfig() world.GenConfig {
	cfg := world.DefaultGenConfig()
	cfg.Width = p.Width
	cfg.Height = p.Height
	cfg.BorderPadding = p.BorderPadding
	cfg.IterationMultiplier = p.IterationMultiplier
	cfg.DirectionChangeChance = p.DirectionChangeChance
	cfg.RoomChance = p.RoomChance
	cfg.RoomCooldown = p.RoomCooldown
	cfg.RoomMinWidth, cfg.RoomMaxWidth = p.RoomWidth[0], p.RoomWidth[1]
	cfg.RoomMinHeight, cfg.RoomMaxHeight = p.RoomHeight[0], p.RoomHeight[1]
	return cfg
}

// Validate checks that the preset describes a usable generator.
func (p *PresetDef) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("preset %q has no id", p.Name)
	}
	if p.VisionRadius < 0 {
		return fmt.Errorf("preset %s: negative vision radius %d", p.ID, p.VisionRadius)
	}
	if err := p.GenConfig().Validate(); err != nil {
		return fmt.Errorf("preset %s: %w", p.ID, err)
	}
	return nil
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []PresetDef `json:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]PresetDef, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}

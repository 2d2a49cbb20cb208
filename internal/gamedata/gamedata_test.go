package gamedata

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/fogcrawl/internal/world"
)

func TestLoadPresets(t *testing.T) {
	presets, err := LoadPresets()
	if err != nil {
		t.Fatalf("Failed to load presets: %v", err)
	}

	if len(presets) != 4 {
		t.Errorf("Expected 4 presets, got %d", len(presets))
	}

	// Verify expected presets exist
	expectedIDs := map[string]bool{"default": false, "caverns": false, "sparse": false, "tiny": false}
	for _, p := range presets {
		if _, ok := expectedIDs[p.ID]; ok {
			expectedIDs[p.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected preset %q not found", id)
		}
	}
}

func TestDefaultPresetMatchesGeneratorDefaults(t *testing.T) {
	registry := MustLoadPresetRegistry()

	p, err := registry.Lookup("")
	if err != nil {
		t.Fatalf("Lookup of default preset failed: %v", err)
	}
	if got, want := p.GenConfig(), world.DefaultGenConfig(); got != want {
		t.Errorf("default preset config = %+v, want %+v", got, want)
	}
	if p.VisionRadius != 20 {
		t.Errorf("default vision radius = %d, want 20", p.VisionRadius)
	}
}

func TestPresetRegistry(t *testing.T) {
	registry, err := LoadPresetRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 4 {
		t.Errorf("Expected 4 presets, got %d", registry.Count())
	}

	caverns := registry.GetByID("caverns")
	if caverns == nil {
		t.Fatal("caverns not found by ID")
	}
	if caverns.Name != "Caverns" {
		t.Errorf("Expected name 'Caverns', got %q", caverns.Name)
	}

	if _, err := registry.Lookup("volcano"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}

	ids := registry.IDs()
	want := []string{"caverns", "default", "sparse", "tiny"}
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestEveryPresetGenerates(t *testing.T) {
	registry := MustLoadPresetRegistry()
	for _, p := range registry.All() {
		res, err := world.NewGenerator(p.GenConfig()).Generate(context.Background(), world.NewRandom(3))
		if err != nil {
			t.Errorf("preset %s: generation failed: %v", p.ID, err)
			continue
		}
		if res.Grid.Width != p.Width || res.Grid.Height != p.Height {
			t.Errorf("preset %s: got %dx%d grid", p.ID, res.Grid.Width, res.Grid.Height)
		}
	}
}

func TestNewPresetRegistryRejectsBadPresets(t *testing.T) {
	good := PresetDef{
		ID: "a", Width: 30, Height: 20, BorderPadding: 2, IterationMultiplier: 0.5,
		RoomChance: 5, RoomWidth: [2]int{3, 5}, RoomHeight: [2]int{3, 5},
	}

	dup := []PresetDef{good, good}
	if _, err := NewPresetRegistry(dup); err == nil {
		t.Error("expected duplicate id error")
	}

	bad := good
	bad.RoomWidth = [2]int{6, 2}
	if _, err := NewPresetRegistry([]PresetDef{bad}); !errors.Is(err, world.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	tiny := good
	tiny.Width = 3
	if _, err := NewPresetRegistry([]PresetDef{tiny}); !errors.Is(err, world.ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    tcell.Color
		wantErr bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), false},
		{"00ff00", tcell.NewRGBColor(0, 255, 0), false},
		{"#00F", tcell.NewRGBColor(0, 0, 255), false},
		{" #3A3A3A ", tcell.NewRGBColor(0x3a, 0x3a, 0x3a), false},
		{"#12345", 0, true},
		{"#GGGGGG", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}
	if p.Wall.Lit != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("wall lit colour = %v", p.Wall.Lit)
	}
	if p.Floor.Lit == p.Floor.Remembered {
		t.Error("lit and remembered floor should differ")
	}
	if p.Floor.Lit == p.RoomFloor.Lit {
		t.Error("corridor and room floor should differ")
	}
}

func TestPaletteResolveReportsField(t *testing.T) {
	def := PaletteDef{
		Wall:       ShadeDef{Lit: "#FFF", Remembered: "#333"},
		Floor:      ShadeDef{Lit: "nope", Remembered: "#333"},
		RoomFloor:  ShadeDef{Lit: "#FFF", Remembered: "#333"},
		Viewer:     "#FFF",
		Background: "#000",
		Status:     "#AAA",
	}
	_, err := def.Resolve()
	if err == nil {
		t.Fatal("expected an error for the bad floor colour")
	}
	if !strings.Contains(err.Error(), "floor.lit") {
		t.Errorf("error should name the field, got %q", err)
	}
}

func TestParse(t *testing.T) {
	if _, err := Parse[PresetsFile]("inline", []byte(`{"presets": [`)); err == nil {
		t.Error("expected a parse error for truncated JSON")
	}
	file, err := Parse[PresetsFile]("inline", []byte(`{"presets": [{"id": "x"}]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(file.Presets) != 1 || file.Presets[0].ID != "x" {
		t.Errorf("unexpected parse result %+v", file)
	}
}

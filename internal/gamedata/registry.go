package gamedata

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultPresetID names the preset used when none is requested.
const DefaultPresetID = "default"

// ErrUnknownPreset is returned when a preset ID is not in the registry.
var ErrUnknownPreset = errors.New("unknown preset")

// PresetRegistry holds loaded generator presets keyed by ID.
type PresetRegistry struct {
	presets map[string]*PresetDef
	all     []PresetDef
}

// NewPresetRegistry creates a registry from loaded preset definitions.
// Every preset is validated; duplicate IDs are rejected.
func NewPresetRegistry(presets []PresetDef) (*PresetRegistry, error) {
	registry := &PresetRegistry{
		presets: make(map[string]*PresetDef, len(presets)),
		all:     presets,
	}
	for i := range presets {
		p := &presets[i]
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := registry.presets[p.ID]; dup {
			return nil, fmt.Errorf("duplicate preset id %q", p.ID)
		}
		registry.presets[p.ID] = p
	}
	return registry, nil
}

// LoadPresetRegistry loads and creates a registry from the embedded presets.json.
func LoadPresetRegistry() (*PresetRegistry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewPresetRegistry(presets)
}

// MustLoadPresetRegistry loads a registry, panicking on error.
func MustLoadPresetRegistry() *PresetRegistry {
	registry, err := LoadPresetRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given ID, or nil if not found.
func (r *PresetRegistry) GetByID(id string) *PresetDef {
	return r.presets[id]
}

// Lookup returns the preset with the given ID. An empty ID selects the
// default preset.
func (r *PresetRegistry) Lookup(id string) (*PresetDef, error) {
	if id == "" {
		id = DefaultPresetID
	}
	p := r.presets[id]
	if p == nil {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownPreset, id, r.IDs())
	}
	return p, nil
}

// IDs returns the sorted preset IDs.
func (r *PresetRegistry) IDs() []string {
	ids := make([]string, 0, len(r.presets))
	for id := range r.presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns all preset definitions in file order.
func (r *PresetRegistry) All() []PresetDef {
	return r.all
}

// Count returns the number of presets in the registry.
func (r *PresetRegistry) Count() int {
	return len(r.all)
}

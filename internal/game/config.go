package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/samdwyer/fogcrawl/internal/gamedata"
	"github.com/samdwyer/fogcrawl/internal/telemetry"
	"github.com/samdwyer/fogcrawl/internal/world"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed                  = "FOGCRAWL_SEED"
	EnvPreset                = "FOGCRAWL_PRESET"
	EnvWidth                 = "FOGCRAWL_WIDTH"
	EnvHeight                = "FOGCRAWL_HEIGHT"
	EnvVisionRadius          = "FOGCRAWL_VISION_RADIUS"
	EnvBorderPadding         = "FOGCRAWL_BORDER_PADDING"
	EnvDirectionChangeChance = "FOGCRAWL_DIRECTION_CHANGE_CHANCE"
	EnvRoomChance            = "FOGCRAWL_ROOM_CHANCE"
	EnvRoomCooldown          = "FOGCRAWL_ROOM_COOLDOWN"
	EnvMaxGenerationAttempts = "FOGCRAWL_MAX_GENERATION_ATTEMPTS"
	EnvSSHAddr               = "FOGCRAWL_SSH_ADDR"
	EnvSSHHostKey            = "FOGCRAWL_SSH_HOST_KEY"

	EnvHoneycombAPIKey  = "HONEYCOMB_FOGCRAWL_API_KEY"
	EnvHoneycombDataset = "HONEYCOMB_FOGCRAWL_DATASET"
	EnvOTLPEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Preset is the ID of the generator preset Gen was built from.
	Preset string
	Gen    world.GenConfig

	VisionRadius int

	// MaxGenerationAttempts bounds retries after a map without rooms.
	MaxGenerationAttempts int

	SSHAddr    string // Listen address for the SSH front-end; empty runs locally
	SSHHostKey string // Path of the SSH host key, created when missing

	Telemetry telemetry.Config
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Preset:                gamedata.DefaultPresetID,
		Gen:                   world.DefaultGenConfig(),
		VisionRadius:          20,
		MaxGenerationAttempts: 10,
		SSHHostKey:            "fogcrawl_host_key",
	}
}

// ApplyPreset replaces the generator settings and vision radius with the
// preset's values.
func (c *Config) ApplyPreset(p *gamedata.PresetDef) {
	c.Preset = p.ID
	c.Gen = p.GenConfig()
	c.VisionRadius = p.VisionRadius
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := c.Gen.Validate(); err != nil {
		return err
	}
	if c.VisionRadius < 0 {
		return fmt.Errorf("vision radius must not be negative, got %d", c.VisionRadius)
	}
	if c.MaxGenerationAttempts < 1 {
		return fmt.Errorf("max generation attempts must be at least 1, got %d", c.MaxGenerationAttempts)
	}
	return nil
}

// LookupFunc fetches a configuration value by key, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// MapLookup returns a LookupFunc backed by a map.
func MapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// ConfigFromEnv builds a Config from environment-style variables. The preset
// is applied first so the individual variables can override it.
func ConfigFromEnv(lookup LookupFunc) (Config, error) {
	cfg := DefaultConfig()

	presets, err := gamedata.LoadPresetRegistry()
	if err != nil {
		return cfg, err
	}
	id, _ := lookup(EnvPreset)
	preset, err := presets.Lookup(id)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyPreset(preset)

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("parse %s=%q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &cfg.Gen.Width},
		{EnvHeight, &cfg.Gen.Height},
		{EnvVisionRadius, &cfg.VisionRadius},
		{EnvBorderPadding, &cfg.Gen.BorderPadding},
		{EnvDirectionChangeChance, &cfg.Gen.DirectionChangeChance},
		{EnvRoomChance, &cfg.Gen.RoomChance},
		{EnvRoomCooldown, &cfg.Gen.RoomCooldown},
		{EnvMaxGenerationAttempts, &cfg.MaxGenerationAttempts},
	}
	for _, field := range ints {
		v, ok := lookup(field.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parse %s=%q: %w", field.key, v, err)
		}
		*field.dst = n
	}

	if v, ok := lookup(EnvSSHAddr); ok {
		cfg.SSHAddr = v
	}
	if v, ok := lookup(EnvSSHHostKey); ok && v != "" {
		cfg.SSHHostKey = v
	}

	cfg.Telemetry.APIKey, _ = lookup(EnvHoneycombAPIKey)
	cfg.Telemetry.Dataset, _ = lookup(EnvHoneycombDataset)
	cfg.Telemetry.Endpoint, _ = lookup(EnvOTLPEndpoint)

	return cfg, cfg.Validate()
}

// LoadConfigFile reads a dotenv file and builds a Config from it. Keys the
// file does not set fall back to the process environment.
func LoadConfigFile(path string) (Config, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return ConfigFromEnv(func(key string) (string, bool) {
		if v, ok := env[key]; ok {
			return v, true
		}
		return os.LookupEnv(key)
	})
}

package world

import (
	"fmt"
	"math"
)

const (
	// Default map dimensions
	DefaultWidth  = 128
	DefaultHeight = 128

	// Walk parameters
	defaultBorderPadding         = 3
	defaultIterationMultiplier   = 0.5
	defaultDirectionChangeChance = 3  // percent per step
	defaultRoomChance            = 5  // percent per eligible step
	defaultRoomCooldown          = 25 // steps between rooms

	// Room size ranges (inclusive)
	defaultRoomMinSize = 3
	defaultRoomMaxSize = 10

	defaultSpawnAttempts = 100
)

// GenConfig holds every tunable of the map generator.
type GenConfig struct {
	Width  int
	Height int

	// BorderPadding keeps the walk this many tiles away from the map edge.
	BorderPadding int
	// IterationMultiplier scales Width*Height into the number of walk steps.
	IterationMultiplier float64

	DirectionChangeChance int // Percent chance per step to turn on the next step
	RoomChance            int // Percent chance per eligible step to carve a room
	RoomCooldown          int // Steps after a room before another may be carved

	RoomMinWidth  int
	RoomMaxWidth  int
	RoomMinHeight int
	RoomMaxHeight int

	// SpawnAttempts bounds the random sampling of a spawn point.
	SpawnAttempts int
}

// DefaultGenConfig returns the stock generator settings for a
// DefaultWidth x DefaultHeight map.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:                 DefaultWidth,
		Height:                DefaultHeight,
		BorderPadding:         defaultBorderPadding,
		IterationMultiplier:   defaultIterationMultiplier,
		DirectionChangeChance: defaultDirectionChangeChance,
		RoomChance:            defaultRoomChance,
		RoomCooldown:          defaultRoomCooldown,
		RoomMinWidth:          defaultRoomMinSize,
		RoomMaxWidth:          defaultRoomMaxSize,
		RoomMinHeight:         defaultRoomMinSize,
		RoomMaxHeight:         defaultRoomMaxSize,
		SpawnAttempts:         defaultSpawnAttempts,
	}
}

// IterationBudget returns the number of walk steps taken before generation
// stops. It is a statistical cutoff, not a guarantee of connectivity.
func (c GenConfig) IterationBudget() int {
	return int(math.Floor(float64(c.Width) * float64(c.Height) * c.IterationMultiplier))
}

// Validate checks the configuration before any tile is touched.
func (c GenConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.BorderPadding < 0 {
		return fmt.Errorf("%w: negative border padding %d", ErrInvalidConfig, c.BorderPadding)
	}
	// The walk needs at least a 2x2 area or it can never take a step.
	if c.Width-2*c.BorderPadding < 2 || c.Height-2*c.BorderPadding < 2 {
		return fmt.Errorf("%w: %dx%d leaves no room for padding %d",
			ErrInvalidDimensions, c.Width, c.Height, c.BorderPadding)
	}
	if c.IterationMultiplier <= 0 {
		return fmt.Errorf("%w: iteration multiplier must be positive, got %g", ErrInvalidConfig, c.IterationMultiplier)
	}
	if !isPercent(c.DirectionChangeChance) || !isPercent(c.RoomChance) {
		return fmt.Errorf("%w: chances must be within 0-100 (direction %d, room %d)",
			ErrInvalidConfig, c.DirectionChangeChance, c.RoomChance)
	}
	if c.RoomCooldown < 0 {
		return fmt.Errorf("%w: negative room cooldown %d", ErrInvalidConfig, c.RoomCooldown)
	}
	if c.RoomMinWidth < 1 || c.RoomMaxWidth < c.RoomMinWidth {
		return fmt.Errorf("%w: room width range %d-%d", ErrInvalidConfig, c.RoomMinWidth, c.RoomMaxWidth)
	}
	if c.RoomMinHeight < 1 || c.RoomMaxHeight < c.RoomMinHeight {
		return fmt.Errorf("%w: room height range %d-%d", ErrInvalidConfig, c.RoomMinHeight, c.RoomMaxHeight)
	}
	if c.SpawnAttempts < 1 {
		return fmt.Errorf("%w: spawn attempts must be at least 1", ErrInvalidConfig)
	}
	return nil
}

func isPercent(v int) bool {
	return v >= 0 && v <= 100
}

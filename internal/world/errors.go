package world

import "errors"

var (
	// ErrGenerationFailure is returned when a generated map has no room or
	// no floor tile to spawn on. Retrying with another seed usually helps.
	ErrGenerationFailure = errors.New("map generation failed")

	// ErrInvalidDimensions is returned for a non-positive width or height, or
	// a grid too small to hold the padded walk area.
	ErrInvalidDimensions = errors.New("invalid map dimensions")

	// ErrInvalidConfig is returned for out-of-range generator tunables.
	ErrInvalidConfig = errors.New("invalid generator config")

	// ErrOutOfBounds is returned by Grid.Check for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

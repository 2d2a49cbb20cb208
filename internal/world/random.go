package world

import "math/rand"

// Random is the uniform integer source used by the generator.
type Random interface {
	// IntRange returns a value in [lo, hi], both ends inclusive.
	IntRange(lo, hi int) int
}

// RandSource adapts *rand.Rand to Random. The seed is the only knob that
// controls a generated map.
type RandSource struct {
	rng  *rand.Rand
	seed int64
}

// NewRandom returns a RandSource seeded with seed.
func NewRandom(seed int64) *RandSource {
	return &RandSource{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// IntRange returns a value in [lo, hi]. Swapped bounds are tolerated.
func (r *RandSource) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

// Seed returns the seed the source was created with.
func (r *RandSource) Seed() int64 {
	return r.seed
}

// chance returns true with the given percent probability.
func chance(rng Random, percent int) bool {
	if percent <= 0 {
		return false
	}
	return rng.IntRange(1, 100) <= percent
}

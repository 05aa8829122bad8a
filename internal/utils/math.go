package utils

import (
	"math/rand"
)

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// SeededRandom returns a deterministic float64 source for replays and simulations.
// The returned function is not safe for concurrent use.
func SeededRandom(seed int64) func() float64 {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // Deterministic replay, not security critical
	return r.Float64
}

// Clamp bounds value to [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Package mathx holds small numeric helpers shared by the gameplay systems.
package mathx

import "math/rand"

// RandomInt returns a uniformly distributed integer in [min, max].
// If max < min the bounds are swapped.
func RandomInt(rng *rand.Rand, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + rng.Intn(max-min+1)
}

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

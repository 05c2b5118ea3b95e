// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// Default bounds of UniformCapacityFn used for randomised re-runs: [100, 1000).
const (
	DefaultMinCapacity int64 = 100
	DefaultMaxCapacity int64 = 1000
)

// DefaultEdgeCapacity is returned by capacity functions given a nil rng.
const DefaultEdgeCapacity int64 = 1

// CapacityFn produces an edge capacity from an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type CapacityFn func(rng *rand.Rand) int64

// DefaultCapacityFn samples uniformly in [DefaultMinCapacity, DefaultMaxCapacity).
// Complexity: O(1).
func DefaultCapacityFn(rng *rand.Rand) int64 {
	return UniformCapacityFn(DefaultMinCapacity, DefaultMaxCapacity)(rng)
}

// ConstantCapacityFn returns a CapacityFn that always yields value.
// Panics if value < 0.
func ConstantCapacityFn(value int64) CapacityFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCapacityFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformCapacityFn returns a CapacityFn sampling uniformly in [min, max).
// Panics if min < 0 or max <= min.
// If rng is nil, yields DefaultEdgeCapacity to keep a deterministic fallback.
// Complexity: O(1).
func UniformCapacityFn(min, max int64) CapacityFn {
	if min < 0 || max <= min {
		panic(fmt.Sprintf("UniformCapacityFn: require 0 ≤ min < max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeCapacity
		}

		return min + rng.Int63n(max-min)
	}
}

// SPDX-License-Identifier: MIT
// Package: lvflow/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with `%w`.
//   • Constructors never panic at runtime; panics are confined to CapacityFn
//     factories given meaningless ranges.

package builder

import "errors"

// ErrTooFewVertices indicates that a partition size is below the allowed minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor got a nil *rand.Rand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilNetwork indicates that Reweight was given a nil network.
var ErrNilNetwork = errors.New("builder: network is nil")

// SPDX-License-Identifier: MIT

// Package builder generates inputs for the flow and matching engines:
// capacity distributions, re-weighted copies of fixed networks, random flow
// networks and complete or random bipartite graphs.
//
// The package offers the following key components:
//
//   - Capacity distributions (CapacityFn implementations):
//     – DefaultCapacityFn:   uniform in [DefaultMinCapacity, DefaultMaxCapacity).
//     – ConstantCapacityFn:  fixed user-provided value.
//     – UniformCapacityFn:   uniform in [min, max).
//   - Network constructors:
//     – Reweight:            same topology, fresh capacities.
//     – RandomNetwork:       directed G(n, p) with sampled capacities.
//   - Bipartite constructors:
//     – CompleteBipartite:   K_{n1,n2}.
//     – RandomBipartite:     each cross pair with probability p.
//
// Guarantees:
//
//   - Deterministic output for a fixed *rand.Rand seed; trial order is documented
//     per constructor.
//   - Fast-fail on meaningless distribution parameters via panics in CapacityFn
//     factories.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrNilNetwork) wrapped with the method name.
package builder

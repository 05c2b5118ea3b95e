// SPDX-License-Identifier: MIT
// Package: lvflow/builder
//
// impl_random_network.go — implementation of RandomNetwork(n,p,fn,rng).
//
// Canonical model:
//   - Directed Erdős–Rényi-like network: every ordered pair (i,j), i≠j, carries
//     an edge with probability p and capacity fn(rng).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   - A nil fn means DefaultCapacityFn.
//   - No self-loops are emitted.
//
// Determinism:
//   - Stable trial order: i asc, then j asc.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvflow/network"
)

const (
	methodRandomNetwork = "RandomNetwork"
	minNetworkVertices  = 2
)

// RandomNetwork samples a flow network over n vertices.
//
// Complexity: O(n²).
func RandomNetwork(n int, p float64, fn CapacityFn, rng *rand.Rand) (*network.Network, error) {
	if n < minNetworkVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomNetwork, n, minNetworkVertices, ErrTooFewVertices)
	}
	if err := checkProbability(methodRandomNetwork, p, rng); err != nil {
		return nil, err
	}
	if fn == nil {
		fn = DefaultCapacityFn
	}

	m := make([][]int64, n)
	for i := range m {
		m[i] = make([]int64, n)
		for j := range m[i] {
			if i != j && bernoulli(p, rng) {
				m[i][j] = fn(rng)
			}
		}
	}

	net, err := network.New(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomNetwork, err)
	}

	return net, nil
}

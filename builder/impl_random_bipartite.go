// SPDX-License-Identifier: MIT
// Package: lvflow/builder
//
// impl_random_bipartite.go — implementation of RandomBipartite(n1,n2,p,rng).
//
// Canonical model:
//   - Each cross pair (L_i, R_j) is included independently with probability p.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Numbering matches CompleteBipartite.
//
// Determinism:
//   - Stable trial order: i asc, then j asc. A fixed seed gives a fixed graph.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvflow/bipartite"
)

const (
	methodRandomBipartite = "RandomBipartite"
	probMin               = 0.0
	probMax               = 1.0
)

// RandomBipartite samples a bipartite graph over n1+n2 vertices where each
// Left–Right pair is an edge with probability p.
//
// Complexity: O(n1·n2) Bernoulli trials.
func RandomBipartite(n1, n2 int, p float64, rng *rand.Rand) (bipartite.Graph, bipartite.Partition, error) {
	if n1 < minPartitionSize || n2 < minPartitionSize {
		return bipartite.Graph{}, bipartite.Partition{}, fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
			methodRandomBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
	}
	if err := checkProbability(methodRandomBipartite, p, rng); err != nil {
		return bipartite.Graph{}, bipartite.Partition{}, err
	}

	part := sequentialPartition(n1, n2)
	var edges []bipartite.Edge
	for _, u := range part.Left {
		for _, v := range part.Right {
			if bernoulli(p, rng) {
				edges = append(edges, bipartite.Edge{U: u, V: v})
			}
		}
	}

	return bipartite.NewGraph(edges...), part, nil
}

// checkProbability validates p and the presence of rng for stochastic p.
func checkProbability(method string, p float64, rng *rand.Rand) error {
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil && p > probMin && p < probMax {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// bernoulli draws one trial. p ∈ {0,1} never touches rng.
func bernoulli(p float64, rng *rand.Rand) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return rng.Float64() < p
}

// SPDX-License-Identifier: MIT
// Package: lvflow/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1,n2).
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left vertices are 0..n1-1, Right vertices are n1..n1+n2-1.
//   • Emits every cross-pair L_i — R_j exactly once.
//
// Complexity:
//   • Time: O(n1·n2) edges emission.
//   • Space: O(n1 + n2) for the partition plus the edge slice.
//
// Determinism:
//   • Edge emission order: i asc over L, inner j asc over R.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvflow/bipartite"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns K_{n1,n2} together with its partition.
func CompleteBipartite(n1, n2 int) (bipartite.Graph, bipartite.Partition, error) {
	if n1 < minPartitionSize || n2 < minPartitionSize {
		return bipartite.Graph{}, bipartite.Partition{}, fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
			methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
	}

	p := sequentialPartition(n1, n2)
	edges := make([]bipartite.Edge, 0, n1*n2)
	for _, u := range p.Left {
		for _, v := range p.Right {
			edges = append(edges, bipartite.Edge{U: u, V: v})
		}
	}

	return bipartite.NewGraph(edges...), p, nil
}

// sequentialPartition numbers Left 0..n1-1 and Right n1..n1+n2-1.
func sequentialPartition(n1, n2 int) bipartite.Partition {
	p := bipartite.Partition{
		Left:  make([]int, n1),
		Right: make([]int, n2),
	}
	for i := range p.Left {
		p.Left[i] = i
	}
	for j := range p.Right {
		p.Right[j] = n1 + j
	}

	return p
}

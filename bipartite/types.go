// SPDX-License-Identifier: MIT

package bipartite

import (
	"errors"
	"sort"
)

var (
	// ErrInvalidPartition is returned when a partition does not split every
	// edge of the graph across Left and Right.
	ErrInvalidPartition = errors.New("bipartite: invalid partition")

	// ErrNegativeVertex is returned for a negative vertex index.
	ErrNegativeVertex = errors.New("bipartite: negative vertex index")

	// ErrNotBipartite is returned by Color when the graph has an odd cycle.
	ErrNotBipartite = errors.New("bipartite: graph has an odd cycle")
)

// Edge is an undirected edge {U, V}.
type Edge struct {
	U int `json:"u" yaml:"u"`
	V int `json:"v" yaml:"v"`
}

// Graph is an undirected graph given by its edge list. Vertices are the
// endpoints that appear in Edges.
type Graph struct {
	Edges []Edge
}

// NewGraph returns a Graph over the given edges.
func NewGraph(edges ...Edge) Graph {
	return Graph{Edges: append([]Edge(nil), edges...)}
}

// Vertices returns every endpoint of g, ascending and de-duplicated.
func (g Graph) Vertices() []int {
	seen := make(map[int]struct{}, 2*len(g.Edges))
	for _, e := range g.Edges {
		seen[e.U] = struct{}{}
		seen[e.V] = struct{}{}
	}

	return sortedKeys(seen)
}

// Neighbors returns the adjacency of g in both directions, each list
// ascending and de-duplicated. Self-loops are listed once.
func (g Graph) Neighbors() map[int][]int {
	sets := make(map[int]map[int]struct{})
	add := func(u, v int) {
		if sets[u] == nil {
			sets[u] = make(map[int]struct{})
		}
		sets[u][v] = struct{}{}
	}
	for _, e := range g.Edges {
		add(e.U, e.V)
		add(e.V, e.U)
	}

	adj := make(map[int][]int, len(sets))
	for u, set := range sets {
		adj[u] = sortedKeys(set)
	}

	return adj
}

// HasEdge reports whether {u, v} is an edge of g in either orientation.
func (g Graph) HasEdge(u, v int) bool {
	for _, e := range g.Edges {
		if (e.U == u && e.V == v) || (e.U == v && e.V == u) {
			return true
		}
	}

	return false
}

// Partition splits vertices into Left and Right.
type Partition struct {
	Left  []int `json:"left" yaml:"left"`
	Right []int `json:"right" yaml:"right"`
}

// IsLeft reports whether v is in Left.
func (p Partition) IsLeft(v int) bool {
	return contains(p.Left, v)
}

// IsRight reports whether v is in Right.
func (p Partition) IsRight(v int) bool {
	return contains(p.Right, v)
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}

	return false
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

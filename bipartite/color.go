// SPDX-License-Identifier: MIT

package bipartite

import (
	"fmt"

	"github.com/gammazero/deque"
)

// Color 2-colors g by breadth-first search. Components are started from their
// smallest vertex, which always lands in Left. Both sides come back ascending.
//
// Returns ErrNotBipartite, wrapped with the first conflicting edge found, when
// g contains an odd cycle (a self-loop counts as one).
//
// Complexity: O(V log V + E).
func Color(g Graph) (Partition, error) {
	adj := g.Neighbors()
	depth, conflict, found := bfsDepths(g.Vertices(), adj)
	if found {
		return Partition{}, fmt.Errorf("bipartite: edge {%d,%d}: %w", conflict.U, conflict.V, ErrNotBipartite)
	}

	var p Partition
	for _, v := range g.Vertices() {
		if depth[v]%2 == 0 {
			p.Left = append(p.Left, v)
		} else {
			p.Right = append(p.Right, v)
		}
	}

	return p, nil
}

// BreakOddCycles returns a bipartite subgraph of g and the edges removed to
// get there, both in input order. Every removed edge joins two vertices of
// equal depth parity in a BFS spanning forest of g.
//
// Complexity: O(V log V + E).
func BreakOddCycles(g Graph) (kept Graph, removed []Edge) {
	depth, _, _ := bfsDepths(g.Vertices(), g.Neighbors())
	for _, e := range g.Edges {
		if depth[e.U]%2 == depth[e.V]%2 {
			removed = append(removed, e)
		} else {
			kept.Edges = append(kept.Edges, e)
		}
	}

	return kept, removed
}

// bfsDepths assigns BFS depths over a forest rooted at each unvisited vertex
// of order, in order. It also reports the first edge, in discovery order,
// whose endpoints share depth parity.
func bfsDepths(order []int, adj map[int][]int) (map[int]int, Edge, bool) {
	depth := make(map[int]int, len(order))
	var conflict Edge
	found := false

	for _, root := range order {
		if _, ok := depth[root]; ok {
			continue
		}
		depth[root] = 0

		var queue deque.Deque[int]
		queue.PushBack(root)
		for queue.Len() > 0 {
			u := queue.PopFront()
			for _, v := range adj[u] {
				d, seen := depth[v]
				if !seen {
					depth[v] = depth[u] + 1
					queue.PushBack(v)
					continue
				}
				if !found && d%2 == depth[u]%2 {
					conflict, found = Edge{U: u, V: v}, true
				}
			}
		}
	}

	return depth, conflict, found
}

// SPDX-License-Identifier: MIT

package bipartite

import "fmt"

// Validate checks that p is a proper bipartition for g:
//   - no vertex index is negative (ErrNegativeVertex);
//   - Left and Right are disjoint;
//   - every edge has one endpoint in Left and the other in Right.
//
// The last two failures are reported as ErrInvalidPartition, wrapped with the
// offending vertex or edge. Vertices of p that no edge touches are allowed.
//
// Complexity: O(|L| + |R| + E).
func Validate(g Graph, p Partition) error {
	left := make(map[int]bool, len(p.Left))
	for _, v := range p.Left {
		if v < 0 {
			return fmt.Errorf("bipartite: left vertex %d: %w", v, ErrNegativeVertex)
		}
		left[v] = true
	}
	right := make(map[int]bool, len(p.Right))
	for _, v := range p.Right {
		if v < 0 {
			return fmt.Errorf("bipartite: right vertex %d: %w", v, ErrNegativeVertex)
		}
		if left[v] {
			return fmt.Errorf("bipartite: vertex %d is on both sides: %w", v, ErrInvalidPartition)
		}
		right[v] = true
	}

	for _, e := range g.Edges {
		if e.U < 0 || e.V < 0 {
			return fmt.Errorf("bipartite: edge {%d,%d}: %w", e.U, e.V, ErrNegativeVertex)
		}
		switch {
		case !left[e.U] && !right[e.U]:
			return fmt.Errorf("bipartite: edge {%d,%d}: vertex %d is unassigned: %w", e.U, e.V, e.U, ErrInvalidPartition)
		case !left[e.V] && !right[e.V]:
			return fmt.Errorf("bipartite: edge {%d,%d}: vertex %d is unassigned: %w", e.U, e.V, e.V, ErrInvalidPartition)
		case left[e.U] == left[e.V]:
			return fmt.Errorf("bipartite: edge {%d,%d} stays within one side: %w", e.U, e.V, ErrInvalidPartition)
		}
	}

	return nil
}

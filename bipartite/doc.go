// SPDX-License-Identifier: MIT

// Package bipartite describes the undirected input of the matching
// algorithms: an edge list over non-negative integer vertices, a Left/Right
// partition of the touched vertices, and the boundary check that an input
// really is bipartite under that partition.
//
// It also carries the preprocessing collaborator used before matching:
//
//	Color(g)          - BFS 2-coloring, ErrNotBipartite on an odd cycle.
//	BreakOddCycles(g) - drop edges until a 2-coloring exists.
//
// BreakOddCycles keeps a BFS spanning forest and removes every non-tree edge
// whose endpoints share depth parity; each such edge closes an odd cycle with
// the forest. The kept graph is always bipartite, but the removed set is not
// guaranteed to be minimum, nor to maximize the eventual matching.
//
// Determinism: vertices are processed in ascending index order everywhere,
// so equal inputs produce equal partitions.
package bipartite

// SPDX-License-Identifier: MIT

// Package network holds the capacitated directed graph that every flow
// computation in lvflow reads from, plus the residual graph each computation
// mutates.
//
// # Model
//
// A Network is a dense n×n capacity matrix over vertices 0..n-1:
//
//	capacity[u][v] ≥ 0     directed capacity of u→v
//	capacity[u][v] == 0    "no edge"
//
// Storage is a flat row-major []int64, the same layout a dense matrix uses,
// so that a full row scan (the hot loop of breadth-first search) walks
// contiguous memory.
//
// A Network never changes after New/FromEdges returns. Callers may share one
// Network across any number of computations, including concurrent ones.
//
// # Residual graph
//
// Residual is the mutable working copy created by (*Network).Residual. It is
// owned by exactly one computation and satisfies, for every ordered pair:
//
//	residual[u][v] + residual[v][u] == capacity[u][v] + capacity[v][u]
//
// Augment moves delta units from the forward to the reverse slot, which keeps
// the invariant above. NetFlow recovers the antisymmetric net flow u→v.
//
// # Errors
//
//	ErrEmptyNetwork      - zero vertices.
//	ErrNonSquare         - ragged or non-square capacity rows.
//	ErrInvalidCapacity   - a negative capacity (as *CapacityError).
//	ErrCapacityOverflow  - a row sum or capacity[u][v]+capacity[v][u] beyond
//	                       math.MaxInt64 (as *CapacityError).
//	ErrVertexOutOfRange  - an edge endpoint outside 0..n-1.
//
// Complexity: New is O(n²); every accessor is O(1) except OutEdges (O(n)),
// Edges and Matrix (O(n²)).
package network

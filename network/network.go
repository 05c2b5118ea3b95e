// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"
)

// Edge is a directed capacitated edge From→To.
type Edge struct {
	From     int   `json:"from" yaml:"from"`
	To       int   `json:"to" yaml:"to"`
	Capacity int64 `json:"capacity" yaml:"capacity"`
}

// Network is an immutable capacitated directed graph over vertices 0..n-1.
// n is the vertex count, data holds n*n capacities in row-major order.
type Network struct {
	n    int
	data []int64
}

// New validates capacity and returns a Network holding a private copy of it.
// Stage 1 (Validate): non-empty, square, every entry ≥ 0, no row or pair sum
// beyond math.MaxInt64 (ErrCapacityOverflow).
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): copy rows in order.
// Complexity: O(n²) time and memory.
func New(capacity [][]int64) (*Network, error) {
	n := len(capacity)
	if n == 0 {
		return nil, ErrEmptyNetwork
	}
	for u, row := range capacity {
		if len(row) != n {
			return nil, fmt.Errorf("network: row %d has %d entries, want %d: %w", u, len(row), n, ErrNonSquare)
		}
		for v, c := range row {
			if c < 0 {
				return nil, &CapacityError{From: u, To: v, Capacity: c, Err: ErrInvalidCapacity}
			}
		}
	}

	data := make([]int64, n*n)
	for u, row := range capacity {
		copy(data[u*n:(u+1)*n], row)
	}
	if err := checkOverflow(n, data); err != nil {
		return nil, err
	}

	return &Network{n: n, data: data}, nil
}

// FromEdges builds an n-vertex Network from a directed edge list.
// Parallel edges accumulate; zero-capacity edges are accepted and add nothing.
// Complexity: O(n² + E).
func FromEdges(n int, edges []Edge) (*Network, error) {
	if n <= 0 {
		return nil, ErrEmptyNetwork
	}
	data := make([]int64, n*n)
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("network: edge %d→%d with n=%d: %w", e.From, e.To, n, ErrVertexOutOfRange)
		}
		if e.Capacity < 0 {
			return nil, &CapacityError{From: e.From, To: e.To, Capacity: e.Capacity, Err: ErrInvalidCapacity}
		}
		i := e.From*n + e.To
		if data[i] > math.MaxInt64-e.Capacity {
			return nil, &CapacityError{From: e.From, To: e.To, Capacity: e.Capacity, Err: ErrCapacityOverflow}
		}
		data[i] += e.Capacity
	}
	if err := checkOverflow(n, data); err != nil {
		return nil, err
	}

	return &Network{n: n, data: data}, nil
}

// N returns the number of vertices.
func (g *Network) N() int {
	return g.n
}

// Contains reports whether v is a vertex index of g.
func (g *Network) Contains(v int) bool {
	return v >= 0 && v < g.n
}

// Capacity returns capacity[u][v], or 0 when either index is out of range.
func (g *Network) Capacity(u, v int) int64 {
	if !g.Contains(u) || !g.Contains(v) {
		return 0
	}

	return g.data[u*g.n+v]
}

// OutEdges lists the edges leaving u with positive capacity, by ascending To.
// Complexity: O(n).
func (g *Network) OutEdges(u int) []Edge {
	if !g.Contains(u) {
		return nil
	}
	var out []Edge
	row := g.data[u*g.n : (u+1)*g.n]
	for v, c := range row {
		if c > 0 {
			out = append(out, Edge{From: u, To: v, Capacity: c})
		}
	}

	return out
}

// Edges lists every positive-capacity edge in row-major order.
// Complexity: O(n²).
func (g *Network) Edges() []Edge {
	var out []Edge
	for u := 0; u < g.n; u++ {
		out = append(out, g.OutEdges(u)...)
	}

	return out
}

// Matrix returns a deep copy of the capacity matrix as nested slices.
func (g *Network) Matrix() [][]int64 {
	return unflatten(g.n, g.data)
}

// Residual allocates a fresh residual graph initialised to the capacities.
// The result never aliases g.
func (g *Network) Residual() *Residual {
	data := make([]int64, len(g.data))
	copy(data, g.data)

	return &Residual{n: g.n, data: data}
}

// checkOverflow bounds every quantity a flow computation accumulates.
// Flow value and every vertex throughput are at most a row sum; a residual
// entry is at most capacity[u][v]+capacity[v][u].
// Entries are non-negative here.
func checkOverflow(n int, data []int64) error {
	for u := 0; u < n; u++ {
		var out int64
		for v := 0; v < n; v++ {
			c := data[u*n+v]
			if out > math.MaxInt64-c {
				return &CapacityError{From: u, To: v, Capacity: c, Err: ErrCapacityOverflow}
			}
			out += c
			if v > u && c > math.MaxInt64-data[v*n+u] {
				return &CapacityError{From: u, To: v, Capacity: c, Err: ErrCapacityOverflow}
			}
		}
	}

	return nil
}

func unflatten(n int, data []int64) [][]int64 {
	out := make([][]int64, n)
	for u := range out {
		out[u] = make([]int64, n)
		copy(out[u], data[u*n:(u+1)*n])
	}

	return out
}

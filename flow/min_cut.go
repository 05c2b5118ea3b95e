// SPDX-License-Identifier: MIT

package flow

import (
	"github.com/gammazero/deque"

	"github.com/katalvlaran/lvflow/network"
)

// MinCut partitions the vertices by reachability from source over residual
// edges with positive capacity and lists the original edges crossing S→T.
//
// r must be the terminal residual graph of a max-flow run on net with the same
// source; only then does the cut capacity equal the flow value. S and T are
// ascending; Edges are in row-major order.
//
// Errors: ErrNilNetwork, ErrResidualMismatch, ErrSourceOutOfRange.
//
// Complexity: O(V²).
func MinCut(r *network.Residual, source int, net *network.Network) (*Cut, error) {
	if r == nil || net == nil {
		return nil, ErrNilNetwork
	}
	if r.N() != net.N() {
		return nil, ErrResidualMismatch
	}
	if !net.Contains(source) {
		return nil, ErrSourceOutOfRange
	}

	side := Reachable(r, source)
	cut := &Cut{side: side}
	for v, inS := range side {
		if inS {
			cut.S = append(cut.S, v)
		} else {
			cut.T = append(cut.T, v)
		}
	}
	for _, u := range cut.S {
		for _, e := range net.OutEdges(u) {
			if !side[e.To] {
				cut.Edges = append(cut.Edges, CutEdge{From: u, To: e.To, Capacity: e.Capacity})
			}
		}
	}

	return cut, nil
}

// Reachable marks every vertex reachable from source through residual edges
// with positive capacity.
func Reachable(r *network.Residual, source int) []bool {
	seen := make([]bool, r.N())
	seen[source] = true

	var queue deque.Deque[int]
	queue.PushBack(source)
	for queue.Len() > 0 {
		u := queue.PopFront()
		for v, c := range r.Row(u) {
			if c > 0 && !seen[v] {
				seen[v] = true
				queue.PushBack(v)
			}
		}
	}

	return seen
}

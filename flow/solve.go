// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"

	"github.com/katalvlaran/lvflow/network"
)

// Solve runs the selected max-flow engine (Edmonds–Karp unless WithAlgorithm
// says otherwise), extracts the min cut from its terminal residual, and checks
// the max-flow/min-cut equality before returning both.
func Solve(net *network.Network, source, sink int, opts ...Option) (*Result, *Cut, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, nil, err
	}

	var res *Result
	switch o.Algorithm {
	case AlgorithmDinic:
		res, err = Dinic(net, source, sink, opts...)
	default:
		res, err = EdmondsKarp(net, source, sink, opts...)
	}
	if err != nil {
		return nil, nil, err
	}

	cut, err := MinCut(res.Residual, source, net)
	if err != nil {
		return nil, nil, err
	}
	if got := cut.Capacity(); got != res.Value {
		return res, cut, fmt.Errorf("flow: value %d, cut %d: %w", res.Value, got, ErrCutMismatch)
	}

	return res, cut, nil
}

// VerifyConservation checks that every vertex other than source and sink
// has equal inflow and outflow in r relative to net, and that no edge carries
// more than its capacity.
func VerifyConservation(net *network.Network, r *network.Residual, source, sink int) error {
	if net == nil || r == nil {
		return ErrNilNetwork
	}
	if r.N() != net.N() {
		return ErrResidualMismatch
	}

	n := net.N()
	for u := 0; u < n; u++ {
		var balance int64
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			f := r.NetFlow(net, u, v)
			if f > net.Capacity(u, v) {
				return fmt.Errorf("flow: edge %d→%d carries %d over capacity %d: %w",
					u, v, f, net.Capacity(u, v), ErrConservation)
			}
			balance += f
		}
		if u != source && u != sink && balance != 0 {
			return fmt.Errorf("flow: vertex %d has net outflow %d: %w", u, balance, ErrConservation)
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

package matching

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvflow/bipartite"
	"github.com/katalvlaran/lvflow/flow"
	"github.com/katalvlaran/lvflow/network"
)

// Dense vertex layout of the reduced network.
const (
	flowSource = 0
	flowSink   = 1
	firstLeft  = 2
)

// FlowMatching finds a maximum matching by reduction to max-flow.
//
// Steps:
//  1. Validate p against g (ErrInvalidPartition, ErrNegativeVertex).
//  2. Relabel densely: source=0, sink=1, Left ascending from 2, Right after.
//  3. Unit capacities: source→u for u ∈ L, v→sink for v ∈ R, u→v per edge,
//     oriented Left→Right whatever the input order. Duplicate edges stay at 1.
//  4. Run flow.EdmondsKarp and read back every saturated Left→Right edge.
//
// Complexity: O(V · E) augmentations on a network of |L|+|R|+2 vertices.
func FlowMatching(g bipartite.Graph, p bipartite.Partition, opts ...Option) (*Matching, error) {
	o := buildOptions(opts)

	// 1) Boundary check
	if err := bipartite.Validate(g, p); err != nil {
		return nil, err
	}

	// 2) Dense relabeling
	left, right := sortedUnique(p.Left), sortedUnique(p.Right)
	index := make(map[int]int, len(left)+len(right))
	isLeft := make(map[int]bool, len(left))
	for i, u := range left {
		index[u] = firstLeft + i
		isLeft[u] = true
	}
	firstRight := firstLeft + len(left)
	for j, v := range right {
		index[v] = firstRight + j
	}

	// 3) Unit-capacity network
	n := firstRight + len(right)
	capacity := make([][]int64, n)
	for i := range capacity {
		capacity[i] = make([]int64, n)
	}
	for _, u := range left {
		capacity[flowSource][index[u]] = 1
	}
	for _, v := range right {
		capacity[index[v]][flowSink] = 1
	}
	for _, e := range g.Edges {
		u, v := e.U, e.V
		if !isLeft[u] {
			u, v = v, u
		}
		capacity[index[u]][index[v]] = 1
	}
	net, err := network.New(capacity)
	if err != nil {
		return nil, fmt.Errorf("matching: building flow network: %w", err)
	}

	// 4) Max-flow and decode
	res, err := flow.EdmondsKarp(net, flowSource, flowSink, flow.WithLogger(o.Logger))
	if err != nil {
		return nil, fmt.Errorf("matching: %w", err)
	}

	m := &Matching{Pairs: make([]Pair, 0, len(left))}
	for i, u := range left {
		a := firstLeft + i
		for j, v := range right {
			b := firstRight + j
			if net.Capacity(a, b) == 1 && res.Residual.At(a, b) == 0 {
				m.Pairs = append(m.Pairs, Pair{Left: u, Right: v})
			}
		}
	}
	if int64(m.Size()) != res.Value {
		return nil, fmt.Errorf("matching: %d pairs for flow %d: %w", m.Size(), res.Value, ErrDecode)
	}

	o.Logger.WithFields(logrus.Fields{
		"size":          m.Size(),
		"augmentations": res.Augmentations,
	}).Debug("flow matching: done")

	return m, nil
}

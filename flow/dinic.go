// SPDX-License-Identifier: MIT

package flow

import (
	"math"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvflow/network"
)

// Dinic computes the maximum flow from source to sink using Dinic’s
// algorithm (level graph + blocking flows). It accepts the same options and
// returns the same Result shape as EdmondsKarp; Augmentations counts
// individual blocking-flow pushes.
//
// Any maximum flow leaves the same set of vertices reachable from source, so
// MinCut over Dinic's residual yields the same S as over Edmonds–Karp's.
//
// Steps:
//  1. Validate options and terminals.
//  2. Copy capacities into a private residual graph.
//  3. Repeat until sink is unreachable:
//     a. BFS to assign levels (distance from source).
//     b. Build next[u]: neighbors v at level[u]+1 with positive residual.
//     c. DFS pushes along next until no more flow fits (blocking flow).
//
// Complexity: O(V² · E) in general, O(E · √V) on unit-capacity networks.
// Memory:     O(V²) for the residual, O(V + E) for level/next/iter.
func Dinic(net *network.Network, source, sink int, opts ...Option) (*Result, error) {
	// 1) Options and preconditions
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateTerminals(net, source, sink); err != nil {
		return nil, err
	}

	// 2) Private residual graph
	res := &Result{Residual: net.Residual()}
	n := net.N()

	for {
		// 3a) Levels
		level := levels(res.Residual, source)
		if level[sink] < 0 {
			break
		}

		// 3b) Level-graph adjacency in ascending index order
		next := make([][]int, n)
		for u := 0; u < n; u++ {
			if level[u] < 0 {
				continue
			}
			for v, c := range res.Residual.Row(u) {
				if c > 0 && level[v] == level[u]+1 {
					next[u] = append(next[u], v)
				}
			}
		}

		// 3c) Blocking flow
		iter := make([]int, n)
		for {
			pushed, rev := dinicPush(res.Residual, next, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			res.Value += pushed
			res.Augmentations++

			aug := Augmentation{Path: reversed(rev), Bottleneck: pushed}
			if o.RecordPaths {
				res.Paths = append(res.Paths, aug)
			}
			o.Logger.WithFields(logrus.Fields{
				"path":       aug.Path,
				"bottleneck": pushed,
				"total":      res.Value,
			}).Debug("dinic: pushed")
			o.OnAugment(aug)
		}
	}

	return res, nil
}

// levels returns BFS distances from source over positive residual edges,
// -1 for unreachable vertices.
func levels(r *network.Residual, source int) []int {
	level := make([]int, r.N())
	for i := range level {
		level[i] = -1
	}
	level[source] = 0

	var queue deque.Deque[int]
	queue.PushBack(source)
	for queue.Len() > 0 {
		u := queue.PopFront()
		for v, c := range r.Row(u) {
			if c > 0 && level[v] < 0 {
				level[v] = level[u] + 1
				queue.PushBack(v)
			}
		}
	}

	return level
}

// dinicPush pushes flow from u toward sink along the level graph, updating r
// in place. It returns the amount sent and the path in reverse (sink first).
// Recursion depth is bounded by the level of sink.
func dinicPush(r *network.Residual, next [][]int, iter []int, u, sink int, available int64) (int64, []int) {
	if u == sink {
		return available, []int{sink}
	}
	for ; iter[u] < len(next[u]); iter[u]++ {
		v := next[u][iter[u]]
		capUV := r.At(u, v)
		if capUV <= 0 {
			continue
		}
		send := available
		if capUV < send {
			send = capUV
		}
		if pushed, rev := dinicPush(r, next, iter, v, sink, send); pushed > 0 {
			r.Augment(u, v, pushed)

			return pushed, append(rev, u)
		}
	}

	return 0, nil
}

func reversed(rev []int) []int {
	out := make([]int, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}

	return out
}

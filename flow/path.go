// SPDX-License-Identifier: MIT

package flow

import (
	"math"

	"github.com/gammazero/deque"

	"github.com/katalvlaran/lvflow/network"
)

// noParent marks an undiscovered vertex (and the source) in a parent map.
const noParent = -1

// FindAugmentingPath runs a level-order search from source over residual
// edges with positive capacity and stops as soon as sink is discovered.
//
// It returns parent pointers (parent[v] is the vertex that first discovered v,
// noParent for the source and for undiscovered vertices) and true when sink
// was reached; nil and false otherwise, including when source == sink or
// either index is out of range. r is never mutated.
//
// Neighbors are scanned in ascending index order, so the path found is the
// lexicographically first among the shortest ones.
//
// Complexity: O(V²) on the dense residual.
func FindAugmentingPath(r *network.Residual, source, sink int) ([]int, bool) {
	n := r.N()
	if source < 0 || source >= n || sink < 0 || sink >= n || source == sink {
		return nil, false
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = noParent
	}
	visited := make([]bool, n)
	visited[source] = true

	var queue deque.Deque[int]
	queue.PushBack(source)
	for queue.Len() > 0 {
		u := queue.PopFront()
		for v, c := range r.Row(u) {
			if visited[v] || c <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			if v == sink {
				return parent, true
			}
			queue.PushBack(v)
		}
	}

	return nil, false
}

// PathFromParents walks parent pointers back from sink and returns the
// vertex sequence source..sink.
func PathFromParents(parent []int, source, sink int) []int {
	var rev []int
	for v := sink; v != source; v = parent[v] {
		rev = append(rev, v)
	}
	rev = append(rev, source)

	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}

// Bottleneck returns the minimum residual capacity over consecutive pairs of path.
func Bottleneck(r *network.Residual, path []int) int64 {
	bottle := int64(math.MaxInt64)
	for i := 0; i+1 < len(path); i++ {
		if c := r.At(path[i], path[i+1]); c < bottle {
			bottle = c
		}
	}

	return bottle
}

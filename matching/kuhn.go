// SPDX-License-Identifier: MIT

package matching

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvflow/bipartite"
)

// frame is one level of the alternating-path search: left vertex u, the next
// neighbor index to try, and the right vertex currently being tried.
type frame struct {
	u      int
	cursor int
	via    int
}

// Kuhn finds a maximum matching by repeated alternating-path search.
//
// Every Left vertex, in ascending order, gets one attempt. An attempt walks
// neighbors in ascending order; a right vertex visited once in the attempt is
// not tried again. Reaching an unmatched right vertex flips the whole path.
//
// Errors: those of bipartite.Validate.
//
// Complexity: O(|L| · E). Stack depth ≤ |R| + 1.
func Kuhn(g bipartite.Graph, p bipartite.Partition, opts ...Option) (*Matching, error) {
	o := buildOptions(opts)
	if err := bipartite.Validate(g, p); err != nil {
		return nil, err
	}

	adj := g.Neighbors()
	pairL := make(map[int]int, len(p.Left))
	pairR := make(map[int]int, len(p.Right))

	for _, u := range sortedUnique(p.Left) {
		ok := augmentFrom(u, adj, pairL, pairR)
		o.Logger.WithFields(logrus.Fields{"left": u, "matched": ok}).Debug("kuhn: attempt")
	}

	m := &Matching{Pairs: make([]Pair, 0, len(pairL))}
	for u, v := range pairL {
		m.Pairs = append(m.Pairs, Pair{Left: u, Right: v})
	}
	sort.Slice(m.Pairs, func(i, j int) bool { return m.Pairs[i].Left < m.Pairs[j].Left })

	return m, nil
}

// augmentFrom searches an alternating path from the unmatched left vertex
// root and applies it on success. visited lives for this attempt only.
func augmentFrom(root int, adj map[int][]int, pairL, pairR map[int]int) bool {
	visited := make(map[int]bool)
	stack := []frame{{u: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.cursor == len(adj[top.u]) {
			stack = stack[:len(stack)-1]
			continue
		}
		v := adj[top.u][top.cursor]
		top.cursor++
		if visited[v] {
			continue
		}
		visited[v] = true
		top.via = v

		w, matched := pairR[v]
		if !matched {
			// flip: every frame's left vertex takes the right vertex it was trying
			for _, f := range stack {
				pairL[f.u] = f.via
				pairR[f.via] = f.u
			}
			return true
		}
		stack = append(stack, frame{u: w})
	}

	return false
}

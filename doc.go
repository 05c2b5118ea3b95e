// SPDX-License-Identifier: MIT

// Package lvflow is an in-memory kernel for maximum flow, minimum cut and
// maximum bipartite matching on small dense networks.
//
// 🚀 What is lvflow?
//
//	A deterministic, synchronous toolkit that brings together:
//		• Capacity model: dense n×n networks and their residual graphs
//		• Max-flow: Edmonds–Karp (BFS augmenting paths), Dinic as a cross-check
//		• Min-cut: source side read from the terminal residual graph
//		• Matching: flow reduction and a direct augmenting-path matcher
//		• Preprocessing: 2-colouring and odd-cycle edge removal
//		• Presentation: labeled tables, JSON/YAML summaries, Graphviz drawings
//
// ✨ Guarantees
//
//   - Same input, same output: neighbours are scanned in ascending order
//   - Inputs are never mutated; every run works on its own residual copy
//   - max-flow value == capacity of the reported cut, checked on every Solve
//
// Packages:
//
//	network/   — capacity matrix and residual graph
//	flow/      — Edmonds–Karp, Dinic, min cut, conservation check
//	bipartite/ — undirected graphs, partitions, colouring
//	matching/  — FlowMatching and Kuhn
//	builder/   — capacity distributions and random fixtures
//	scenario/  — labels, lab fixtures, YAML scenarios
//	report/    — tables, JSON/YAML, DOT
//	cmd/lvflow — command line front end
//
// Quick ASCII example:
//
//	    s──5──a
//	    │     │
//	    3     2
//	    │     │
//	    b──4──t
//
// has max flow 5: 2 through a, 3 through b.
//
//	go install github.com/katalvlaran/lvflow/cmd/lvflow@latest
package lvflow

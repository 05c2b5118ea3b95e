// SPDX-License-Identifier: MIT

// Package flow computes maximum flows and minimum cuts on a network.Network,
// a dense capacity matrix over integer vertices 0..n-1.
//
// The key routines offered are:
//
//   - FindAugmentingPath
//
//   - Method: breadth-first search over residual edges with capacity > 0.
//
//   - Stops as soon as sink is discovered; never mutates the residual.
//
//   - EdmondsKarp
//
//   - Method: repeatedly augment along the BFS shortest path.
//
//   - Time:   O(V · E) augmentations, independent of capacity magnitudes.
//
//   - Memory: O(V²) for the private residual copy.
//
//   - Dinic
//
//   - Method: level graph + blocking flow via DFS.
//
//   - Same Result contract; used as a cross-check and for larger inputs.
//
//   - MinCut
//
//   - Method: reachability from source in the terminal residual graph.
//
//   - Guarantees sum(cut edge capacities) == max-flow value.
//
// # API
//
//	func EdmondsKarp(net *network.Network, source, sink int, opts ...Option) (*Result, error)
//	func Dinic(net *network.Network, source, sink int, opts ...Option) (*Result, error)
//	func MinCut(r *network.Residual, source int, net *network.Network) (*Cut, error)
//	func Solve(net *network.Network, source, sink int, opts ...Option) (*Result, *Cut, error)
//
// Every call allocates its own residual graph; the network is only read, so
// independent calls (including concurrent ones) never interfere.
//
// Options:
//
//	WithLogger(l)          // logrus.FieldLogger, one Debug entry per augmentation
//	WithOnAugment(fn)      // hook called after each augmentation
//	WithPathRecording(on)  // keep every augmentation in Result.Paths
//	WithAlgorithm(a)       // Solve only: AlgorithmEdmondsKarp or AlgorithmDinic
//
// # Errors
//
//	ErrNilNetwork        - nil network or residual.
//	ErrSourceOutOfRange  - source is not a vertex.
//	ErrSinkOutOfRange    - sink is not a vertex.
//	ErrDegenerateNetwork - source == sink.
//	ErrResidualMismatch  - residual shape differs from the network.
//	ErrCutMismatch       - Solve found flow value != cut capacity.
//	ErrOptionViolation   - an invalid Option.
//
// A network with no augmenting path is not an error: Value is 0 and the cut
// holds whatever source reaches (just {source} when all its edges are 0).
package flow

// SPDX-License-Identifier: MIT

// Package matching computes maximum-cardinality matchings of bipartite graphs
// with two independent algorithms:
//
//   - FlowMatching
//
//   - Method: reduce to unit-capacity max-flow (virtual source → Left,
//     Left → Right per edge, Right → virtual sink) and run flow.EdmondsKarp.
//
//   - Decode: every Left→Right edge whose residual dropped to 0 is a pair.
//
//   - Kuhn
//
//   - Method: grow the matching one Left vertex at a time by alternating-path
//     search, Left in ascending order, neighbors in ascending order.
//
//   - Search state is an explicit stack of (vertex, neighbor cursor) frames,
//     so depth is bounded by |R| without growing the goroutine stack.
//
// Both validate the partition with bipartite.Validate before doing anything
// and return ErrInvalidPartition-wrapped errors for bad input. Both return a
// maximum matching; when several exist the pairs may differ between the two,
// but the sizes never do.
//
// Verify checks the validity of any Matching against its graph and partition.
package matching

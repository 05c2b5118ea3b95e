// SPDX-License-Identifier: MIT

package flow

import (
	"errors"

	"github.com/katalvlaran/lvflow/network"
)

// Sentinel errors for max-flow and min-cut.
var (
	// ErrNilNetwork is returned when a nil network or residual is supplied.
	ErrNilNetwork = errors.New("flow: network is nil")

	// ErrSourceOutOfRange is returned when the source index is not a vertex.
	ErrSourceOutOfRange = errors.New("flow: source vertex out of range")

	// ErrSinkOutOfRange is returned when the sink index is not a vertex.
	ErrSinkOutOfRange = errors.New("flow: sink vertex out of range")

	// ErrDegenerateNetwork is returned when source == sink.
	ErrDegenerateNetwork = errors.New("flow: source and sink coincide")

	// ErrResidualMismatch is returned when a residual graph does not have
	// the shape of the network it is read against.
	ErrResidualMismatch = errors.New("flow: residual does not match network")

	// ErrCutMismatch is returned by Solve when the flow value differs from the
	// capacity of the extracted cut.
	ErrCutMismatch = errors.New("flow: cut capacity differs from flow value")

	// ErrConservation is returned by VerifyConservation for an unbalanced vertex.
	ErrConservation = errors.New("flow: flow conservation violated")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flow: invalid option supplied")
)

// Augmentation is one augmenting path with the flow pushed along it.
type Augmentation struct {
	Path       []int `json:"path" yaml:"path"`
	Bottleneck int64 `json:"bottleneck" yaml:"bottleneck"`
}

// Result is the outcome of a max-flow computation.
//   - Value: total flow sent from source to sink.
//   - Residual: terminal residual graph, owned by the caller from here on.
//   - Augmentations: number of augmenting paths (or blocking-flow pushes).
//   - Paths: every augmentation, only when path recording is enabled.
type Result struct {
	Value         int64
	Residual      *network.Residual
	Augmentations int
	Paths         []Augmentation
}

// CutEdge is an original edge crossing the cut from S to T.
type CutEdge struct {
	From     int   `json:"from" yaml:"from"`
	To       int   `json:"to" yaml:"to"`
	Capacity int64 `json:"capacity" yaml:"capacity"`
}

// Cut is an s–t cut (S, T) with its crossing edges in row-major order.
type Cut struct {
	S     []int
	T     []int
	Edges []CutEdge

	side []bool // side[v] is true when v ∈ S
}

// Capacity sums the capacities of the cut edges.
func (c *Cut) Capacity() int64 {
	var total int64
	for _, e := range c.Edges {
		total += e.Capacity
	}

	return total
}

// InSource reports whether v lies on the source side S.
func (c *Cut) InSource(v int) bool {
	return v >= 0 && v < len(c.side) && c.side[v]
}

// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyNetwork is returned when a network with no vertices is requested.
	ErrEmptyNetwork = errors.New("network: no vertices")

	// ErrNonSquare is returned when capacity rows are ragged or the matrix is not n×n.
	ErrNonSquare = errors.New("network: capacity matrix is not square")

	// ErrInvalidCapacity is returned (wrapped in *CapacityError) for negative capacities.
	ErrInvalidCapacity = errors.New("network: invalid capacity")

	// ErrCapacityOverflow is returned (wrapped in *CapacityError) when a flow
	// over the network could exceed math.MaxInt64: the total capacity leaving a
	// vertex, or capacity[u][v]+capacity[v][u] for a pair, does not fit in int64.
	ErrCapacityOverflow = errors.New("network: capacity overflows int64")

	// ErrVertexOutOfRange is returned when an edge endpoint is outside 0..n-1.
	ErrVertexOutOfRange = errors.New("network: vertex out of range")
)

// CapacityError reports the first capacity rejected during construction.
// Err is ErrInvalidCapacity for a negative entry and ErrCapacityOverflow for
// the entry at which a row or pair sum leaves int64.
type CapacityError struct {
	From, To int
	Capacity int64
	Err      error
}

func (e *CapacityError) Error() string {
	if e.Err == ErrCapacityOverflow {
		return fmt.Sprintf("network: capacity %d on edge %d→%d overflows int64", e.Capacity, e.From, e.To)
	}
	return fmt.Sprintf("network: negative capacity on edge %d→%d: %d", e.From, e.To, e.Capacity)
}

// Unwrap returns the sentinel behind e; a zero Err means ErrInvalidCapacity.
func (e *CapacityError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidCapacity
	}
	return e.Err
}

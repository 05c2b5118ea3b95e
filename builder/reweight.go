// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvflow/network"
)

const methodReweight = "Reweight"

// Reweight returns a new network with the same edge set as net where every
// positive capacity is replaced by fn(rng). Zero entries stay zero, so the
// topology (including self-loops) is preserved. net is not modified.
//
// A nil fn means DefaultCapacityFn. A nil rng is allowed only for
// deterministic fns; the default fn then yields DefaultEdgeCapacity.
//
// Edges are visited in row-major order, so a fixed seed gives a fixed result.
//
// Complexity: O(n²).
func Reweight(net *network.Network, fn CapacityFn, rng *rand.Rand) (*network.Network, error) {
	if net == nil {
		return nil, fmt.Errorf("%s: %w", methodReweight, ErrNilNetwork)
	}
	if fn == nil {
		fn = DefaultCapacityFn
	}

	m := net.Matrix()
	for u, row := range m {
		for v, c := range row {
			if c > 0 {
				m[u][v] = fn(rng)
			}
		}
	}

	out, err := network.New(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodReweight, err)
	}

	return out, nil
}

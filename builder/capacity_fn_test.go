package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvflow/builder"
)

// TestCapacityFnConstructors verifies that CapacityFn constructors panic
// on invalid parameters according to their documented contracts.
func TestCapacityFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.CapacityFn
	}{
		{"ConstantCapacityFn_negative", func() builder.CapacityFn { return builder.ConstantCapacityFn(-1) }},
		{"UniformCapacityFn_minNegative", func() builder.CapacityFn { return builder.UniformCapacityFn(-1, 5) }},
		{"UniformCapacityFn_maxEqualMin", func() builder.CapacityFn { return builder.UniformCapacityFn(5, 5) }},
		{"UniformCapacityFn_maxLessThanMin", func() builder.CapacityFn { return builder.UniformCapacityFn(5, 4) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestCapacityFnBehavior covers the runtime behavior of each CapacityFn.
func TestCapacityFnBehavior(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	c := builder.ConstantCapacityFn(7)
	require.Equal(t, int64(7), c(nil))
	require.Equal(t, int64(7), c(rng))

	u := builder.UniformCapacityFn(3, 4)
	require.Equal(t, builder.DefaultEdgeCapacity, u(nil), "nil rng falls back to the default")
	require.Equal(t, int64(3), u(rng), "[3,4) holds a single value")

	for i := 0; i < 1000; i++ {
		v := builder.DefaultCapacityFn(rng)
		require.GreaterOrEqual(t, v, builder.DefaultMinCapacity)
		require.Less(t, v, builder.DefaultMaxCapacity)
	}
}

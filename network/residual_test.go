package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvflow/network"
)

func TestResidualIsIndependent(t *testing.T) {
	g, err := network.New([][]int64{{0, 5}, {0, 0}})
	require.NoError(t, err)

	r1 := g.Residual()
	r2 := g.Residual()
	r1.Augment(0, 1, 3)

	require.Equal(t, int64(2), r1.At(0, 1))
	require.Equal(t, int64(3), r1.At(1, 0))
	require.Equal(t, int64(5), r2.At(0, 1), "sibling residual untouched")
	require.Equal(t, int64(5), g.Capacity(0, 1), "network untouched")
}

func TestResidualNetFlowAntisymmetric(t *testing.T) {
	g, err := network.New([][]int64{
		{0, 4, 0},
		{1, 0, 3},
		{0, 0, 0},
	})
	require.NoError(t, err)

	r := g.Residual()
	r.Augment(0, 1, 2)
	r.Augment(1, 2, 2)

	require.Equal(t, int64(2), r.NetFlow(g, 0, 1))
	require.Equal(t, int64(-2), r.NetFlow(g, 1, 0))
	require.Equal(t, int64(2), r.NetFlow(g, 1, 2))

	// pair-sum invariant holds everywhere
	for u := 0; u < g.N(); u++ {
		for v := 0; v < g.N(); v++ {
			require.Equal(t, g.Capacity(u, v)+g.Capacity(v, u), r.At(u, v)+r.At(v, u))
		}
	}
}

func TestResidualCloneAndMatrix(t *testing.T) {
	g, err := network.New([][]int64{{0, 1}, {0, 0}})
	require.NoError(t, err)

	r := g.Residual()
	c := r.Clone()
	c.Augment(0, 1, 1)
	require.Equal(t, [][]int64{{0, 1}, {0, 0}}, r.Matrix())
	require.Equal(t, [][]int64{{0, 0}, {1, 0}}, c.Matrix())
	require.Equal(t, []int64{0, 0}, c.Row(0))
}

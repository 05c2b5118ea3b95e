package network_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvflow/network"
)

// NetworkSuite covers construction, validation and read-only access.
type NetworkSuite struct {
	suite.Suite
}

func (s *NetworkSuite) TestNewCopiesInput() {
	capacity := [][]int64{
		{0, 3, 0},
		{0, 0, 2},
		{0, 0, 0},
	}
	g, err := network.New(capacity)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, g.N())

	// mutating the caller's slice must not leak into g
	capacity[0][1] = 99
	require.Equal(s.T(), int64(3), g.Capacity(0, 1))
}

func (s *NetworkSuite) TestNewRejectsEmpty() {
	_, err := network.New(nil)
	require.ErrorIs(s.T(), err, network.ErrEmptyNetwork)
}

func (s *NetworkSuite) TestNewRejectsRagged() {
	_, err := network.New([][]int64{{0, 1}, {0}})
	require.ErrorIs(s.T(), err, network.ErrNonSquare)
}

func (s *NetworkSuite) TestNewRejectsNegativeCapacity() {
	_, err := network.New([][]int64{{0, -4}, {0, 0}})
	require.ErrorIs(s.T(), err, network.ErrInvalidCapacity)

	var ce *network.CapacityError
	require.True(s.T(), errors.As(err, &ce))
	require.Equal(s.T(), 0, ce.From)
	require.Equal(s.T(), 1, ce.To)
	require.Equal(s.T(), int64(-4), ce.Capacity)
}

// TestNewRejectsOverflow: any sum a flow could accumulate must fit in int64.
func (s *NetworkSuite) TestNewRejectsOverflow() {
	const m = math.MaxInt64
	cases := []struct {
		name     string
		capacity [][]int64
		from, to int
	}{
		{"RowSum", [][]int64{{0, m, m}, {0, 0, m}, {0, 0, 0}}, 0, 2},
		{"PairSum", [][]int64{{0, 1, 0}, {0, 0, 1}, {0, m, 0}}, 1, 2},
		{"RowSumWithSelfLoop", [][]int64{{1, m}, {0, 0}}, 0, 1},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := network.New(tc.capacity)
			require.ErrorIs(s.T(), err, network.ErrCapacityOverflow)
			require.NotErrorIs(s.T(), err, network.ErrInvalidCapacity)

			var ce *network.CapacityError
			require.True(s.T(), errors.As(err, &ce))
			require.Equal(s.T(), tc.from, ce.From)
			require.Equal(s.T(), tc.to, ce.To)
		})
	}
}

// TestNewAcceptsCapacityAtTheLimit: sums of exactly math.MaxInt64 fit.
func (s *NetworkSuite) TestNewAcceptsCapacityAtTheLimit() {
	const m = math.MaxInt64
	g, err := network.New([][]int64{{0, m - 1, 1}, {0, 0, m - 1}, {0, 0, 0}})
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(m-1), g.Capacity(0, 1))
}

func (s *NetworkSuite) TestFromEdgesRejectsOverflow() {
	const m = math.MaxInt64
	_, err := network.FromEdges(2, []network.Edge{
		{From: 0, To: 1, Capacity: m},
		{From: 0, To: 1, Capacity: 1},
	})
	require.ErrorIs(s.T(), err, network.ErrCapacityOverflow, "parallel edges accumulate past int64")

	_, err = network.FromEdges(2, []network.Edge{
		{From: 0, To: 1, Capacity: m},
		{From: 1, To: 0, Capacity: 1},
	})
	require.ErrorIs(s.T(), err, network.ErrCapacityOverflow, "reverse slot of a pair")
}

func (s *NetworkSuite) TestFromEdgesAccumulatesParallel() {
	g, err := network.FromEdges(3, []network.Edge{
		{From: 0, To: 1, Capacity: 2},
		{From: 0, To: 1, Capacity: 5},
		{From: 1, To: 2, Capacity: 0},
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), g.Capacity(0, 1))
	require.Empty(s.T(), g.OutEdges(1), "zero-capacity edge is no edge")
}

func (s *NetworkSuite) TestFromEdgesErrors() {
	_, err := network.FromEdges(0, nil)
	require.ErrorIs(s.T(), err, network.ErrEmptyNetwork)

	_, err = network.FromEdges(2, []network.Edge{{From: 0, To: 2, Capacity: 1}})
	require.ErrorIs(s.T(), err, network.ErrVertexOutOfRange)

	_, err = network.FromEdges(2, []network.Edge{{From: 0, To: 1, Capacity: -1}})
	require.ErrorIs(s.T(), err, network.ErrInvalidCapacity)
}

func (s *NetworkSuite) TestOutEdgesAndEdgesOrder() {
	g, err := network.New([][]int64{
		{0, 0, 4, 1},
		{0, 0, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 0},
	})
	require.NoError(s.T(), err)

	require.Equal(s.T(), []network.Edge{{From: 0, To: 2, Capacity: 4}, {From: 0, To: 3, Capacity: 1}}, g.OutEdges(0))
	require.Nil(s.T(), g.OutEdges(-1))
	require.Equal(s.T(), []network.Edge{{From: 0, To: 2, Capacity: 4}, {From: 0, To: 3, Capacity: 1}, {From: 2, To: 0, Capacity: 2}}, g.Edges())
	require.Equal(s.T(), int64(0), g.Capacity(7, 0), "out of range reads as no edge")
}

func (s *NetworkSuite) TestMatrixIsDeepCopy() {
	g, err := network.New([][]int64{{0, 1}, {0, 0}})
	require.NoError(s.T(), err)

	m := g.Matrix()
	m[0][1] = 42
	require.Equal(s.T(), int64(1), g.Capacity(0, 1))
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

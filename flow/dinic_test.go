package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvflow/flow"
)

// DinicSuite covers Dinic's algorithm and its agreement with Edmonds–Karp.
type DinicSuite struct {
	suite.Suite
}

// TestSimplePath: a single edge saturates.
func (s *DinicSuite) TestSimplePath() {
	g := mustNetwork(s.T(), [][]int64{{0, 7}, {0, 0}})

	res, err := flow.Dinic(g, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(7), res.Value)
	require.Equal(s.T(), int64(7), res.Residual.At(1, 0))
}

// TestLabNetwork: same value and same cut as Edmonds–Karp.
func (s *DinicSuite) TestLabNetwork() {
	g := mustNetwork(s.T(), labCapacity())

	res, cut, err := flow.Solve(g, labSource, labSink, flow.WithAlgorithm(flow.AlgorithmDinic))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(18), res.Value)
	require.Equal(s.T(), []int{0}, cut.S)
	require.NoError(s.T(), flow.VerifyConservation(g, res.Residual, labSource, labSink))
}

// TestRecordedPathsAreValid: every recorded push runs source..sink.
func (s *DinicSuite) TestRecordedPathsAreValid() {
	g := mustNetwork(s.T(), labCapacity())

	res, err := flow.Dinic(g, labSource, labSink, flow.WithPathRecording(true))
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Paths, res.Augmentations)

	var total int64
	for _, p := range res.Paths {
		require.Equal(s.T(), labSource, p.Path[0])
		require.Equal(s.T(), labSink, p.Path[len(p.Path)-1])
		require.Positive(s.T(), p.Bottleneck)
		total += p.Bottleneck
	}
	require.Equal(s.T(), res.Value, total)
}

// TestPreconditions mirrors Edmonds–Karp's terminal checks.
func (s *DinicSuite) TestPreconditions() {
	g := mustNetwork(s.T(), [][]int64{{0, 1}, {0, 0}})

	_, err := flow.Dinic(g, 0, 0)
	require.ErrorIs(s.T(), err, flow.ErrDegenerateNetwork)

	_, err = flow.Dinic(g, 0, 9)
	require.ErrorIs(s.T(), err, flow.ErrSinkOutOfRange)
}

// TestAgreesWithEdmondsKarp on seeded random networks.
func (s *DinicSuite) TestAgreesWithEdmondsKarp() {
	for seed := int64(1); seed <= 20; seed++ {
		g := mustNetwork(s.T(), randomCapacity(12, 0.3, 20, seed))

		ek, ekCut, err := flow.Solve(g, 0, 11)
		require.NoError(s.T(), err)
		di, diCut, err := flow.Solve(g, 0, 11, flow.WithAlgorithm(flow.AlgorithmDinic))
		require.NoError(s.T(), err)

		require.Equal(s.T(), ek.Value, di.Value, "seed %d", seed)
		require.Equal(s.T(), ekCut.S, diCut.S, "reachable set is unique across max flows (seed %d)", seed)
	}
}

func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}

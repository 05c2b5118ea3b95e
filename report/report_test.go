package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/lvflow/bipartite"
	"github.com/katalvlaran/lvflow/flow"
	"github.com/katalvlaran/lvflow/matching"
	"github.com/katalvlaran/lvflow/report"
	"github.com/katalvlaran/lvflow/scenario"
)

type ReportSuite struct {
	suite.Suite

	lab *scenario.FlowScenario
	res *flow.Result
	cut *flow.Cut
}

func (s *ReportSuite) SetupTest() {
	s.lab = scenario.Lab()
	net, err := s.lab.Network()
	require.NoError(s.T(), err)
	s.res, s.cut, err = flow.Solve(net, 0, 2, flow.WithPathRecording(true))
	require.NoError(s.T(), err)
}

func (s *ReportSuite) TestMatrixUsesLabels() {
	var buf bytes.Buffer
	require.NoError(s.T(), report.Matrix(&buf, "capacities", [][]int64{{0, 5}, {0, 0}}, scenario.Labels{"A", "B"}))

	out := buf.String()
	require.Contains(s.T(), out, "capacities")
	require.Contains(s.T(), out, "A")
	require.Contains(s.T(), out, "B")
	require.Contains(s.T(), out, "5")
}

func (s *ReportSuite) TestCut() {
	var buf bytes.Buffer
	require.NoError(s.T(), report.Cut(&buf, s.res, s.cut, s.lab.Labels))

	out := buf.String()
	require.Contains(s.T(), out, "max flow: 18")
	require.Contains(s.T(), out, "S: {A}")
	require.Contains(s.T(), out, "T: {B, C, D, E, F, G, H, I}")
	require.Contains(s.T(), out, "18")
}

func (s *ReportSuite) TestPaths() {
	var buf bytes.Buffer
	require.NoError(s.T(), report.Paths(&buf, s.res, s.lab.Labels))
	require.Contains(s.T(), buf.String(), "A→C")
	require.Contains(s.T(), buf.String(), "A→B→C")
}

func (s *ReportSuite) TestFlowSummaryJSON() {
	sum := report.NewFlowSummary("lab", flow.AlgorithmEdmondsKarp, 0, 2, s.res, s.cut, s.lab.Labels)
	require.Equal(s.T(), []string{"A"}, sum.S)
	require.Equal(s.T(), []report.CutEdgeSummary{
		{From: "A", To: "B", Capacity: 5},
		{From: "A", To: "C", Capacity: 9},
		{From: "A", To: "I", Capacity: 4},
	}, sum.CutEdges)

	var buf bytes.Buffer
	require.NoError(s.T(), report.JSON(&buf, sum))

	var back report.FlowSummary
	require.NoError(s.T(), json.Unmarshal(buf.Bytes(), &back))
	require.Equal(s.T(), sum, back)
}

func (s *ReportSuite) TestFlowSummaryYAML() {
	sum := report.NewFlowSummary("lab", flow.AlgorithmEdmondsKarp, 0, 2, s.res, s.cut, nil)
	require.Equal(s.T(), "0", sum.Source)

	var buf bytes.Buffer
	require.NoError(s.T(), report.YAML(&buf, sum))

	var back report.FlowSummary
	require.NoError(s.T(), yaml.Unmarshal(buf.Bytes(), &back))
	require.Equal(s.T(), int64(18), back.Value)
	require.Equal(s.T(), sum.CutEdges, back.CutEdges)
}

func (s *ReportSuite) TestMatchingAndCompare() {
	a := &matching.Matching{Pairs: []matching.Pair{{Left: 0, Right: 10}}}
	b := &matching.Matching{Pairs: []matching.Pair{{Left: 0, Right: 11}, {Left: 1, Right: 10}}}

	var buf bytes.Buffer
	require.NoError(s.T(), report.Matching(&buf, "kuhn", b))
	require.Contains(s.T(), buf.String(), "kuhn: 2 pairs")

	buf.Reset()
	require.NoError(s.T(), report.Compare(&buf, []int{0, 1}, report.Named{Name: "flow", Matching: a}, report.Named{Name: "kuhn", Matching: b}))
	out := buf.String()
	require.Contains(s.T(), out, "-", "unmatched left vertex")
	require.Contains(s.T(), out, "11")
}

func (s *ReportSuite) TestDOT() {
	g := bipartite.NewGraph(bipartite.Edge{U: 0, V: 10}, bipartite.Edge{U: 1, V: 10})
	p := bipartite.Partition{Left: []int{0, 1}, Right: []int{10}}
	m := &matching.Matching{Pairs: []matching.Pair{{Left: 1, Right: 10}}}

	var buf bytes.Buffer
	require.NoError(s.T(), report.DOT(&buf, "pairs", g, p, m))

	out := buf.String()
	require.Contains(s.T(), out, `graph "pairs" {`)
	require.Contains(s.T(), out, "0 -- 10 [color=gray];")
	require.Contains(s.T(), out, "1 -- 10 [color=red, penwidth=3];")
	require.Contains(s.T(), out, "10 [style=filled, fillcolor=lightgreen];")
}

func TestReportSuite(t *testing.T) {
	suite.Run(t, new(ReportSuite))
}

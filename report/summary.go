// SPDX-License-Identifier: MIT

package report

import (
	"io"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/lvflow/bipartite"
	"github.com/katalvlaran/lvflow/flow"
	"github.com/katalvlaran/lvflow/matching"
)

// CutEdgeSummary is a named cut edge.
type CutEdgeSummary struct {
	From     string `json:"from" yaml:"from"`
	To       string `json:"to" yaml:"to"`
	Capacity int64  `json:"capacity" yaml:"capacity"`
}

// PathSummary is a named augmenting path.
type PathSummary struct {
	Path       []string `json:"path" yaml:"path"`
	Bottleneck int64    `json:"bottleneck" yaml:"bottleneck"`
}

// FlowSummary is the machine-readable result of one max-flow run.
type FlowSummary struct {
	Scenario      string           `json:"scenario" yaml:"scenario"`
	Algorithm     string           `json:"algorithm" yaml:"algorithm"`
	Source        string           `json:"source" yaml:"source"`
	Sink          string           `json:"sink" yaml:"sink"`
	Value         int64            `json:"value" yaml:"value"`
	Augmentations int              `json:"augmentations" yaml:"augmentations"`
	S             []string         `json:"s" yaml:"s"`
	T             []string         `json:"t" yaml:"t"`
	CutEdges      []CutEdgeSummary `json:"cut_edges" yaml:"cut_edges"`
	Paths         []PathSummary    `json:"paths,omitempty" yaml:"paths,omitempty"`
}

// NewFlowSummary names every vertex of res and cut through n.
func NewFlowSummary(scenario string, algorithm flow.Algorithm, source, sink int, res *flow.Result, cut *flow.Cut, n Namer) FlowSummary {
	n = names(n)
	var s = FlowSummary{
		Scenario:      scenario,
		Algorithm:     string(algorithm),
		Source:        n.Name(source),
		Sink:          n.Name(sink),
		Value:         res.Value,
		Augmentations: res.Augmentations,
		S:             nameAll(cut.S, n),
		T:             nameAll(cut.T, n),
		CutEdges:      make([]CutEdgeSummary, 0, len(cut.Edges)),
	}
	for _, e := range cut.Edges {
		s.CutEdges = append(s.CutEdges, CutEdgeSummary{From: n.Name(e.From), To: n.Name(e.To), Capacity: e.Capacity})
	}
	for _, a := range res.Paths {
		s.Paths = append(s.Paths, PathSummary{Path: nameAll(a.Path, n), Bottleneck: a.Bottleneck})
	}
	return s
}

// MatchingSummary is the machine-readable result of one matching run.
type MatchingSummary struct {
	Scenario string           `json:"scenario" yaml:"scenario"`
	Left     []int            `json:"left" yaml:"left"`
	Right    []int            `json:"right" yaml:"right"`
	Removed  []bipartite.Edge `json:"removed,omitempty" yaml:"removed,omitempty"`
	Results  []MatchingResult `json:"results" yaml:"results"`
}

// MatchingResult is one algorithm's matching.
type MatchingResult struct {
	Algorithm string          `json:"algorithm" yaml:"algorithm"`
	Size      int             `json:"size" yaml:"size"`
	Pairs     []matching.Pair `json:"pairs" yaml:"pairs"`
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v interface{}) error {
	b, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if _, err = w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}

// YAML writes v as a YAML document.
func YAML(w io.Writer, v interface{}) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func nameAll(vs []int, n Namer) []string {
	var out = make([]string, len(vs))
	for i, v := range vs {
		out[i] = n.Name(v)
	}
	return out
}

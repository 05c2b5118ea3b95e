// SPDX-License-Identifier: MIT

package scenario

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/lvflow/network"
)

// FlowEdge is a directed edge between two vertex names.
type FlowEdge struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Capacity int64  `yaml:"capacity"`
}

// FlowScenario describes a flow network with its terminals. Exactly one of
// Matrix and Edges is set. With Edges, the vertex count is len(Labels) or
// Vertices, whichever is larger.
type FlowScenario struct {
	Name     string     `yaml:"name"`
	Labels   Labels     `yaml:"labels,omitempty"`
	Vertices int        `yaml:"vertices,omitempty"`
	Source   string     `yaml:"source"`
	Sink     string     `yaml:"sink"`
	Matrix   [][]int64  `yaml:"matrix,omitempty"`
	Edges    []FlowEdge `yaml:"edges,omitempty"`
}

// LoadFlow reads and decodes the flow scenario at path.
func LoadFlow(path string) (*FlowScenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading flow scenario %s", path)
	}
	s, err := DecodeFlow(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}

	return s, nil
}

// DecodeFlow decodes a flow scenario. Unknown fields are an error.
func DecodeFlow(r io.Reader) (*FlowScenario, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading flow scenario")
	}
	var s FlowScenario
	if err = yaml.UnmarshalStrict(b, &s); err != nil {
		return nil, errors.Wrap(err, "unmarshal flow scenario")
	}
	if (s.Matrix == nil) == (s.Edges == nil) {
		return nil, errors.Wrap(ErrInvalidScenario, "exactly one of matrix and edges is required")
	}

	return &s, nil
}

// N returns the vertex count of the scenario.
func (s *FlowScenario) N() int {
	if s.Matrix != nil {
		return len(s.Matrix)
	}
	if len(s.Labels) > s.Vertices {
		return len(s.Labels)
	}

	return s.Vertices
}

// Vertex resolves a label or decimal index to a vertex of the scenario.
func (s *FlowScenario) Vertex(name string) (int, error) {
	i, ok := s.Labels.Index(name, s.N())
	if !ok {
		return 0, errors.Wrapf(ErrUnknownVertex, "%q in scenario %q", name, s.Name)
	}

	return i, nil
}

// Terminals resolves Source and Sink.
func (s *FlowScenario) Terminals() (source, sink int, err error) {
	if source, err = s.Vertex(s.Source); err != nil {
		return 0, 0, errors.Wrap(err, "source")
	}
	if sink, err = s.Vertex(s.Sink); err != nil {
		return 0, 0, errors.Wrap(err, "sink")
	}

	return source, sink, nil
}

// Network builds the capacity model of the scenario.
func (s *FlowScenario) Network() (*network.Network, error) {
	if s.Matrix != nil {
		net, err := network.New(s.Matrix)
		return net, errors.Wrapf(err, "scenario %q", s.Name)
	}

	edges := make([]network.Edge, 0, len(s.Edges))
	for _, e := range s.Edges {
		u, err := s.Vertex(e.From)
		if err != nil {
			return nil, err
		}
		v, err := s.Vertex(e.To)
		if err != nil {
			return nil, err
		}
		edges = append(edges, network.Edge{From: u, To: v, Capacity: e.Capacity})
	}
	net, err := network.FromEdges(s.N(), edges)

	return net, errors.Wrapf(err, "scenario %q", s.Name)
}

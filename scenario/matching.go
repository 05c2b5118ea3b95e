// SPDX-License-Identifier: MIT

package scenario

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/lvflow/bipartite"
)

// MatchingScenario describes an undirected graph and, optionally, its
// bipartition. Without Left and Right the caller colours the graph.
type MatchingScenario struct {
	Name  string   `yaml:"name"`
	Edges [][]int `yaml:"edges"`
	Left  []int    `yaml:"left,omitempty"`
	Right []int    `yaml:"right,omitempty"`
}

// LoadMatching reads and decodes the matching scenario at path.
func LoadMatching(path string) (*MatchingScenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading matching scenario %s", path)
	}
	s, err := DecodeMatching(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}

	return s, nil
}

// DecodeMatching decodes a matching scenario. Unknown fields are an error.
func DecodeMatching(r io.Reader) (*MatchingScenario, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading matching scenario")
	}
	var s MatchingScenario
	if err = yaml.UnmarshalStrict(b, &s); err != nil {
		return nil, errors.Wrap(err, "unmarshal matching scenario")
	}
	for i, e := range s.Edges {
		if len(e) != 2 {
			return nil, errors.Wrapf(ErrInvalidScenario, "edge %d has %d endpoints", i, len(e))
		}
	}
	if (s.Left == nil) != (s.Right == nil) {
		return nil, errors.Wrap(ErrInvalidScenario, "left and right go together")
	}

	return &s, nil
}

// Graph returns the edge set of the scenario.
func (s *MatchingScenario) Graph() bipartite.Graph {
	edges := make([]bipartite.Edge, len(s.Edges))
	for i, e := range s.Edges {
		edges[i] = bipartite.Edge{U: e[0], V: e[1]}
	}

	return bipartite.NewGraph(edges...)
}

// Partition returns the declared bipartition, if any.
func (s *MatchingScenario) Partition() (bipartite.Partition, bool) {
	if s.Left == nil {
		return bipartite.Partition{}, false
	}

	return bipartite.Partition{Left: s.Left, Right: s.Right}, true
}

// SPDX-License-Identifier: MIT

package matching

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvflow/bipartite"
)

var (
	// ErrInvalidMatching is returned by Verify for a pair that is not an edge,
	// crosses the partition the wrong way, or reuses a vertex.
	ErrInvalidMatching = errors.New("matching: invalid matching")

	// ErrDecode is returned when a decoded flow does not match its flow value.
	ErrDecode = errors.New("matching: flow decode mismatch")
)

// Pair is one matched edge, Left ∈ L and Right ∈ R.
type Pair struct {
	Left  int `json:"left" yaml:"left"`
	Right int `json:"right" yaml:"right"`
}

// Matching is a set of vertex-disjoint pairs, sorted by Left.
type Matching struct {
	Pairs []Pair `json:"pairs" yaml:"pairs"`
}

// Size returns the number of pairs.
func (m *Matching) Size() int {
	return len(m.Pairs)
}

// Contains reports whether (left, right) is a pair of m.
func (m *Matching) Contains(left, right int) bool {
	for _, p := range m.Pairs {
		if p.Left == left && p.Right == right {
			return true
		}
	}

	return false
}

// PartnerOf returns the vertex matched with v, from either side.
func (m *Matching) PartnerOf(v int) (int, bool) {
	for _, p := range m.Pairs {
		switch v {
		case p.Left:
			return p.Right, true
		case p.Right:
			return p.Left, true
		}
	}

	return 0, false
}

// Verify checks that every pair of m is an edge of g, runs Left→Right under p,
// and that no vertex occurs in two pairs.
func Verify(g bipartite.Graph, p bipartite.Partition, m *Matching) error {
	used := make(map[int]bool, 2*m.Size())
	for _, pr := range m.Pairs {
		if !p.IsLeft(pr.Left) || !p.IsRight(pr.Right) {
			return fmt.Errorf("matching: pair (%d,%d) does not run left→right: %w", pr.Left, pr.Right, ErrInvalidMatching)
		}
		if !g.HasEdge(pr.Left, pr.Right) {
			return fmt.Errorf("matching: pair (%d,%d) is not an edge: %w", pr.Left, pr.Right, ErrInvalidMatching)
		}
		if used[pr.Left] || used[pr.Right] {
			return fmt.Errorf("matching: pair (%d,%d) reuses a vertex: %w", pr.Left, pr.Right, ErrInvalidMatching)
		}
		used[pr.Left], used[pr.Right] = true, true
	}

	return nil
}

// Option configures a matcher.
type Option func(*Options)

// Options holds matcher settings.
type Options struct {
	// Logger receives Debug entries; defaults to a discard logger.
	Logger logrus.FieldLogger
}

// WithLogger routes Debug entries to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) Options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	o := Options{Logger: l}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// sortedUnique returns xs ascending without duplicates, leaving xs untouched.
func sortedUnique(xs []int) []int {
	out := append([]int(nil), xs...)
	sort.Ints(out)
	w := 0
	for i, x := range out {
		if i == 0 || x != out[w-1] {
			out[w] = x
			w++
		}
	}

	return out[:w]
}

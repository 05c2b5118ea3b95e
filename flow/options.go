// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Algorithm names a max-flow strategy accepted by Solve.
type Algorithm string

const (
	// AlgorithmEdmondsKarp augments along BFS shortest paths (the default).
	AlgorithmEdmondsKarp Algorithm = "edmonds-karp"
	// AlgorithmDinic augments with blocking flows over level graphs.
	AlgorithmDinic Algorithm = "dinic"
)

// Option configures a flow computation via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the knobs shared by every engine in this package.
type Options struct {
	// Logger receives one Debug entry per augmentation. Defaults to a discard logger.
	Logger logrus.FieldLogger

	// OnAugment is called after every augmentation, in order.
	OnAugment func(Augmentation)

	// RecordPaths keeps every augmentation in Result.Paths.
	RecordPaths bool

	// Algorithm selects the engine used by Solve.
	Algorithm Algorithm

	err error
}

// DefaultOptions returns Options with a silent logger, a no-op hook,
// no path recording and Edmonds–Karp.
func DefaultOptions() Options {
	return Options{
		Logger:    discardLogger(),
		OnAugment: func(Augmentation) {},
		Algorithm: AlgorithmEdmondsKarp,
	}
}

// WithLogger routes per-augmentation Debug entries to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnAugment installs a hook invoked after every augmentation.
func WithOnAugment(fn func(Augmentation)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// WithPathRecording toggles Result.Paths.
func WithPathRecording(on bool) Option {
	return func(o *Options) {
		o.RecordPaths = on
	}
}

// WithAlgorithm selects the engine Solve runs.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		switch a {
		case AlgorithmEdmondsKarp, AlgorithmDinic:
			o.Algorithm = a
		default:
			o.err = fmt.Errorf("flow: unknown algorithm %q: %w", a, ErrOptionViolation)
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

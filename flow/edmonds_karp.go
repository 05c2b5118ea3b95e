// SPDX-License-Identifier: MIT

package flow

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvflow/network"
)

// EdmondsKarp computes the maximum flow from source→sink using the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns a Result holding:
//   - Value: total flow value
//   - Residual: a freshly allocated residual graph after the last augmentation
//   - Augmentations: the number of augmenting paths pushed
//
// Errors: ErrNilNetwork, ErrSourceOutOfRange, ErrSinkOutOfRange,
// ErrDegenerateNetwork, ErrOptionViolation. Negative capacities cannot occur;
// network.New rejects them.
//
// Steps:
//  1. Validate options and terminals.
//  2. Copy capacities into a private residual graph.
//  3. Loop: find a BFS path; stop when none; push its bottleneck along it.
//
// Complexity: O(V · E) augmentations, each O(V²) on the dense residual.
// Memory:     O(V²) for the residual.
func EdmondsKarp(net *network.Network, source, sink int, opts ...Option) (*Result, error) {
	// 1) Options and preconditions
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateTerminals(net, source, sink); err != nil {
		return nil, err
	}

	// 2) Residual graph, never aliasing net
	res := &Result{Residual: net.Residual()}

	// 3) Main loop: BFS augmenting paths until none remain
	for {
		parent, ok := FindAugmentingPath(res.Residual, source, sink)
		if !ok {
			break
		}
		path := PathFromParents(parent, source, sink)
		bottle := Bottleneck(res.Residual, path)

		for i := 0; i+1 < len(path); i++ {
			res.Residual.Augment(path[i], path[i+1], bottle)
		}
		res.Value += bottle
		res.Augmentations++

		aug := Augmentation{Path: path, Bottleneck: bottle}
		if o.RecordPaths {
			res.Paths = append(res.Paths, aug)
		}
		o.Logger.WithFields(logrus.Fields{
			"path":       path,
			"bottleneck": bottle,
			"total":      res.Value,
		}).Debug("edmonds-karp: augmented")
		o.OnAugment(aug)
	}

	return res, nil
}

// validateTerminals checks net, source and sink in documented priority order.
func validateTerminals(net *network.Network, source, sink int) error {
	if net == nil {
		return ErrNilNetwork
	}
	if !net.Contains(source) {
		return ErrSourceOutOfRange
	}
	if !net.Contains(sink) {
		return ErrSinkOutOfRange
	}
	if source == sink {
		return ErrDegenerateNetwork
	}

	return nil
}

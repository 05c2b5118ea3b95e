// SPDX-License-Identifier: MIT

package scenario

import "github.com/pkg/errors"

var (
	// ErrInvalidScenario is returned for a document that decodes but cannot
	// describe a network or a graph.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrUnknownVertex is returned when a name is neither a label nor an index.
	ErrUnknownVertex = errors.New("scenario: unknown vertex")
)

// SPDX-License-Identifier: MIT

// Package scenario holds the inputs of lvflow runs: vertex labels, the
// built-in lab fixtures and YAML scenario documents.
//
// Labels live here and never enter the flow or matching engines, which work
// on dense integer indices only. A scenario maps names to indices once, at
// load time.
//
// A flow scenario document:
//
//	name: lab
//	labels: [A, B, C]
//	source: A
//	sink: C
//	edges:
//	  - {from: A, to: B, capacity: 5}
//	  - {from: B, to: C, capacity: 2}
//
// A matching scenario document:
//
//	name: pairs
//	edges: [[0, 10], [1, 10], [0, 11]]
//	left: [0, 1]     # optional; coloured automatically when absent
//	right: [10, 11]
package scenario

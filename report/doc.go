// SPDX-License-Identifier: MIT

// Package report renders lvflow results for people and machines: labeled
// tables via tablewriter, JSON via sonic, YAML via yaml.v2 and Graphviz DOT
// drawings of matchings.
package report

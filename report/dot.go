// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/lvflow/bipartite"
	"github.com/katalvlaran/lvflow/matching"
)

// dotColors cycles across highlighted matchings.
var dotColors = []string{"red", "blue", "darkgreen", "orange"}

// DOT writes g as an undirected Graphviz graph with Left and Right in two
// ranked clusters. Each matching's pairs are drawn bold in its own colour;
// a pair shared by several matchings is drawn once per matching.
func DOT(w io.Writer, title string, g bipartite.Graph, p bipartite.Partition, ms ...*matching.Matching) error {
	var bw = bufio.NewWriter(w)

	fmt.Fprintf(bw, "graph %q {\n", title)
	fmt.Fprintf(bw, "  rankdir=LR;\n  node [shape=circle];\n")
	writeSide(bw, "left", "lightblue", p.Left)
	writeSide(bw, "right", "lightgreen", p.Right)

	for _, e := range g.Edges {
		fmt.Fprintf(bw, "  %d -- %d [color=gray];\n", e.U, e.V)
	}
	for i, m := range ms {
		var color = dotColors[i%len(dotColors)]
		for _, pr := range m.Pairs {
			fmt.Fprintf(bw, "  %d -- %d [color=%s, penwidth=3];\n", pr.Left, pr.Right, color)
		}
	}
	fmt.Fprintf(bw, "}\n")

	return bw.Flush()
}

func writeSide(w io.Writer, name, fill string, vs []int) {
	fmt.Fprintf(w, "  subgraph cluster_%s {\n    rank=same; style=invis;\n", name)
	for _, v := range vs {
		fmt.Fprintf(w, "    %d [style=filled, fillcolor=%s];\n", v, fill)
	}
	fmt.Fprintf(w, "  }\n")
}

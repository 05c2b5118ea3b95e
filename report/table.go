// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvflow/flow"
	"github.com/katalvlaran/lvflow/matching"
)

// Namer maps a vertex index to its display name.
type Namer interface {
	Name(i int) string
}

// Indices names every vertex by its decimal index.
type Indices struct{}

// Name implements Namer.
func (Indices) Name(i int) string { return strconv.Itoa(i) }

func names(n Namer) Namer {
	if n == nil {
		return Indices{}
	}
	return n
}

// Matrix writes a square capacity or residual matrix with labeled rows and
// columns. Zero entries print as ".".
func Matrix(w io.Writer, title string, m [][]int64, n Namer) error {
	n = names(n)
	fmt.Fprintf(w, "%s\n", title)

	var headers = []string{""}
	for j := range m {
		headers = append(headers, n.Name(j))
	}
	var rows = make([][]string, 0, len(m))
	for i, row := range m {
		var cells = []string{n.Name(i)}
		for _, c := range row {
			if c == 0 {
				cells = append(cells, ".")
			} else {
				cells = append(cells, strconv.FormatInt(c, 10))
			}
		}
		rows = append(rows, cells)
	}
	return render(w, headers, rows)
}

// Cut writes the flow value, both sides of the cut and the cut edges.
func Cut(w io.Writer, res *flow.Result, cut *flow.Cut, n Namer) error {
	n = names(n)
	fmt.Fprintf(w, "max flow: %d\n", res.Value)
	fmt.Fprintf(w, "S: {%s}\n", joinNames(cut.S, n))
	fmt.Fprintf(w, "T: {%s}\n", joinNames(cut.T, n))

	var rows = make([][]string, 0, len(cut.Edges)+1)
	for _, e := range cut.Edges {
		rows = append(rows, []string{n.Name(e.From), n.Name(e.To), strconv.FormatInt(e.Capacity, 10)})
	}
	rows = append(rows, []string{"", "total", strconv.FormatInt(cut.Capacity(), 10)})
	return render(w, []string{"From", "To", "Capacity"}, rows)
}

// Paths writes recorded augmentations in order.
func Paths(w io.Writer, res *flow.Result, n Namer) error {
	n = names(n)
	var rows = make([][]string, 0, len(res.Paths))
	for i, a := range res.Paths {
		rows = append(rows, []string{strconv.Itoa(i + 1), joinPath(a.Path, n), strconv.FormatInt(a.Bottleneck, 10)})
	}
	return render(w, []string{"#", "Path", "Bottleneck"}, rows)
}

// Matching writes the pairs of m and its size.
func Matching(w io.Writer, title string, m *matching.Matching) error {
	fmt.Fprintf(w, "%s: %d pairs\n", title, m.Size())

	var rows = make([][]string, 0, len(m.Pairs))
	for _, p := range m.Pairs {
		rows = append(rows, []string{strconv.Itoa(p.Left), strconv.Itoa(p.Right)})
	}
	return render(w, []string{"Left", "Right"}, rows)
}

// Named attaches an algorithm name to a matching.
type Named struct {
	Name     string
	Matching *matching.Matching
}

// Compare writes every Left vertex once with its partner under each matching.
func Compare(w io.Writer, left []int, ms ...Named) error {
	var headers = []string{"Left"}
	for _, m := range ms {
		headers = append(headers, m.Name)
	}

	var rows = make([][]string, 0, len(left)+1)
	for _, u := range left {
		var row = []string{strconv.Itoa(u)}
		for _, m := range ms {
			if v, ok := m.Matching.PartnerOf(u); ok {
				row = append(row, strconv.Itoa(v))
			} else {
				row = append(row, "-")
			}
		}
		rows = append(rows, row)
	}
	var sizes = []string{"size"}
	for _, m := range ms {
		sizes = append(sizes, strconv.Itoa(m.Matching.Size()))
	}
	rows = append(rows, sizes)
	return render(w, headers, rows)
}

// render writes one table. A failed row aborts before anything is drawn.
func render(w io.Writer, headers []string, rows [][]string) error {
	var table = tablewriter.NewWriter(w)

	var hdr = make([]any, len(headers))
	for i, h := range headers {
		hdr[i] = h
	}
	table.Header(hdr...)

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return errors.Wrap(err, "table row")
		}
	}
	return errors.Wrap(table.Render(), "table render")
}

func joinNames(vs []int, n Namer) string {
	var parts = make([]string, len(vs))
	for i, v := range vs {
		parts[i] = n.Name(v)
	}
	return strings.Join(parts, ", ")
}

func joinPath(vs []int, n Namer) string {
	var parts = make([]string, len(vs))
	for i, v := range vs {
		parts[i] = n.Name(v)
	}
	return strings.Join(parts, "→")
}

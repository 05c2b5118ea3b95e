// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvflow/bipartite"
	"github.com/katalvlaran/lvflow/matching"
	"github.com/katalvlaran/lvflow/report"
	"github.com/katalvlaran/lvflow/scenario"
)

const matchingLong = `
Compute maximum bipartite matchings with the flow reduction, the direct
augmenting-path matcher, or both side by side.

Without --scenario the built-in 35-edge lab graph is used. A scenario file is YAML:

>    name: pairs
>    edges: [[0, 10], [1, 10], [0, 11]]
>    left: [0, 1]
>    right: [10, 11]

When left and right are omitted, edges closing odd cycles are dropped first
and the rest is 2-coloured, the smallest vertex of every component going left.
Dropped edges are reported. --strict rejects a graph with an odd cycle instead.
A declared partition is used as given and never loses edges.

--dot writes a Graphviz drawing with every computed matching highlighted.
`

type cmdMatching struct {
	Scenario       string `long:"scenario" short:"s" description:"Matching scenario YAML path (default: built-in lab graph)"`
	Algorithm      string `long:"algorithm" default:"both" choice:"flow" choice:"kuhn" choice:"both" description:"Matching algorithm"`
	Strict         bool   `long:"strict" description:"Reject a graph with an odd cycle instead of dropping edges"`
	DOT            string `long:"dot" description:"Write a Graphviz drawing to this path"`
	Format         string `long:"format" short:"o" choice:"table" choice:"json" choice:"yaml" default:"table" description:"Output format"`
}

func (cmd *cmdMatching) Execute([]string) error {
	startup()
	return cmd.run(os.Stdout)
}

func (cmd *cmdMatching) run(w io.Writer) error {
	var sc = scenario.LabBipartite()
	if cmd.Scenario != "" {
		var err error
		if sc, err = scenario.LoadMatching(cmd.Scenario); err != nil {
			return err
		}
	}

	var g = sc.Graph()
	var removed []bipartite.Edge

	p, ok := sc.Partition()
	if !ok {
		if !cmd.Strict {
			g, removed = bipartite.BreakOddCycles(g)
			if len(removed) != 0 {
				log.WithField("removed", removed).Warn("dropped odd-cycle edges")
			}
		}
		var err error
		if p, err = bipartite.Color(g); err != nil {
			return fmt.Errorf("colouring %s: %w", sc.Name, err)
		}
	}

	var results []report.Named
	for _, alg := range cmd.algorithms() {
		m, err := alg.run(g, p, matching.WithLogger(log.StandardLogger()))
		if err != nil {
			return fmt.Errorf("%s matching: %w", alg.name, err)
		}
		log.WithFields(log.Fields{"algorithm": alg.name, "size": m.Size()}).Info("matching computed")
		results = append(results, report.Named{Name: alg.name, Matching: m})
	}

	if cmd.DOT != "" {
		if err := cmd.writeDOT(sc.Name, g, p, results); err != nil {
			return err
		}
	}

	switch cmd.Format {
	case "json", "yaml":
		var sum = report.MatchingSummary{Scenario: sc.Name, Left: p.Left, Right: p.Right, Removed: removed}
		for _, r := range results {
			sum.Results = append(sum.Results, report.MatchingResult{
				Algorithm: r.Name, Size: r.Matching.Size(), Pairs: r.Matching.Pairs,
			})
		}
		if cmd.Format == "json" {
			return report.JSON(w, sum)
		}
		return report.YAML(w, sum)
	default:
		fmt.Fprintf(w, "left: %v\nright: %v\n", p.Left, p.Right)
		if len(removed) != 0 {
			fmt.Fprintf(w, "removed: %v\n", removed)
		}
		for _, r := range results {
			if err := report.Matching(w, r.Name, r.Matching); err != nil {
				return err
			}
		}
		if len(results) > 1 {
			return report.Compare(w, p.Left, results...)
		}
		return nil
	}
}

type namedMatcher struct {
	name string
	run  func(bipartite.Graph, bipartite.Partition, ...matching.Option) (*matching.Matching, error)
}

func (cmd *cmdMatching) algorithms() []namedMatcher {
	var flowM = namedMatcher{"flow", matching.FlowMatching}
	var kuhnM = namedMatcher{"kuhn", matching.Kuhn}

	switch cmd.Algorithm {
	case "flow":
		return []namedMatcher{flowM}
	case "kuhn":
		return []namedMatcher{kuhnM}
	default:
		return []namedMatcher{flowM, kuhnM}
	}
}

func (cmd *cmdMatching) writeDOT(title string, g bipartite.Graph, p bipartite.Partition, results []report.Named) error {
	f, err := os.Create(cmd.DOT)
	if err != nil {
		return err
	}
	var ms []*matching.Matching
	for _, r := range results {
		ms = append(ms, r.Matching)
	}
	if err = report.DOT(f, title, g, p, ms...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SPDX-License-Identifier: MIT

// Command lvflow runs max-flow/min-cut and bipartite matching on lab
// scenarios or YAML scenario files.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

const iniFilename = "lvflow.ini"

var baseCfg = new(struct {
	Log LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
})

func main() {
	var parser = newParser(&cmdMaxflow{}, &cmdMatching{})

	must(loadIni(parser, iniFilename), "failed to load configuration")
	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		os.Exit(exitCode(err))
	}
}

// newParser builds the command tree around the given sub-command values.
func newParser(maxflow *cmdMaxflow, match *cmdMatching) *flags.Parser {
	var parser = flags.NewParser(baseCfg, flags.Default)
	parser.LongDescription = `lvflow computes maximum flows, minimum cuts and maximum bipartite matchings.

Settings may also come from '` + iniFilename + `' in the working directory, one
section per sub-command. 'print-config' shows the effective settings.`

	mustAddCmd(parser.Command, "maxflow", "Compute a maximum flow and its minimum cut", maxflowLong, maxflow)
	mustAddCmd(parser.Command, "matching", "Compute maximum bipartite matchings", matchingLong, match)
	mustAddCmd(parser.Command, "print-config", "Print the effective configuration as INI", "", &cmdPrintConfig{parser: parser, out: os.Stdout})

	return parser
}

func startup() {
	must(baseCfg.Log.apply(), "invalid logging configuration")
}

func mustAddCmd(cmd *flags.Command, name, short, long string, cfg interface{}) {
	_, err := cmd.AddCommand(name, short, long, cfg)
	must(err, "failed to add command "+name)
}

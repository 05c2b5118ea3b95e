// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// LogConfig selects the level and encoding of lvflow's own log lines.
type LogConfig struct {
	Level  string `long:"level" env:"LEVEL" default:"warn" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"Logging level"`
	Format string `long:"format" env:"FORMAT" default:"text" choice:"text" choice:"json" description:"Logging output format"`
}

// apply installs cfg on the standard logger. Engine debug entries (one per
// augmenting path) appear at debug.
func (cfg LogConfig) apply() error {
	lvl, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	log.SetLevel(lvl)

	switch cfg.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{})
	}
	return nil
}

// must exits through a fatal log entry when err is set.
func must(err error, msg string) {
	if err != nil {
		log.WithField("err", err).Fatal(msg)
	}
}

// loadIni applies the INI file at path to parser. A missing file is not an
// error; options the file names but lvflow lacks are skipped.
func loadIni(parser *flags.Parser, path string) error {
	var saved = parser.Options
	parser.Options |= flags.IgnoreUnknown
	defer func() { parser.Options = saved }()

	err := flags.NewIniParser(parser).ParseFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	return errors.Wrapf(err, "reading %s", path)
}

// exitCode maps a ParseArgs error to a process exit code. go-flags has
// already printed usage or the input error by then.
func exitCode(err error) int {
	var flagErr *flags.Error
	if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
		return 0
	}
	return 1
}

// cmdPrintConfig writes the effective configuration as INI, with defaults.
type cmdPrintConfig struct {
	parser *flags.Parser
	out    io.Writer
}

func (cmd *cmdPrintConfig) Execute([]string) error {
	flags.NewIniParser(cmd.parser).Write(cmd.out, flags.IniIncludeDefaults|flags.IniCommentDefaults)
	return nil
}

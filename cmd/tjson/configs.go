// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/creachadair/tjson/tree"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Debug   bool `cli:"name=d desc='trace the grammar to stderr'"`
	Build   bool `cli:"name=b desc='print a sample object built with constructors'"`
	Lenient bool `cli:"name=lenient desc='accept comments and trailing commas'"`
	Empty   bool `cli:"name=empty desc='accept empty objects and arrays'"`
	Color   bool `cli:"name=color desc='encode with color'"`
	Escape  bool `cli:"name=escape desc='escape strings on output'"`
	Agent   bool `cli:"name=agent desc='start a gops diagnostic agent'"`

	// Output names a file that must be writable; see tree.EmitOptions.
	Output string

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(_ *cli.Context, a string) (any, error) {
	cfg.Output = a
	return a, nil
}

// parser returns a parser configured from the flags. If trace != nil,
// grammar tracing is written to it when -d is set.
func (cfg *MainConfig) parser(trace io.Writer) tree.Parser {
	p := tree.Parser{AllowEmpty: cfg.Empty, Lenient: cfg.Lenient}
	if cfg.Debug && trace != nil {
		p.Trace = newLogger(trace, slog.LevelDebug)
	}
	return p
}

// encoder returns an encoder for output to w. Colors are used if -color is
// set, or if it is not given explicitly and w is a terminal.
func (cfg *MainConfig) encoder(w io.Writer) *tree.Encoder {
	return tree.NewEncoder(tree.EscapeStrings(cfg.Escape), tree.WithColors(cfg.colors(w)))
}

func (cfg *MainConfig) colors(w io.Writer) *tree.Colors {
	if cfg.Color {
		color.NoColor = false
		return tree.NewColors()
	}
	if optSet(cfg.Main, "color") {
		return nil
	}
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		return tree.NewColors()
	}
	return nil
}

// optSet reports whether the named option of cmd was given explicitly.
func optSet(cmd *cli.Command, name string) bool {
	if cmd == nil {
		return false
	}
	for _, opt := range cmd.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type FindConfig struct {
	*MainConfig

	Find *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	All     bool `cli:"name=a desc='print unchanged lines too'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type YAMLConfig struct {
	*MainConfig

	YAML *cli.Command
}

// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/tjson/tree"
	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func tjsonMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Agent {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "gops agent failed: %v\n", err)
		} else {
			defer agent.Close()
		}
	}
	if len(args) != 0 {
		if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
			err := sub.Run(cc, args[1:])
			if errors.Is(err, cli.ErrUsage) {
				sub.Usage(cc, err)
				os.Exit(sub.Exit(cc, err))
			}
			return err
		}
	}

	if cfg.Build {
		if err := printSample(cfg, cc.Out); err != nil {
			return err
		}
	}
	switch len(args) {
	case 0:
		return emitBuffer(cfg, cc.Out, []byte(sampleDocument))
	case 1:
		if err := tree.ParseAndEmit(args[0], tree.EmitOptions{
			Output:  cfg.Output,
			Debug:   cfg.Debug,
			Parser:  cfg.parser(nil),
			Encoder: cfg.encoder(cc.Out),
			Stdout:  cc.Out,
			Stderr:  os.Stderr,
		}); err != nil {
			return cli.ExitCodeErr(1) // already reported
		}
		return nil
	default:
		return fmt.Errorf("%w: at most one input file, got %d", cli.ErrUsage, len(args))
	}
}

// printSample writes the sample object built by buildSample to w.
func printSample(cfg *MainConfig, w io.Writer) error {
	root := buildSample()
	defer tree.Free(root)
	return writeNode(cfg.encoder(w), w, root)
}

// emitBuffer parses text and writes the resulting tree to w.
func emitBuffer(cfg *MainConfig, w io.Writer, text []byte) error {
	root, err := cfg.parser(os.Stderr).ParseBuffer(text)
	if err != nil {
		return err
	}
	defer tree.Free(root)
	return writeNode(cfg.encoder(w), w, root)
}

// writeNode writes n and a trailing newline to w.
func writeNode(enc *tree.Encoder, w io.Writer, n tree.Node) error {
	if err := enc.Encode(w, n, false); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// loadDocument parses the document in the named file. If path is "" or "-",
// the document is read from the standard input of cc.
func loadDocument(cfg *MainConfig, cc *cli.Context, path string) (tree.Node, error) {
	p := cfg.parser(os.Stderr)
	if path == "" || path == "-" {
		return p.Parse(cc.In)
	}
	return p.ParseFile(path)
}

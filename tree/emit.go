// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// EmitOptions configure ParseAndEmit.
type EmitOptions struct {
	// If Output != "", the named file must be creatable for writing. It is
	// created (or truncated) and closed again; the serialized tree is still
	// written to Stdout.
	Output string

	// Debug enables tracing of the grammar to Stderr.
	Debug bool

	// Parser configures parsing. Its Trace field is replaced when Debug is
	// set.
	Parser Parser

	// Encoder renders the tree. If nil, the output matches Serialize.
	Encoder *Encoder

	// Stdout receives the serialized tree followed by a newline. If nil,
	// os.Stdout is used.
	Stdout io.Writer

	// Stderr receives error reports and trace output. If nil, os.Stderr is
	// used.
	Stderr io.Writer
}

func (o EmitOptions) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

func (o EmitOptions) stderr() io.Writer {
	if o.Stderr == nil {
		return os.Stderr
	}
	return o.Stderr
}

// ParseAndEmit parses the file named by input, writes its serialization and
// a newline to opts.Stdout, and releases the tree. Any failure is reported
// on opts.Stderr and returned.
//
// If opts.Output is set and the file cannot be created, ParseAndEmit reports
// ErrIO without parsing the input.
func ParseAndEmit(input string, opts EmitOptions) error {
	err := parseAndEmit(input, opts)
	if err != nil {
		fmt.Fprintf(opts.stderr(), "%s: %v\n", input, err)
	}
	return err
}

func parseAndEmit(input string, opts EmitOptions) error {
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("output: %w: %w", ErrIO, err)
		}
		defer f.Close()
	}

	p := opts.Parser
	if opts.Debug {
		p.Trace = slog.New(slog.NewTextHandler(opts.stderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return a
			},
		}))
	}
	root, err := p.ParseFile(input)
	if err != nil {
		return err
	}
	defer Free(root)

	enc := opts.Encoder
	if enc == nil {
		enc = new(Encoder)
	}
	w := opts.stdout()
	if err := enc.Encode(w, root, false); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/creachadair/tjson"
	"github.com/creachadair/tjson/tree"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	var lines [2][]string
	for i, path := range args {
		root, err := loadDocument(cfg.MainConfig, cc, path)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", path, err)
		}
		lines[i] = flatten(nil, "$", root)
		tree.Free(root)
	}
	if cfg.Reverse {
		lines[0], lines[1] = lines[1], lines[0]
	}

	out := diffLines(lines[0], lines[1], cfg.All)
	differs := false
	paint := cfg.colors(cc.Out) != nil
	for _, d := range out {
		differs = differs || d.Type != diffpatch.DiffEqual
		if err := writeDiff(cc.Out, d, paint); err != nil {
			return err
		}
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// A lineDiff is a single line of diff output.
type lineDiff struct {
	Type diffpatch.Operation
	Text string
}

func (d lineDiff) String() string {
	switch d.Type {
	case diffpatch.DiffDelete:
		return "- " + d.Text
	case diffpatch.DiffInsert:
		return "+ " + d.Text
	}
	return "  " + d.Text
}

func writeDiff(w io.Writer, d lineDiff, paint bool) error {
	s := d.String()
	if paint {
		switch d.Type {
		case diffpatch.DiffDelete:
			s = color.RedString("%s", s)
		case diffpatch.DiffInsert:
			s = color.GreenString("%s", s)
		}
	}
	_, err := fmt.Fprintln(w, s)
	return err
}

// diffLines computes a line-oriented diff from a to b. Unchanged lines are
// included only if all is true.
func diffLines(a, b []string, all bool) []lineDiff {
	dmp := diffpatch.New()
	ca, cb, table := dmp.DiffLinesToChars(joinLines(a), joinLines(b))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), table)

	var out []lineDiff
	for _, d := range diffs {
		if d.Type == diffpatch.DiffEqual && !all {
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out = append(out, lineDiff{Type: d.Type, Text: strings.TrimSuffix(line, "\n")})
		}
	}
	return out
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// flatten appends to out one line for each leaf of n, giving the JSONPath of
// the leaf from the root and its value. Empty containers are leaves.
func flatten(out []string, path string, n tree.Node) []string {
	switch t := n.(type) {
	case *tree.Array:
		if t.Len() == 0 {
			return append(out, path+" = []")
		}
		for i, elt := range t.All() {
			out = flatten(out, path+"["+strconv.Itoa(i)+"]", elt)
		}
	case *tree.Object:
		if t.Len() == 0 {
			return append(out, path+" = {}")
		}
		for _, m := range t.All() {
			name, _ := m.Name()
			out = flatten(out, path+pathStep(name), m)
		}
	case *tree.Bool:
		return append(out, path+" = "+strconv.FormatBool(t.True()))
	case *tree.Var:
		v := t.Value()
		if s, ok := v.Str(); ok {
			return append(out, path+" = "+tjson.Quote(s))
		}
		return append(out, path+" = "+v.String())
	}
	return out
}

var wordRE = regexp.MustCompile(`^\w+$`)

func pathStep(name string) string {
	if wordRE.MatchString(name) {
		return "." + name
	}
	return "['" + name + "']"
}

// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/creachadair/tjson/jpath"
	"github.com/creachadair/tjson/tree"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: get requires a JSONPath and at most one file", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	expr, err := jpath.Parse(path)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	root, err := loadDocument(cfg.MainConfig, cc, argOrStdin(args[1:]))
	if err != nil {
		return err
	}
	defer tree.Free(root)

	found, err := expr.Eval(root)
	if err != nil {
		return fmt.Errorf("error querying with %s: %w", path, err)
	}
	if len(found) == 0 {
		return cli.ExitCodeErr(1)
	}
	enc := cfg.encoder(cc.Out)
	for _, n := range found {
		if err := writeNode(enc, cc.Out, n); err != nil {
			return err
		}
	}
	return nil
}

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: find requires a key and at most one file", cli.ErrUsage)
	}
	root, err := loadDocument(cfg.MainConfig, cc, argOrStdin(args[1:]))
	if err != nil {
		return err
	}
	defer tree.Free(root)

	n, err := tree.Find(root, args[0])
	if errors.Is(err, tree.ErrNotFound) {
		return cli.ExitCodeErr(1)
	} else if err != nil {
		return err
	}
	return writeNode(cfg.encoder(cc.Out), cc.Out, n)
}

// argOrStdin returns the first element of args, or "-" if args is empty.
func argOrStdin(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

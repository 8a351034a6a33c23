// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/creachadair/tjson/tree"
	"github.com/creachadair/tjson/value"
	"github.com/scott-cotton/cli"
	"github.com/tailscale/hujson"

	jsonpatch "github.com/evanphx/json-patch"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch file and at most one document", cli.ErrUsage)
	}
	ops, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	root, err := loadDocument(cfg.MainConfig, cc, argOrStdin(args[1:]))
	if err != nil {
		return err
	}
	defer tree.Free(root)

	out, err := applyPatch(root, ops)
	if err != nil {
		return fmt.Errorf("error patching with %s: %w", args[0], err)
	}
	defer tree.Free(out)
	return writeNode(cfg.encoder(cc.Out), cc.Out, out)
}

// applyPatch applies the RFC 6902 patch in ops to a copy of root, and returns
// the resulting tree. The patch may contain comments and trailing commas.
//
// The document passes through encoding/json, so the members of each object
// in the result are sorted by name, and where a name is duplicated only the
// first member survives.
func applyPatch(root tree.Node, ops []byte) (tree.Node, error) {
	std, err := hujson.Standardize(ops)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(std)
	if err != nil {
		return nil, err
	}
	doc, err := json.Marshal(tree.Interface(root))
	if err != nil {
		return nil, err
	}
	res, err := p.Apply(doc)
	if err != nil {
		return nil, err
	}
	return fromJSON(res)
}

// fromJSON converts standard JSON text into a tree.
func fromJSON(data []byte) (tree.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	v, err := fromJSONValue(v)
	if err != nil {
		return nil, err
	}
	switch v.(type) {
	case []any, map[string]any:
		return tree.ToNode(v), nil
	}
	return nil, fmt.Errorf("%w: document is not an object or array", tree.ErrInvalidInput)
}

func fromJSONValue(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: null is not supported", tree.ErrUnsupported)
	case json.Number:
		return value.ParseNumber(t.String())
	case []any:
		for i, elt := range t {
			x, err := fromJSONValue(elt)
			if err != nil {
				return nil, err
			}
			t[i] = x
		}
	case map[string]any:
		for key, elt := range t {
			x, err := fromJSONValue(elt)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", key, err)
			}
			t[key] = x
		}
	}
	return v, nil
}

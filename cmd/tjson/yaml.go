// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/creachadair/tjson/tree"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func toYAML(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		cfg.YAML.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: yaml takes at most one file", cli.ErrUsage)
	}
	root, err := loadDocument(cfg.MainConfig, cc, argOrStdin(args))
	if err != nil {
		return err
	}
	defer tree.Free(root)

	data, err := marshalYAML(root)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(data)
	return err
}

// marshalYAML renders n as YAML. Object members keep their order, including
// duplicates.
func marshalYAML(n tree.Node) ([]byte, error) {
	return yaml.Marshal(yamlValue(n))
}

func yamlValue(n tree.Node) any {
	switch t := n.(type) {
	case *tree.Array:
		out := make([]any, 0, t.Len())
		for _, elt := range t.All() {
			out = append(out, yamlValue(elt))
		}
		return out
	case *tree.Object:
		out := make(yaml.MapSlice, 0, t.Len())
		for _, m := range t.All() {
			name, _ := m.Name()
			out = append(out, yaml.MapItem{Key: name, Value: yamlValue(m)})
		}
		return out
	}
	return tree.Interface(n)
}

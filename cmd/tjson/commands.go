// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file that must be writable",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "tjson").
		WithSynopsis("tjson [opts] [file | command [opts]]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tjsonMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			FindCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			YAMLCommand(cfg))
}

const mainDescription = `tjson parses a JSON document into a tree and prints it.

With a file argument, tjson parses the file and prints the tree on a single
line. With no arguments, it parses and prints a built-in sample document.
The -b flag first prints a sample object built without parsing.

The -o file is created and closed again, but the tree is printed to stdout.`

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <jsonpath> [file]").
		WithDescription("print the nodes selected by a JSONPath expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("find").
		WithAliases("f").
		WithSynopsis("find <key> [file]").
		WithDescription("print the first node with the given name, in pre-order").
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
	cfg.Find = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff [opts] a b").
		WithDescription("compare the leaves of two documents by path").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch <patchfile> [file]").
		WithDescription("apply an RFC 6902 JSON Patch to a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func YAMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &YAMLConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("yaml").
		WithAliases("y").
		WithSynopsis("yaml [file]").
		WithDescription("print a document as YAML, keeping member order").
		WithRun(func(cc *cli.Context, args []string) error {
			return toYAML(cfg, cc, args)
		})
	cfg.YAML = cmd
	return cmd
}

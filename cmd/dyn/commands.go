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
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "p",
			Aliases:     []string{"patch"},
			Description: "RFC 6902 patch applied to every input after loading",
			Type:        cli.NamedFuncOpt(cfg.patchOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y, cbor/c (default from file extension)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y, cbor/c",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "dyn").
		WithSynopsis("dyn [opts] command [opts]").
		WithDescription("dyn looks up and checks values in json, yaml and cbor documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dynMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			KindCommand(cfg),
			KeysCommand(cfg),
			CheckCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-lenient] <path> [files]").
		WithDescription("print the value at path in each file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func KindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KindConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Kind, "kind").
		WithAliases("k").
		WithSynopsis("kind <path> [files]").
		WithDescription("print the shape of the value at path in each file").
		WithRun(func(cc *cli.Context, args []string) error {
			return kind(cfg, cc, args)
		})
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Keys, "keys").
		WithSynopsis("keys <path> [files]").
		WithDescription("print the keys of the dict at path in order").
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg, Expected: "Check"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check -e <expr> [-x name] <path> [files]").
		WithDescription("check every element of the list at path against an expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

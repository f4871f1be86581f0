package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/ij/codec"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Config: codec.DefaultConfig()}
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
			Name:        "config",
			Description: "yaml codec config file",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "z",
			Aliases:     []string{"zin"},
			Description: "input compression: none, gzip/gz, zstd/zst, lz4",
			Type:        cli.NamedFuncOpt(cfg.compressFunc(&cfg.InCompress), "(compression)"),
		},
		&cli.Opt{
			Name:        "Z",
			Aliases:     []string{"zout"},
			Description: "output compression: none, gzip/gz, zstd/zst, lz4",
			Type:        cli.NamedFuncOpt(cfg.compressFunc(&cfg.OutCompress), "(compression)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ij").
		WithSynopsis("ij [opts] command [opts]").
		WithDescription("ij reformats, queries and compares json-like documents in bounded memory.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ijMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			ExampleCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("reformat documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtFiles(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("get the value at a dotted path, such as a.b.0, from documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("diff the indented forms of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ExampleCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExampleConfig{MainConfig: mainCfg, N: 2}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Example, "example").
		WithAliases("ex").
		WithOpts(opts...).
		WithSynopsis("example [-n count]").
		WithDescription("encode records, decode them back and encode them again").
		WithRun(func(cc *cli.Context, args []string) error {
			return example(cfg, cc, args)
		})
}

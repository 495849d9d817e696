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
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "redline").
		WithSynopsis("redline [opts] command [opts]").
		WithDescription("redline coordinates structured edits against block documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return redlineMain(cfg, cc, args)
		}).
		WithSubs(
			ExtractCommand(cfg),
			ValidateCommand(cfg),
			MergeCommand(cfg),
			SplitCommand(cfg),
			DiffCommand(cfg),
			ApplyCommand(cfg),
			AmendCommand(cfg),
			ServeCommand(cfg))
}

func ExtractCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExtractConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Extract, "extract").
		WithAliases("x", "ex").
		WithSynopsis("extract [document]").
		WithDescription("extract the block IR and key mapping from a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return extract(cfg, cc, args)
		})
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Validate, "validate").
		WithAliases("v", "val").
		WithSynopsis("validate -ir <ir-file> [batch files]").
		WithDescription("validate edit batches against an IR snapshot").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return validateRun(cfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg, Strategy: "error"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge [-strategy s] [-where expr] [batch files]").
		WithDescription("merge producer edit batches into one batch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mergeRun(cfg, cc, args)
		})
}

func SplitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SplitConfig{MainConfig: mainCfg, N: 2}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Split, "split").
		WithSynopsis("split -n <producers> [-headings] <ir-file>").
		WithDescription("partition the IR's blocks into producer ranges").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return split(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-s] [-ops] a b").
		WithDescription("word diff two texts").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Apply, "apply").
		WithAliases("a", "ap").
		WithSynopsis("apply -doc <document> [opts] <batch file>").
		WithDescription("validate, order, and apply a batch to a document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return applyRun(cfg, cc, args)
		})
}

func AmendCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AmendConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Amend, "amend").
		WithSynopsis("amend [-patch file | -p patch] <batch file>").
		WithDescription("amend a batch file with an RFC 7386 merge patch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return amend(cfg, cc, args)
		})
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg, Addr: "localhost:9321"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve [-addr <addr>] [-stdio]").
		WithDescription("run the editd edit coordination server").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}

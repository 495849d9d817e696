package main

import (
	"fmt"

	"github.com/signadot/redline/worddiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	original, target := args[0], args[1]
	if !cfg.String {
		a, err := readArg(cc, original)
		if err != nil {
			return err
		}
		b, err := readArg(cc, target)
		if err != nil {
			return err
		}
		original, target = string(a), string(b)
	}
	ops := worddiff.Diff(original, target)
	if cfg.Ops {
		return encodeOut(cfg.MainConfig, cc.Out, ops)
	}
	return worddiff.Render(cc.Out, original, ops, cfg.colored(cc.Out))
}

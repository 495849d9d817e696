package main

import (
	"github.com/signadot/redline/merge"

	"github.com/scott-cotton/cli"
)

func split(cfg *SplitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Split.Parse(cc, args)
	if err != nil {
		return err
	}
	arg := "-"
	if len(args) > 0 {
		arg = args[0]
	}
	snap, err := readIR(cfg.MainConfig, cc, arg)
	if err != nil {
		return err
	}
	ranges, err := merge.SplitRanges(cfg.N, snap, cfg.Headings)
	if err != nil {
		return err
	}
	return encodeOut(cfg.MainConfig, cc.Out, ranges)
}

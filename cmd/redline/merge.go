package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/redline/edit"
	"github.com/signadot/redline/merge"
	"github.com/signadot/redline/validate"

	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func mergeRun(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	strategy, err := merge.ParseStrategy(cfg.Strategy)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	var prg *vm.Program
	if cfg.Where != "" {
		if prg, err = edit.CompileFilter(cfg.Where); err != nil {
			return fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var batches []*edit.Batch
	for _, arg := range args {
		b, err := readBatch(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		if prg != nil {
			if b, err = edit.Filter(b, prg); err != nil {
				return fmt.Errorf("error filtering %s: %w", arg, err)
			}
		}
		batches = append(batches, b)
	}
	res, err := merge.Merge(batches, strategy)
	if errors.Is(err, merge.ErrConflicts) {
		if eerr := encodeOut(cfg.MainConfig, cc.Out, res); eerr != nil {
			return eerr
		}
		return cli.ExitCodeErr(1)
	}
	if err != nil {
		return err
	}
	for _, c := range res.Conflicts {
		fmt.Fprintf(os.Stderr, "conflict on %s resolved as %s\n", c.Target, c.Resolution)
	}
	if cfg.IRFile != "" {
		// the interleaved batch can carry hazards no producer batch
		// had on its own, such as delete-then-reference
		snap, err := readIR(cfg.MainConfig, cc, cfg.IRFile)
		if err != nil {
			return err
		}
		report := validate.Structural(res.Batch, snap)
		if !report.Valid() {
			for _, issue := range report.Blocking() {
				fmt.Fprintf(os.Stderr, "%s\n", issue)
			}
			return cli.ExitCodeErr(1)
		}
	}
	d, err := edit.EncodeBatch(res.Batch, cfg.outFormat())
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}

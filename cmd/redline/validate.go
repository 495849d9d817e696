package main

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/redline/edit"
	"github.com/signadot/redline/ir"
	"github.com/signadot/redline/validate"

	"github.com/scott-cotton/cli"
)

func validateRun(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.IRFile == "" {
		return fmt.Errorf("%w: -ir is required", cli.ErrUsage)
	}
	snap, err := readIR(cfg.MainConfig, cc, cfg.IRFile)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := validate.Options{Strict: cfg.Strict, AllowShortening: cfg.AllowShortening}
	ok := true
	for _, arg := range args {
		batch, err := readBatch(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		report := validate.Batch(batch, snap, opts)
		if !report.Valid() {
			ok = false
		}
		fmt.Fprintf(cc.Out, "%s: %s\n", arg, report.Summary())
		for _, issue := range report.Issues {
			fmt.Fprintf(cc.Out, "  %s\n", issue)
		}
	}
	if !ok {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// readIR loads an IR snapshot file, accepting either extract's
// {blocks, mapping} wrapper or a bare block array.
func readIR(cfg *MainConfig, cc *cli.Context, arg string) (*ir.Snapshot, error) {
	data, err := readStructured(cfg, cc, arg)
	if err != nil {
		return nil, err
	}
	var wrapped struct {
		Blocks *ir.Snapshot `json:"blocks"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Blocks != nil {
		return wrapped.Blocks, nil
	}
	snap := &ir.Snapshot{}
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("error decoding IR %s: %w", arg, err)
	}
	return snap, nil
}

func readBatch(cfg *MainConfig, cc *cli.Context, arg string) (*edit.Batch, error) {
	data, err := readArg(cc, arg)
	if err != nil {
		return nil, err
	}
	batch, err := edit.ParseBatch(data, cfg.inFormat(arg))
	if err != nil {
		return nil, fmt.Errorf("error decoding batch %s: %w", arg, err)
	}
	return batch, nil
}

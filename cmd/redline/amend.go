package main

import (
	"fmt"

	"github.com/signadot/redline/edit"
	"github.com/signadot/redline/format"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func amend(cfg *AmendConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Amend.Parse(cc, args)
	if err != nil {
		return err
	}
	if (cfg.PatchFile == "") == (cfg.PatchString == "") {
		return fmt.Errorf("%w: exactly one of -patch or -p is required", cli.ErrUsage)
	}
	arg := "-"
	if len(args) > 0 {
		arg = args[0]
	}
	batchJSON, err := readStructured(cfg.MainConfig, cc, arg)
	if err != nil {
		return err
	}
	patchJSON := []byte(cfg.PatchString)
	if cfg.PatchFile != "" {
		if patchJSON, err = readStructured(cfg.MainConfig, cc, cfg.PatchFile); err != nil {
			return err
		}
	}
	amended, err := jsonpatch.MergePatch(batchJSON, patchJSON)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", arg, err)
	}
	// re-parse so malformed amendments fail here, not downstream
	batch, err := edit.ParseBatch(amended, format.JSONFormat)
	if err != nil {
		return fmt.Errorf("error decoding amended batch: %w", err)
	}
	d, err := edit.EncodeBatch(batch, cfg.outFormat())
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/signadot/redline/apply"
	"github.com/signadot/redline/docengine"

	"github.com/scott-cotton/cli"
)

func applyRun(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.DocFile == "" {
		return fmt.Errorf("%w: -doc is required", cli.ErrUsage)
	}
	arg := "-"
	if len(args) > 0 {
		arg = args[0]
	}
	batch, err := readBatch(cfg.MainConfig, cc, arg)
	if err != nil {
		return err
	}
	data, err := readStructured(cfg.MainConfig, cc, cfg.DocFile)
	if err != nil {
		return err
	}
	eng := docengine.NewMem()
	doc, err := eng.Load(data)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", cfg.DocFile, err)
	}
	defer eng.Destroy(doc)

	var suppress []string
	if cfg.Suppress != "" {
		suppress = strings.Split(cfg.Suppress, ",")
	}
	res, err := apply.New(eng).Run(context.Background(), doc, batch, apply.Options{
		FailFast:        cfg.FailFast,
		Strict:          cfg.Strict,
		AllowShortening: cfg.AllowShortening,
		Export:          docengine.ExportOptions{SuppressDiagnostics: suppress},
	})
	if err != nil {
		if res != nil {
			encodeOut(cfg.MainConfig, cc.Out, res)
		}
		return err
	}
	if cfg.ExportFile != "" {
		if err := os.WriteFile(cfg.ExportFile, res.Output, 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", cfg.ExportFile, err)
		}
	}
	if err := encodeOut(cfg.MainConfig, cc.Out, res); err != nil {
		return err
	}
	if !res.Success {
		return cli.ExitCodeErr(1)
	}
	return nil
}

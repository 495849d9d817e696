package main

import (
	"fmt"

	"github.com/signadot/redline/apply"
	"github.com/signadot/redline/docengine"
	"github.com/signadot/redline/ir"

	"github.com/scott-cotton/cli"
)

func extract(cfg *ExtractConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Extract.Parse(cc, args)
	if err != nil {
		return err
	}
	arg := "-"
	if len(args) > 0 {
		arg = args[0]
	}
	data, err := readStructured(cfg.MainConfig, cc, arg)
	if err != nil {
		return err
	}
	eng := docengine.NewMem()
	doc, err := eng.Load(data)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", arg, err)
	}
	defer eng.Destroy(doc)
	snap, err := apply.New(eng).Extract(doc)
	if err != nil {
		return err
	}
	out := struct {
		Blocks  *ir.Snapshot      `json:"blocks"`
		Mapping map[string]string `json:"mapping"`
	}{Blocks: snap, Mapping: snap.Mapping()}
	return encodeOut(cfg.MainConfig, cc.Out, out)
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/redline/format"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Color bool `cli:"name=color desc='force colored diff output'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// inFormat resolves the input format for one file argument: -I wins,
// then -j/-y, then the file suffix.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	return format.FromPath(path)
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Y {
		return format.YAMLFormat
	}
	return format.JSONFormat
}

// colored reports whether diff output should use color: forced by
// -color, defaulted by the output being a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// readArg reads a file argument; "-" reads the command input.
func readArg(cc *cli.Context, arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return d, nil
}

// readStructured reads a JSON or YAML file argument and returns JSON
// bytes.
func readStructured(cfg *MainConfig, cc *cli.Context, arg string) ([]byte, error) {
	d, err := readArg(cc, arg)
	if err != nil {
		return nil, err
	}
	if cfg.inFormat(arg).IsYAML() {
		if d, err = yaml.YAMLToJSON(d); err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", arg, err)
		}
	}
	return d, nil
}

// encodeOut renders v as indented JSON or YAML per the output format.
func encodeOut(cfg *MainConfig, w io.Writer, v any) error {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if cfg.outFormat().IsYAML() {
		if d, err = yaml.JSONToYAML(d); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	} else {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

type ExtractConfig struct {
	*MainConfig
	Extract *cli.Command
}

type ValidateConfig struct {
	*MainConfig
	IRFile          string `cli:"name=ir desc='IR snapshot file (from extract)'"`
	Strict          bool   `cli:"name=strict desc='promote warnings to blocking'"`
	AllowShortening bool   `cli:"name=allow-shortening desc='suppress the reduction warning'"`

	Validate *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Strategy string `cli:"name=strategy desc='conflict strategy: error, first, last, combine'"`
	Where    string `cli:"name=where desc='filter expression over edits before merging'"`
	IRFile   string `cli:"name=ir desc='IR snapshot file; structurally check the merged batch'"`

	Merge *cli.Command
}

type SplitConfig struct {
	*MainConfig
	N        int  `cli:"name=n desc='number of producers'"`
	Headings bool `cli:"name=headings desc='nudge range bounds onto headings'"`

	Split *cli.Command
}

type DiffConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='treat arguments as literal strings'"`
	Ops    bool `cli:"name=ops desc='output the operation list instead of a rendering'"`

	Diff *cli.Command
}

type ApplyConfig struct {
	*MainConfig
	DocFile         string `cli:"name=doc desc='document file'"`
	ExportFile      string `cli:"name=export desc='write the exported document here'"`
	FailFast        bool   `cli:"name=fail-fast desc='abort on any blocking validation issue'"`
	Strict          bool   `cli:"name=strict desc='promote warnings to blocking'"`
	AllowShortening bool   `cli:"name=allow-shortening desc='suppress the reduction warning'"`
	Suppress        string `cli:"name=suppress desc='comma-separated diagnostic categories to suppress on export'"`

	Apply *cli.Command
}

type AmendConfig struct {
	*MainConfig
	PatchFile   string `cli:"name=patch desc='merge patch file'"`
	PatchString string `cli:"name=p desc='merge patch as a literal string'"`

	Amend *cli.Command
}

type ServeConfig struct {
	*MainConfig
	Addr   string `cli:"name=addr desc='TCP listen address' default=localhost:9321"`
	Stdio  bool   `cli:"name=stdio desc='serve a single connection over stdin/stdout'"`
	Strict bool   `cli:"name=strict desc='promote validation warnings to blocking for all requests'"`

	Serve *cli.Command
}

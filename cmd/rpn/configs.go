package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gphxj/Caculator/calc"
	"github.com/gphxj/Caculator/encode"
	"github.com/gphxj/Caculator/opdef"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool   `cli:"name=color desc='encode with color'"`
	Config string `cli:"name=config desc='operator definitions file (yaml)'"`
	Prec   int    `cli:"name=prec desc='digits after the decimal point, -1 for shortest'"`
	None   string `cli:"name=none desc='text shown when there is no result'"`

	Main *cli.Command
}

func newMainConfig() *MainConfig {
	return &MainConfig{Prec: -1, None: "none"}
}

func (cfg *MainConfig) operations() ([]calc.Operation, error) {
	if cfg.Config == "" {
		return nil, nil
	}
	f, err := opdef.Load(cfg.Config)
	if err != nil {
		return nil, fmt.Errorf("could not load operators: %w", err)
	}
	return f.Operations()
}

func (cfg *MainConfig) newEvaluator(opts ...calc.Option) (*calc.Evaluator, error) {
	ops, err := cfg.operations()
	if err != nil {
		return nil, err
	}
	return calc.NewWith(ops, opts...)
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodePrecision(cfg.Prec),
		encode.EncodeNone(cfg.None),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type EvalConfig struct {
	*MainConfig
	Stack bool `cli:"name=s desc='print the stack before each result'"`

	Eval *cli.Command
}

type ReplConfig struct {
	*MainConfig
	Trace bool `cli:"name=trace desc='print every evaluation of the stack'"`
	Gops  bool `cli:"name=gops desc='start a gops agent'"`

	prompt string

	Repl *cli.Command
}

type OpsConfig struct {
	*MainConfig

	Ops *cli.Command
}

type ServeConfig struct {
	*MainConfig
	Addr string `cli:"name=addr desc='TCP listen address, stdio when empty'"`
	Gops bool   `cli:"name=gops desc='start a gops agent'"`

	Serve *cli.Command
}

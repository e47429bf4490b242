package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gphxj/Caculator/calc"
	"github.com/gphxj/Caculator/encode"
	"github.com/gphxj/Caculator/token"

	"github.com/google/gops/agent"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

func repl(cfg *ReplConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Repl.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
		} else {
			defer agent.Close()
		}
	}
	var in io.Reader = cc.In
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		cfg.prompt = "> "
	}
	return replLoop(cfg, cc.Out, in)
}

func (cfg *ReplConfig) evaluator(w io.Writer) (*calc.Evaluator, error) {
	var opts []calc.Option
	if cfg.Trace {
		opts = append(opts, calc.WithTrace(w))
	}
	return cfg.newEvaluator(opts...)
}

func replLoop(cfg *ReplConfig, w io.Writer, r io.Reader) error {
	e, err := cfg.evaluator(w)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(w)
	sc := bufio.NewScanner(r)
	for {
		io.WriteString(w, cfg.prompt)
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case ":q", ":quit":
			return nil
		case ":clear":
			e, err = cfg.evaluator(w)
			if err != nil {
				return err
			}
			continue
		case ":ops":
			if err := encode.EncodeOperators(e.Operations(), token.Aliases, w, opts...); err != nil {
				return err
			}
			continue
		}
		toks, err := token.Split(line)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		v, ok := token.Apply(e, toks)
		if err := encode.EncodeStack(e.Stack(), w, opts...); err != nil {
			return err
		}
		if err := encode.EncodeResult(v, ok, w, opts...); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	return nil
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gphxj/Caculator/calc"
	"github.com/gphxj/Caculator/encode"
	"github.com/gphxj/Caculator/token"

	"github.com/scott-cotton/cli"
)

func rpnEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	e, err := cfg.newEvaluator()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return evalReader(cfg, cc.Out, cc.In, e)
	}
	return evalLine(cfg, cc.Out, strings.Join(args, " "), e)
}

func evalReader(cfg *EvalConfig, w io.Writer, r io.Reader, e *calc.Evaluator) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := evalLine(cfg, w, line, e); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	return nil
}

func evalLine(cfg *EvalConfig, w io.Writer, line string, e *calc.Evaluator) error {
	toks, err := token.Split(line)
	if err != nil {
		return err
	}
	v, ok := token.Apply(e, toks)
	opts := cfg.encOpts(w)
	if cfg.Stack {
		if err := encode.EncodeStack(e.Stack(), w, opts...); err != nil {
			return err
		}
	}
	return encode.EncodeResult(v, ok, w, opts...)
}

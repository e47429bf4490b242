package main

import (
	"fmt"

	"github.com/gphxj/Caculator/encode"
	"github.com/gphxj/Caculator/token"

	"github.com/scott-cotton/cli"
)

func listOps(cfg *OpsConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Ops.Parse(cc, args)
	if err != nil {
		return err
	}
	e, err := cfg.newEvaluator()
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "available operators:\n")
	return encode.EncodeOperators(e.Operations(), token.Aliases, cc.Out, cfg.encOpts(cc.Out)...)
}

package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := newMainConfig()
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "rpn").
		WithSynopsis("rpn [opts] command [opts]").
		WithDescription("rpn is a reverse polish notation calculator.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rpnMain(cfg, cc, args)
		}).
		WithSubs(
			EvalCommand(cfg),
			ReplCommand(cfg),
			OpsCommand(cfg),
			ServeCommand(cfg))
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-s] [tokens]").
		WithDescription("evaluate tokens, or each line of stdin when none are given").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rpnEval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func ReplCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Repl, "repl").
		WithAliases("r").
		WithSynopsis("repl [-trace] [-gops]").
		WithDescription("interactive calculator session").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return repl(cfg, cc, args)
		})
}

func OpsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OpsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Ops, "ops").
		WithAliases("o").
		WithSynopsis("ops").
		WithDescription("list the available operators").
		WithRun(func(cc *cli.Context, args []string) error {
			return listOps(cfg, cc, args)
		})
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve [-addr <addr>] [-gops]").
		WithDescription("serve calculator sessions over json-rpc").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}

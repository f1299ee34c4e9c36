package main

import (
	"github.com/signadot/stackreplay/eval"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "stackreplay").
		WithSynopsis("stackreplay [opts] command [opts]").
		WithDescription("stackreplay symbolically replays stack machine traces.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return srMain(cfg, cc, args)
		}).
		WithSubs(
			RunCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg),
			LayoutCommand(cfg))
}

func RunCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, cfg.LayoutArgs.opts()...)
	opts = append(opts, &cli.Opt{
		Name:        "f",
		Aliases:     []string{"format"},
		Description: "report format: text/t, yaml/y, json/j",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
	})
	return cli.NewCommandAt(&cfg.Run, "run").
		WithAliases("r").
		WithSynopsis("run [-l layout] [-p patch]... [-f format] [trace]").
		WithDescription("replay a trace and report its constraints and stack").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg, Env: eval.Env{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, cfg.LayoutArgs.opts()...)
	opts = append(opts, &cli.Opt{
		Name:        "a",
		Description: "assign a value to a variable, may be repeated",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=val)"),
	})
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-a name=val]... [-s input] [trace]").
		WithDescription("replay a trace and evaluate its constraints on a concrete input").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func envOptTypeFunc(env eval.Env) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := env.Set(a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, cfg.LayoutArgs.opts()...)
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-U n] a b").
		WithDescription("replay two traces and diff their reports").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func LayoutCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LayoutConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Layout, "layout").
		WithAliases("l").
		WithSynopsis("layout [-l layout] [-p patch]...").
		WithDescription("print the effective stack layout").
		WithOpts(cfg.LayoutArgs.opts()...).
		WithRun(func(cc *cli.Context, args []string) error {
			return showLayout(cfg, cc, args)
		})
}

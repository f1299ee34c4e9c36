package main

import (
	"fmt"
	"io"

	"github.com/signadot/stackreplay/eval"
	"github.com/signadot/stackreplay/layout"
	"github.com/signadot/stackreplay/replay"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, err := traceArg(args)
	if err != nil {
		return err
	}
	l, err := cfg.load()
	if err != nil {
		return err
	}
	res, err := replayFile(cc, l, path)
	if err != nil {
		return err
	}
	ok, err := writeVerdicts(cc.Out, res, inputEnv(cfg.Env, l, cfg.Input))
	if err != nil {
		return err
	}
	if !ok || res.Stop != nil {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// inputEnv binds input to the seeded variables, then applies the
// explicit assignments of env over it.
func inputEnv(env eval.Env, l *layout.Layout, input string) eval.Env {
	res := eval.Env{}
	res.BindString(l.Prefix, 0, input[:min(len(input), len(l.Slots))])
	for k, v := range env {
		res[k] = v
	}
	return res
}

func writeVerdicts(w io.Writer, res *replay.Result, env eval.Env) (bool, error) {
	vs := eval.Check(res.Constraints, env)
	for i := range vs {
		if _, err := fmt.Fprintln(w, vs[i].String()); err != nil {
			return false, err
		}
	}
	if res.Stop != nil {
		if _, err := fmt.Fprintf(w, "stopped %v\n", res.Stop); err != nil {
			return false, err
		}
	}
	return eval.Holds(vs), nil
}

package main

import (
	"fmt"

	"github.com/signadot/stackreplay/encode"

	"github.com/scott-cotton/cli"
)

func run(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		cfg.Run.Usage(cc, err)
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
	opts := append(cfg.encOpts(cc.Out, cfg.Format), encode.EncodeCounts(cfg.Counts))
	if err := encode.Encode(res, cc.Out, opts...); err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}
	if res.Stop != nil {
		return cli.ExitCodeErr(1)
	}
	return nil
}

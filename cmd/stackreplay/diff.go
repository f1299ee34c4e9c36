package main

import (
	"fmt"
	"io"

	"github.com/signadot/stackreplay/libdiff"
	"github.com/signadot/stackreplay/replay"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	l, err := cfg.load()
	if err != nil {
		return err
	}
	res := make([]*replay.Result, 2)
	for i, path := range args {
		res[i], err = replayFile(cc, l, path)
		if err != nil {
			return err
		}
	}
	changed, err := writeDiff(cc.Out, res[0], res[1], cfg.Context, cfg.colors(cc.Out) != nil)
	if err != nil {
		return err
	}
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func writeDiff(w io.Writer, from, to *replay.Result, context int, color bool) (bool, error) {
	cs := libdiff.DiffReports(from, to)
	if !libdiff.Changed(cs) {
		return false, nil
	}
	out := libdiff.Format(cs, libdiff.FormatContext(context), libdiff.FormatColor(color))
	_, err := io.WriteString(w, out)
	return true, err
}

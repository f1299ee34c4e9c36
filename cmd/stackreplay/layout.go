package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func showLayout(cfg *LayoutConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Layout.Parse(cc, args)
	if err != nil {
		cfg.Layout.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: layout takes no arguments, got %v", cli.ErrUsage, args)
	}
	l, err := cfg.load()
	if err != nil {
		return err
	}
	return l.Encode(cc.Out)
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/signadot/stackreplay/layout"
	"github.com/signadot/stackreplay/replay"
	"github.com/signadot/stackreplay/token"

	"github.com/scott-cotton/cli"
)

func openTrace(cc *cli.Context, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cc.In), nil
	}
	return os.Open(path)
}

// replayFile replays the trace at path, "-" being standard input.
func replayFile(cc *cli.Context, l *layout.Layout, path string) (*replay.Result, error) {
	f, err := openTrace(cc, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, err := replayTrace(ctx, f, l)
	if err != nil {
		return nil, fmt.Errorf("error replaying %s: %w", path, err)
	}
	return res, nil
}

func replayTrace(ctx context.Context, r io.Reader, l *layout.Layout) (*replay.Result, error) {
	st, err := l.State()
	if err != nil {
		return nil, err
	}
	tr, err := token.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return replay.Run(ctx, tr, st, replay.WithLogger(theLog)), nil
}

func traceArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "-", nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: expected at most one trace, got %v", cli.ErrUsage, args)
	}
}

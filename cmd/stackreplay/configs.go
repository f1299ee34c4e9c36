package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/stackreplay/encode"
	"github.com/signadot/stackreplay/eval"
	"github.com/signadot/stackreplay/format"
	"github.com/signadot/stackreplay/layout"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='report with color'"`
	V     bool `cli:"name=v desc='log every applied opcode'"`
	Trace bool `cli:"name=trace desc='dump the replay state after every opcode'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// colors returns the report colors to use on w, nil for none.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer, f format.Format) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
	}
	if c := cfg.colors(w); c != nil && f.IsText() {
		res = append(res, encode.EncodeColors(c))
	}
	return res
}

// LayoutArgs selects the stack layout of a replay.
type LayoutArgs struct {
	Path    string
	Patches []string
}

func (la *LayoutArgs) opts() []*cli.Opt {
	return []*cli.Opt{
		&cli.Opt{
			Name:        "l",
			Aliases:     []string{"layout"},
			Description: "stack layout file, yaml or json (default built in layout)",
			Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
				la.Path = a
				return a, nil
			}, "(filepath)"),
		},
		&cli.Opt{
			Name:        "p",
			Aliases:     []string{"patch"},
			Description: "json patch applied to the layout, may be repeated",
			Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
				la.Patches = append(la.Patches, a)
				return a, nil
			}, "(filepath)"),
		},
	}
}

func (la *LayoutArgs) load() (*layout.Layout, error) {
	if la.Path == "" {
		if len(la.Patches) != 0 {
			return nil, fmt.Errorf("%w: -p requires -l", cli.ErrUsage)
		}
		return layout.Default(), nil
	}
	return layout.Load(la.Path, la.Patches...)
}

type RunConfig struct {
	*MainConfig
	LayoutArgs

	Format format.Format
	Counts bool `cli:"name=c aliases=counts desc='report test accounting'"`

	Run *cli.Command
}

func (cfg *RunConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Format = f
		return f, nil
	})
}

type CheckConfig struct {
	*MainConfig
	LayoutArgs

	Env   eval.Env
	Input string `cli:"name=s aliases=input desc='bind the bytes of a string to the seeded variables'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	LayoutArgs

	Context int `cli:"name=U desc='lines of context around changes (default all)'"`

	Diff *cli.Command
}

type LayoutConfig struct {
	*MainConfig
	LayoutArgs

	Layout *cli.Command
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/dyndecode/format"
	"github.com/signadot/dyndecode/source"
)

type MainConfig struct {
	Cons  bool `cli:"name=cons desc='load sequences as cons lists'"`
	Color bool `cli:"name=color desc='report errors in color'"`

	InFormat, OutFormat *format.Format

	Patch []byte

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// loadOpts returns the options for loading the input named path. An
// explicit -I wins over the file extension; JSON is the fallback.
func (cfg *MainConfig) loadOpts(path string) []source.Option {
	fmat := format.JSONFormat
	if f, ok := format.FromPath(path); ok {
		fmat = f
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	res := []source.Option{
		source.WithFormat(fmat),
		source.Logger(theLog),
	}
	if cfg.Cons {
		res = append(res, source.ConsLists())
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.JSONFormat
}

// errColor returns the color for error reports written to w: on with
// -color, otherwise only when w is a terminal.
func (cfg *MainConfig) errColor(w io.Writer) *color.Color {
	c := color.New(color.FgRed)
	if cfg.Color {
		c.EnableColor()
		return c
	}
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		c.EnableColor()
		return c
	}
	c.DisableColor()
	return c
}

type GetConfig struct {
	*MainConfig
	Lenient bool `cli:"name=lenient desc='treat missing keys as null'"`

	Get *cli.Command
}

type KindConfig struct {
	*MainConfig

	Kind *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Expr     string `cli:"name=e aliases=expr desc='boolean expression over value'"`
	Expected string `cli:"name=x aliases=expected desc='name of the checked shape in errors'"`

	Check *cli.Command
}

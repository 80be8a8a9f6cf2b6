package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/dyndecode/decode"
	"github.com/signadot/dyndecode/source"

	"go.uber.org/multierr"
)

// pathArgs splits off the leading path argument of a command.
func pathArgs(args []string) ([]decode.Key, []string, error) {
	if len(args) == 0 {
		return nil, nil, fmt.Errorf("%w: expected a path argument", cli.ErrUsage)
	}
	keys, err := decode.ParsePath(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return keys, args[1:], nil
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func (cfg *MainConfig) load(cc *cli.Context, path string) (any, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	v, err := source.Load(d, cfg.loadOpts(path)...)
	if err != nil {
		return nil, err
	}
	if cfg.Patch == nil {
		return v, nil
	}
	return source.Patch(v, cfg.Patch, cfg.loadOpts(path)...)
}

// eachInput calls f on the value loaded from each file, or from stdin when
// there are none. Failures are reported as they happen and do not stop
// later files; the combined error is returned.
func (cfg *MainConfig) eachInput(cc *cli.Context, files []string, f func(name string, v any) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var errs error
	for _, file := range files {
		v, err := cfg.load(cc, file)
		if err == nil {
			err = f(file, v)
		}
		if err != nil {
			err = fmt.Errorf("%s: %w", file, err)
			cfg.report(err)
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func (cfg *MainConfig) report(err error) {
	c := cfg.errColor(os.Stderr)
	for _, e := range multierr.Errors(err) {
		c.Fprintln(os.Stderr, e.Error())
	}
}

// lookup walks keys into v, leniently with Index or strictly with
// StrictIndex, in which case a missing key is an error.
func lookup(v any, keys []decode.Key, lenient bool) (any, error) {
	d := decode.At(keys, decode.Dynamic())
	if lenient {
		d = decode.Within(keys, decode.Dynamic())
	}
	return decode.Run(v, d)
}

func prefix(name string, files []string) string {
	if len(files) < 2 {
		return ""
	}
	return name + ": "
}

package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/dyndecode/decode"
	"github.com/signadot/dyndecode/refine"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: check requires -e <expr>", cli.ErrUsage)
	}
	path, files, err := pathArgs(args)
	if err != nil {
		return err
	}
	d, err := checker(path, cfg.Expr, cfg.Expected)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return cfg.eachInput(cc, files, func(name string, v any) error {
		n, errs := d.Decode(v)
		if len(errs) > 0 {
			return errs.Err()
		}
		_, err := fmt.Fprintf(cc.Out, "%s%d ok\n", prefix(name, files), n)
		return err
	})
}

// checker decodes the list at path, checking each element with src, and
// yields the list's length.
func checker(path []decode.Key, src, expected string) (decode.Decoder[int], error) {
	elem, err := refine.Expr(decode.Dynamic(), src, expected)
	if err != nil {
		return decode.Decoder[int]{}, err
	}
	list := decode.Map(decode.ListOf(elem), func(vs []any) int { return len(vs) })
	return decode.At(path, list), nil
}

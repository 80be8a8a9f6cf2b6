package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/dyndecode/dyn"
)

func kind(cfg *KindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Kind.Parse(cc, args)
	if err != nil {
		return err
	}
	keys, files, err := pathArgs(args)
	if err != nil {
		return err
	}
	return cfg.eachInput(cc, files, func(name string, v any) error {
		res, err := lookup(v, keys, false)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s%s\n", prefix(name, files), dyn.Classify(res))
		return err
	})
}

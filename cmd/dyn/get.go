package main

import (
	"github.com/scott-cotton/cli"
	"github.com/signadot/dyndecode/source"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	keys, files, err := pathArgs(args)
	if err != nil {
		return err
	}
	return cfg.eachInput(cc, files, func(_ string, v any) error {
		res, err := lookup(v, keys, cfg.Lenient)
		if err != nil {
			return err
		}
		return source.Encode(cc.Out, res, cfg.outFormat())
	})
}

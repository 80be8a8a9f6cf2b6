package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/dyndecode/decode"
	"github.com/signadot/dyndecode/dyn"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		return err
	}
	path, files, err := pathArgs(args)
	if err != nil {
		return err
	}
	return cfg.eachInput(cc, files, func(name string, v any) error {
		ks, err := dictKeys(v, path)
		if err != nil {
			return err
		}
		for _, k := range ks {
			if _, err := fmt.Fprintf(cc.Out, "%s%v\n", prefix(name, files), k); err != nil {
				return err
			}
		}
		return nil
	})
}

func dictKeys(v any, path []decode.Key) ([]any, error) {
	res, err := lookup(v, path, false)
	if err != nil {
		return nil, err
	}
	m, ok := decode.Dict(res)
	if !ok {
		return nil, decode.Errors{{
			Expected: decode.KindDict,
			Found:    dyn.Classify(res),
			Path:     pathSegments(path),
			Value:    res,
		}}
	}
	return m.Keys(), nil
}

func pathSegments(keys []decode.Key) []string {
	res := make([]string, len(keys))
	for i, k := range keys {
		res[i] = k.String()
	}
	return res
}

package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/curlyconf/curlyconf/encode"
)

func curlyFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		f, err := loadArg(arg)
		if err != nil {
			return err
		}
		opts := append(cfg.encOpts(cc.Out), encode.EncodeComments(!cfg.Strip))
		if err := encode.Encode(f.Root, cc.Out, opts...); err != nil {
			return fmt.Errorf("encoding %s: %w", arg, err)
		}
	}
	return nil
}

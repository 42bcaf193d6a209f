package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/curlyconf/curlyconf/eval"
)

func curlyCheck(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(cfg.Exprs) == 0 {
		return fmt.Errorf("%w: check requires at least one -e expression", cli.ErrUsage)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: check takes one file", cli.ErrUsage)
	}
	f, err := loadArg(args[0])
	if err != nil {
		return err
	}
	failed := 0
	for _, src := range cfg.Exprs {
		ok, err := eval.Check(f.Root, src)
		if err != nil {
			return err
		}
		if !ok {
			failed++
			fmt.Fprintf(cc.Out, "FAIL %s\n", src)
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/curlyconf/curlyconf/mergepatch"
)

func curlyApply(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		cfg.Edit.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: apply takes a patch file and a config file", cli.ErrUsage)
	}
	patchArg, arg := args[0], args[1]
	var patch []byte
	if patchArg == "-" {
		patch, err = io.ReadAll(os.Stdin)
	} else {
		patch, err = os.ReadFile(patchArg)
	}
	if err != nil {
		return fmt.Errorf("reading patch %s: %w", patchArg, err)
	}
	f, err := loadArg(arg)
	if err != nil {
		return err
	}
	if err := mergepatch.Apply(f.Root, patch); err != nil {
		return err
	}
	return finishEdit(cfg, cc, f)
}

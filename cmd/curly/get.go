package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/curlyconf/curlyconf/edit"
	"github.com/curlyconf/curlyconf/encode"
)

func curlyGet(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: get requires a path and a file", cli.ErrUsage)
	}
	path, arg := args[0], args[1]
	f, err := loadArg(arg)
	if err != nil {
		return err
	}
	block, key, ok := edit.ResolvePath(f.Root, path)
	if !ok {
		return fmt.Errorf("%w: invalid path %q", cli.ErrUsage, path)
	}
	prop, commented, isCommented := edit.FindPropertyOrCommented(block, key)
	node := prop
	if isCommented {
		node = commented
	}
	if node == nil {
		return fmt.Errorf("no setting %q in %s", path, arg)
	}
	out := encode.MustString(node, cfg.encOpts(cc.Out)...)
	_, err = io.WriteString(cc.Out, out+"\n")
	return err
}

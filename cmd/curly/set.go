package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/curlyconf/curlyconf/edit"
)

func curlySet(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		cfg.Edit.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: set requires path=value and a file", cli.ErrUsage)
	}
	pathVal, arg := args[0], args[1]
	eq := strings.IndexByte(pathVal, '=')
	if eq <= 0 {
		return fmt.Errorf("%w: expected path=value, got %q", cli.ErrUsage, pathVal)
	}
	path := strings.TrimSpace(pathVal[:eq])
	value := parseCLIValue(strings.TrimSpace(pathVal[eq+1:]))

	f, err := loadArg(arg)
	if err != nil {
		return err
	}
	block, key, ok := edit.EnsurePath(f.Root, path)
	if !ok {
		return fmt.Errorf("%w: invalid path %q", cli.ErrUsage, path)
	}
	edit.SetProperty(block, key, value)
	return finishEdit(cfg, cc, f)
}

func curlyToggle(cfg *EditConfig, cc *cli.Context, args []string, enabled bool) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		cfg.Edit.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: expected a path and a file", cli.ErrUsage)
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
	prop, commented, _ := edit.FindPropertyOrCommented(block, key)
	if prop == nil && commented == nil {
		return fmt.Errorf("no setting %q in %s", path, arg)
	}
	edit.SetPropertyEnabled(block, key, enabled, nil)
	return finishEdit(cfg, cc, f)
}

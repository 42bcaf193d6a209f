package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/curlyconf/curlyconf/mergepatch"
	"github.com/curlyconf/curlyconf/textdiff"
)

func curlyDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes two files", cli.ErrUsage)
	}
	from, err := loadArg(args[0])
	if err != nil {
		return err
	}
	to, err := loadArg(args[1])
	if err != nil {
		return err
	}
	if cfg.Patch {
		patch, err := mergepatch.Make(from.Root, to.Root)
		if err != nil {
			return fmt.Errorf("computing merge patch: %w", err)
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", patch)
		return err
	}
	diffs := textdiff.Lines(from.Text(), to.Text())
	if !textdiff.HasChanges(diffs) {
		return nil
	}
	if _, err := io.WriteString(cc.Out, textdiff.Render(diffs, cfg.useColor(cc.Out))); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

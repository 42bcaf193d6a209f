package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/curlyconf/curlyconf/encode"
	"github.com/curlyconf/curlyconf/export"
)

func curlyExport(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		cfg.Export.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: export takes one file", cli.ErrUsage)
	}
	f, err := loadArg(args[0])
	if err != nil {
		return err
	}
	if cfg.OutFormat.IsCurly() {
		opts := append(cfg.encOpts(cc.Out), encode.EncodeComments(false))
		if err := encode.Encode(f.Root, cc.Out, opts...); err != nil {
			return fmt.Errorf("exporting %s: %w", args[0], err)
		}
		return nil
	}
	var d []byte
	if cfg.OutFormat.IsJSON() {
		d, err = export.JSON(f.Root)
	} else {
		d, err = export.YAML(f.Root)
	}
	if err != nil {
		return fmt.Errorf("exporting %s: %w", args[0], err)
	}
	if cfg.OutFormat.IsJSON() {
		d = append(d, '\n')
	}
	_, err = cc.Out.Write(d)
	return err
}

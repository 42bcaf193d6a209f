package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/curlyconf/curlyconf/confio"
	"github.com/curlyconf/curlyconf/ir"
	"github.com/curlyconf/curlyconf/textdiff"
)

func curlyMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// loadArg loads a config document from a file path, or from stdin when
// the argument is "-".
func loadArg(arg string) (*confio.File, error) {
	if arg != "-" {
		return confio.Load(arg)
	}
	d, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	return confio.FromBytes("-", d)
}

// finishEdit is the common tail of every mutating command: print a
// diff when asked, then either write the file in place or print the
// result.
func finishEdit(cfg *EditConfig, cc *cli.Context, f *confio.File) error {
	if cfg.Diff {
		diffs := textdiff.Lines(f.Orig(), f.Text())
		if _, err := io.WriteString(cc.Out, textdiff.Render(diffs, cfg.useColor(cc.Out))); err != nil {
			return err
		}
		if !cfg.W {
			return nil
		}
	}
	if !cfg.W {
		_, err := io.WriteString(cc.Out, f.Text())
		return err
	}
	if f.Path == "-" {
		return fmt.Errorf("%w: cannot write stdin in place", cli.ErrUsage)
	}
	return f.Save(confio.SaveOpts{Backup: cfg.Backup})
}

// parseCLIValue turns a command-line value argument into a property
// value with the normal parse-time coercion; surrounding quotes force
// string.
func parseCLIValue(s string) ir.Value {
	if len(s) >= 2 {
		switch s[0] {
		case '"', '\'':
			if s[len(s)-1] == s[0] {
				return ir.FromString(s[1 : len(s)-1])
			}
		}
	}
	return ir.CoerceScalar(s)
}

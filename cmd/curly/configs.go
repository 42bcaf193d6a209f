package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/curlyconf/curlyconf/encode"
	"github.com/curlyconf/curlyconf/format"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// useColor decides terminal coloring: the -color flag wins, otherwise
// color is on exactly when writing to a tty.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type FmtConfig struct {
	*MainConfig
	Strip bool `cli:"name=strip desc='drop comments and disabled settings'"`

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig
	Where string

	List *cli.Command
}

func (cfg *ListConfig) whereOpt(cc *cli.Context, a string) (any, error) {
	cfg.Where = a
	return a, nil
}

// EditConfig is shared by the commands that mutate a file: set, enable,
// disable and apply.
type EditConfig struct {
	*MainConfig
	W      bool `cli:"name=w desc='write the file in place'"`
	Diff   bool `cli:"name=diff desc='print a line diff of the edit'"`
	Backup bool `cli:"name=backup desc='keep a timestamped backup when writing'"`

	Edit *cli.Command
}

type ExportConfig struct {
	*MainConfig
	OutFormat format.Format

	Export *cli.Command
}

func (cfg *ExportConfig) fmtOpt(_ *cli.Context, v string) (any, error) {
	f, err := format.ParseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.OutFormat = f
	return f, nil
}

type DiffConfig struct {
	*MainConfig
	Patch bool `cli:"name=patch desc='emit a merge patch instead of a line diff'"`

	Diff *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Exprs []string

	Check *cli.Command
}

func (cfg *CheckConfig) exprOpt(cc *cli.Context, a string) (any, error) {
	cfg.Exprs = append(cfg.Exprs, a)
	return a, nil
}

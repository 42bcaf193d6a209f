package main

import (
	"github.com/scott-cotton/cli"

	"github.com/curlyconf/curlyconf/format"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "curly").
		WithSynopsis("curly [opts] command [opts]").
		WithDescription("curly is a tool for surgically editing brace-delimited config files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return curlyMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			GetCommand(cfg),
			ListCommand(cfg),
			SetCommand(cfg),
			EnableCommand(cfg),
			DisableCommand(cfg),
			ExportCommand(cfg),
			DiffCommand(cfg),
			ApplyCommand(cfg),
			CheckCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [-strip] [files]").
		WithDescription("Reformat config files with normalized indentation.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return curlyFmt(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get path file").
		WithDescription("Print one setting, active or disabled.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return curlyGet(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "where",
		Description: "filter properties with an expression over key, value, path, active",
		Type:        cli.NamedFuncOpt(cfg.whereOpt, "(expr)"),
	})
	cmd := cli.NewCommand("list").
		WithAliases("ls", "l").
		WithSynopsis("list [-where expr] [blockpath] file").
		WithDescription("List settings, optionally under one block, optionally filtered.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return curlyList(cfg, cc, args)
		})
	cfg.List = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set [-w] [-diff] [-backup] path=value file").
		WithDescription("Set a property's value, enabling or inserting it as needed.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return curlySet(cfg, cc, args)
		})
	cfg.Edit = cmd
	return cmd
}

func EnableCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("enable").
		WithAliases("en").
		WithSynopsis("enable [-w] [-diff] [-backup] path file").
		WithDescription("Re-activate a commented-out setting in place, keeping its remembered value.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return curlyToggle(cfg, cc, args, true)
		})
	cfg.Edit = cmd
	return cmd
}

func DisableCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("disable").
		WithAliases("dis").
		WithSynopsis("disable [-w] [-diff] [-backup] path file").
		WithDescription("Comment a setting out in place, preserving its value and position.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return curlyToggle(cfg, cc, args, false)
		})
	cfg.Edit = cmd
	return cmd
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg, OutFormat: format.YAMLFormat}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "f",
		Description: "output format, yaml or json (default yaml)",
		Type:        cli.NamedFuncOpt(cfg.fmtOpt, "(format)"),
	})
	cmd := cli.NewCommand("export").
		WithAliases("x").
		WithSynopsis("export [-f format] file").
		WithDescription("Print the active settings as a YAML (or JSON) snapshot.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return curlyExport(cfg, cc, args)
		})
	cfg.Export = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff [-patch] file1 file2").
		WithDescription("Show a line diff between two configs, or the merge patch from one to the other.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return curlyDiff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("apply").
		WithAliases("a").
		WithSynopsis("apply [-w] [-diff] [-backup] patch.json file").
		WithDescription("Apply a merge patch through the editing API, preserving untouched lines.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return curlyApply(cfg, cc, args)
		})
	cfg.Edit = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "e",
		Description: "predicate over the config's settings; repeatable",
		Type:        cli.NamedFuncOpt(cfg.exprOpt, "(expr)"),
	})
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check -e expr [-e expr2 ...] file").
		WithDescription("Evaluate predicates against a config; nonzero exit when one fails.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return curlyCheck(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

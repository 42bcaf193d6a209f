package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/curlyconf/curlyconf/edit"
	"github.com/curlyconf/curlyconf/encode"
	"github.com/curlyconf/curlyconf/eval"
	"github.com/curlyconf/curlyconf/ir"
)

func curlyList(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var path, arg string
	switch len(args) {
	case 1:
		arg = args[0]
	case 2:
		path, arg = args[0], args[1]
	default:
		return fmt.Errorf("%w: list takes an optional block path and a file", cli.ErrUsage)
	}
	f, err := loadArg(arg)
	if err != nil {
		return err
	}
	start := f.Root
	if path != "" {
		for _, seg := range splitBlocks(path) {
			start = edit.FindBlockIn(start, seg)
			if start == nil {
				return fmt.Errorf("no block %q in %s", path, arg)
			}
		}
	}
	return listProps(cfg, cc.Out, f.Root, start, path)
}

func listProps(cfg *ListConfig, w io.Writer, root, node *ir.Node, prefix string) error {
	for _, c := range node.Children {
		switch c.Type {
		case ir.BlockType:
			p := c.Name
			if prefix != "" {
				p = prefix + "." + c.Name
			}
			if err := listProps(cfg, w, root, c, p); err != nil {
				return err
			}
		case ir.PropertyType, ir.CommentedPropertyType:
			p := c.Key
			if prefix != "" {
				p = prefix + "." + c.Key
			}
			if cfg.Where != "" {
				ok, err := eval.MatchProperty(root, c, p, cfg.Where)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
			}
			line := encode.MustString(c, cfg.encOpts(w)...)
			if _, err := fmt.Fprintf(w, "%s: %s\n", p, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func splitBlocks(path string) []string {
	return strings.Split(path, ".")
}

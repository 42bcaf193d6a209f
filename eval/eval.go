// Package eval runs caller-side checks over config trees. The core
// parser performs no semantic validation; this layer lets a caller
// express rules like `input.sensitivity >= 0 && input.sensitivity <= 1`
// as expr-lang predicates over the config's live settings.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/curlyconf/curlyconf/debug"
	"github.com/curlyconf/curlyconf/edit"
	"github.com/curlyconf/curlyconf/export"
	"github.com/curlyconf/curlyconf/ir"
)

// Env builds the expression environment for a config: active settings
// as nested maps (so `input.touchpad.tap` reads naturally), plus
// lookup helpers that also see disabled settings.
func Env(cfg *ir.Node) map[string]any {
	return export.ToMap(cfg)
}

func exprOpts(cfg *ir.Node, env map[string]any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.Function("get", func(params ...any) (any, error) {
			path := params[0].(string)
			block, key, ok := edit.ResolvePath(cfg, path)
			if !ok {
				return nil, nil
			}
			prop, commented, _ := edit.FindPropertyOrCommented(block, key)
			switch {
			case prop != nil:
				return prop.Value.Scalar(), nil
			case commented != nil:
				return commented.Value.Scalar(), nil
			}
			return nil, nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			path := params[0].(string)
			block, key, ok := edit.ResolvePath(cfg, path)
			if !ok {
				return false, nil
			}
			prop, commented, _ := edit.FindPropertyOrCommented(block, key)
			return prop != nil || commented != nil, nil
		},
			new(func(string) bool)),
		expr.Function("enabled", func(params ...any) (any, error) {
			path := params[0].(string)
			block, key, ok := edit.ResolvePath(cfg, path)
			if !ok {
				return false, nil
			}
			return edit.FindProperty(block, key) != nil, nil
		},
			new(func(string) bool)),
	}
}

// Check compiles and runs a boolean predicate against cfg.
func Check(cfg *ir.Node, src string) (bool, error) {
	env := Env(cfg)
	opts := append(exprOpts(cfg, env), expr.AsBool())
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return false, fmt.Errorf("compiling %q: %w", src, err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", src, err)
	}
	res, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("evaluating %q: not a boolean: %v", src, out)
	}
	if debug.Eval() {
		debug.Logf("eval: %q = %v\n", src, res)
	}
	return res, nil
}

// MatchProperty runs a predicate against one property, with `key`,
// `value`, `path` and `active` bound for that property on top of the
// config environment.
func MatchProperty(cfg, prop *ir.Node, path, src string) (bool, error) {
	if !prop.IsProperty() {
		return false, nil
	}
	env := Env(cfg)
	env["key"] = prop.Key
	env["value"] = prop.Value.Scalar()
	env["path"] = path
	env["active"] = prop.Type == ir.PropertyType
	opts := append(exprOpts(cfg, env), expr.AsBool())
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return false, fmt.Errorf("compiling %q: %w", src, err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", src, err)
	}
	res, _ := out.(bool)
	return res, nil
}

// Package debug holds env-var gated debug switches for the curlyconf
// packages. Set CURLY_DEBUG_EDIT=1 (etc.) to trace.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Edit  bool
	Patch bool
	Eval  bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Edit = boolEnv("CURLY_DEBUG_EDIT")
	d.Patch = boolEnv("CURLY_DEBUG_PATCH")
	d.Eval = boolEnv("CURLY_DEBUG_EVAL")
	d.LSP = boolEnv("CURLY_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Edit() bool {
	return d.Edit
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
func LSP() bool {
	return d.LSP
}

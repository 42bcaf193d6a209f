// Command curly reads, queries, edits, and rewrites brace-delimited
// config files without disturbing the parts it was not asked to touch.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

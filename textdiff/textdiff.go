// Package textdiff renders line diffs between two versions of a config
// document, for previewing what a mutation will write before it is
// persisted.
package textdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines diffs a and b line by line.
func Lines(a, b string) []diffpatch.Diff {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// HasChanges reports whether the diff contains any insert or delete.
func HasChanges(diffs []diffpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

// Render writes the diff in a unified-ish form, one prefixed line per
// input line. With colored on, inserts are green and deletes red.
func Render(diffs []diffpatch.Diff, colored bool) string {
	var b strings.Builder
	for _, d := range diffs {
		prefix, paint := "  ", fmt.Sprintf
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
			if colored {
				paint = color.GreenString
			}
		case diffpatch.DiffDelete:
			prefix = "- "
			if colored {
				paint = color.RedString
			}
		}
		for _, line := range splitKeepingOrder(d.Text) {
			b.WriteString(paint("%s", prefix+line))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func splitKeepingOrder(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Package mergepatch computes and applies RFC 7386 merge patches
// between config documents. A patch is computed over the exported JSON
// snapshots of two trees; applying one goes through the edit API only,
// so comments, order and formatting of untouched lines survive.
package mergepatch

import (
	"encoding/json"
	"fmt"
	"sort"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/curlyconf/curlyconf/debug"
	"github.com/curlyconf/curlyconf/edit"
	"github.com/curlyconf/curlyconf/export"
	"github.com/curlyconf/curlyconf/ir"
)

// Make returns the merge patch that turns from's active settings into
// to's.
func Make(from, to *ir.Node) ([]byte, error) {
	a, err := json.Marshal(export.ToMap(from))
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(export.ToMap(to))
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a, b)
}

// Apply walks the decoded patch and applies it to cfg in place: nested
// objects ensure blocks, scalars set properties, and JSON null disables
// a setting (its value stays remembered as a commented property).
func Apply(cfg *ir.Node, patch []byte) error {
	var m map[string]any
	if err := json.Unmarshal(patch, &m); err != nil {
		return fmt.Errorf("decoding merge patch: %w", err)
	}
	applyMap(cfg, m)
	return nil
}

func applyMap(block *ir.Node, m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		switch v := m[key].(type) {
		case map[string]any:
			applyMap(edit.EnsureBlock(block, key), v)
		case nil:
			if debug.Patch() {
				debug.Logf("patch: disable %q\n", key)
			}
			edit.SetPropertyEnabled(block, key, false, nil)
		default:
			if debug.Patch() {
				debug.Logf("patch: set %q = %v\n", key, v)
			}
			val := ir.FromAny(v)
			edit.SetPropertyEnabled(block, key, true, &val)
		}
	}
}

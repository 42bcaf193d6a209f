// Package export converts config trees into plain nested values and
// emits them as YAML or JSON. The export is the live view of the
// config: commented-out properties and comments do not appear, and when
// a key occurs more than once in a block the last active occurrence
// wins. Exports are snapshots; they do not round-trip back to text.
package export

import (
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/curlyconf/curlyconf/ir"
)

// ToMap flattens the active settings of node (a config root or a
// block) into nested maps of plain scalars. Repeated blocks with one
// name merge into a single map.
func ToMap(node *ir.Node) map[string]any {
	m := map[string]any{}
	for _, c := range node.Children {
		switch c.Type {
		case ir.PropertyType:
			m[c.Key] = c.Value.Scalar()
		case ir.BlockType:
			child := ToMap(c)
			if prev, ok := m[c.Name].(map[string]any); ok {
				for k, v := range child {
					prev[k] = v
				}
				continue
			}
			m[c.Name] = child
		}
	}
	return m
}

func YAML(node *ir.Node) ([]byte, error) {
	return yaml.Marshal(ToMap(node))
}

func JSON(node *ir.Node) ([]byte, error) {
	return json.MarshalIndent(ToMap(node), "", "  ")
}

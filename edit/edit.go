// Package edit provides structural lookups and targeted in-place
// mutations over config trees. Every enable/disable transition rewrites
// the node at its existing index among its siblings; nothing is ever
// removed and reappended, so an edit to one setting can never reorder
// the rest of the file.
package edit

import (
	"strings"

	"github.com/curlyconf/curlyconf/debug"
	"github.com/curlyconf/curlyconf/ir"
)

// FindBlock returns the first top-level block of root with the given
// name, or nil.
func FindBlock(root *ir.Node, name string) *ir.Node {
	return FindBlockIn(root, name)
}

// FindBlockIn returns the first direct child block of parent with the
// given name, or nil. It works on the root and on nested blocks alike.
func FindBlockIn(parent *ir.Node, name string) *ir.Node {
	if parent == nil {
		return nil
	}
	for _, c := range parent.Children {
		if c.Type == ir.BlockType && c.Name == name {
			return c
		}
	}
	return nil
}

// EnsureBlock returns the first child block of parent with the given
// name, creating and appending an empty one if absent.
func EnsureBlock(parent *ir.Node, name string) *ir.Node {
	if blk := FindBlockIn(parent, name); blk != nil {
		return blk
	}
	blk := ir.NewBlock(name)
	parent.Append(blk)
	if debug.Edit() {
		debug.Logf("edit: created block %q\n", name)
	}
	return blk
}

// FindProperty returns the first active property child of block with
// the given key, or nil.
func FindProperty(block *ir.Node, key string) *ir.Node {
	return findKind(block, key, ir.PropertyType)
}

// FindCommentedProperty returns the first commented-out property child
// of block with the given key, or nil.
func FindCommentedProperty(block *ir.Node, key string) *ir.Node {
	return findKind(block, key, ir.CommentedPropertyType)
}

func findKind(block *ir.Node, key string, typ ir.Type) *ir.Node {
	if block == nil {
		return nil
	}
	for _, c := range block.Children {
		if c.Type == typ && c.Key == key {
			return c
		}
	}
	return nil
}

// FindPropertyOrCommented looks a key up in both states. The commented
// match is authoritative only when it exists and no active match does:
// when both are present the active property always wins and isCommented
// is false.
func FindPropertyOrCommented(block *ir.Node, key string) (prop, commented *ir.Node, isCommented bool) {
	prop = FindProperty(block, key)
	commented = FindCommentedProperty(block, key)
	return prop, commented, commented != nil && prop == nil
}

// SetPropertyEnabled is the central mutation, a small state transition
// over the (active, commented) pair for key:
//
//	commented only, enabling:  convert in place, given value or the
//	                           remembered one
//	no match, enabling:        append a new property (value required)
//	active, enabling:          update the value in place if given
//	active, disabling:         convert to a commented property in place
//	otherwise, disabling:      no-op
//
// Mutations never fail; they act or they are a no-op.
func SetPropertyEnabled(block *ir.Node, key string, enabled bool, value *ir.Value) {
	prop, commented, _ := FindPropertyOrCommented(block, key)
	if !enabled {
		if prop != nil {
			prop.Type = ir.CommentedPropertyType
			if debug.Edit() {
				debug.Logf("edit: disabled %q in place\n", key)
			}
		}
		return
	}
	switch {
	case prop != nil:
		if value != nil {
			prop.Value = *value
		}
	case commented != nil:
		commented.Type = ir.PropertyType
		if value != nil {
			commented.Value = *value
		}
		if debug.Edit() {
			debug.Logf("edit: re-enabled %q in place\n", key)
		}
	case value != nil:
		block.Append(ir.NewProperty(key, *value))
		if debug.Edit() {
			debug.Logf("edit: appended property %q\n", key)
		}
	}
}

// SetProperty enables key with the given value, inserting it if absent.
func SetProperty(block *ir.Node, key string, value ir.Value) {
	SetPropertyEnabled(block, key, true, &value)
}

// ResolvePath walks a dotted path like "input.touchpad.natural_scroll"
// from root. Descent is greedy: each leading segment that names an
// existing child block is entered; as soon as one does not, the
// remaining segments join back into the property key, so dotted keys
// such as "col.active" resolve without quoting. It returns the
// innermost block reached and the key, with ok false only for an empty
// path.
func ResolvePath(root *ir.Node, path string) (block *ir.Node, key string, ok bool) {
	if path == "" {
		return nil, "", false
	}
	segs := strings.Split(path, ".")
	block = root
	for len(segs) > 1 {
		next := FindBlockIn(block, segs[0])
		if next == nil {
			break
		}
		block = next
		segs = segs[1:]
	}
	return block, strings.Join(segs, "."), true
}

// EnsurePath is ResolvePath with block creation. After the greedy
// descent, a remainder that already matches a property key (in either
// state) is left whole; otherwise all but its last segment become
// newly created blocks.
func EnsurePath(root *ir.Node, path string) (block *ir.Node, key string, ok bool) {
	block, key, ok = ResolvePath(root, path)
	if !ok {
		return nil, "", false
	}
	if !strings.Contains(key, ".") {
		return block, key, true
	}
	if p, c, _ := FindPropertyOrCommented(block, key); p != nil || c != nil {
		return block, key, true
	}
	segs := strings.Split(key, ".")
	for _, seg := range segs[:len(segs)-1] {
		block = EnsureBlock(block, seg)
	}
	return block, segs[len(segs)-1], true
}

package edit

import (
	"testing"

	"github.com/curlyconf/curlyconf/encode"
	"github.com/curlyconf/curlyconf/ir"
	"github.com/curlyconf/curlyconf/parse"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	root, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestFindBlock(t *testing.T) {
	root := mustParse(t, "input {\n}\ngeneral {\n}\n")
	if blk := FindBlock(root, "general"); blk == nil || blk.Name != "general" {
		t.Fatalf("got %v", blk)
	}
	if blk := FindBlock(root, "missing"); blk != nil {
		t.Fatalf("got %v, want nil", blk)
	}
}

func TestEnsureBlock(t *testing.T) {
	root := mustParse(t, "a = 1\n")
	blk := EnsureBlock(root, "general")
	if blk == nil || blk.Line != ir.LineSynthesized {
		t.Fatalf("created block: %+v", blk)
	}
	if got := EnsureBlock(root, "general"); got != blk {
		t.Fatal("second EnsureBlock created a duplicate")
	}
	if len(root.Children) != 2 || root.Children[1] != blk {
		t.Fatal("block not appended at end")
	}
}

func TestActiveWins(t *testing.T) {
	root := mustParse(t, "blk {\n  # rate = 20\n  rate = 40\n}\n")
	blk := FindBlock(root, "blk")
	prop, commented, isCommented := FindPropertyOrCommented(blk, "rate")
	if prop == nil || commented == nil {
		t.Fatal("expected both matches")
	}
	if isCommented {
		t.Fatal("isCommented = true with an active match present")
	}
	if prop.Value.Literal() != "40" {
		t.Fatalf("active value %q", prop.Value.Literal())
	}
}

func TestFindPropertyOrCommented(t *testing.T) {
	root := mustParse(t, "blk {\n  # rate = 20\n  size = 5\n}\n")
	blk := FindBlock(root, "blk")

	_, commented, isCommented := FindPropertyOrCommented(blk, "rate")
	if commented == nil || !isCommented {
		t.Fatal("commented-only key should report isCommented")
	}
	if commented.Value.Literal() != "20" {
		t.Fatalf("remembered value %q", commented.Value.Literal())
	}

	prop, _, isCommented := FindPropertyOrCommented(blk, "size")
	if prop == nil || isCommented {
		t.Fatal("active-only key misreported")
	}

	prop, commented, _ = FindPropertyOrCommented(blk, "nope")
	if prop != nil || commented != nil {
		t.Fatal("missing key found something")
	}
}

func TestSetPropertyEnabledTransitions(t *testing.T) {
	v := ir.FromNumber("7")

	// commented match, enabling without a value: reactivates with the
	// remembered value, same index
	root := mustParse(t, "blk {\n  a = 1\n  # rate = 40\n  b = 2\n}\n")
	blk := FindBlock(root, "blk")
	SetPropertyEnabled(blk, "rate", true, nil)
	node := blk.Children[1]
	if node.Type != ir.PropertyType || node.Key != "rate" || node.Value.Literal() != "40" {
		t.Fatalf("got %s %s=%s at index 1", node.Type, node.Key, node.Value.Literal())
	}

	// commented match, enabling with a value: converts and overwrites
	root = mustParse(t, "blk {\n  # rate = 40\n}\n")
	blk = FindBlock(root, "blk")
	SetPropertyEnabled(blk, "rate", true, &v)
	if got := blk.Children[0]; got.Type != ir.PropertyType || got.Value.Literal() != "7" {
		t.Fatalf("got %s %s", got.Type, got.Value.Literal())
	}

	// no match, enabling with a value: appends
	root = mustParse(t, "blk {\n  a = 1\n}\n")
	blk = FindBlock(root, "blk")
	SetPropertyEnabled(blk, "rate", true, &v)
	if len(blk.Children) != 2 {
		t.Fatalf("got %d children", len(blk.Children))
	}
	last := blk.Children[1]
	if last.Key != "rate" || last.Line != ir.LineSynthesized {
		t.Fatalf("appended %q line %d", last.Key, last.Line)
	}

	// no match, enabling without a value: no-op
	root = mustParse(t, "blk {\n  a = 1\n}\n")
	blk = FindBlock(root, "blk")
	SetPropertyEnabled(blk, "rate", true, nil)
	if len(blk.Children) != 1 {
		t.Fatal("no-op case mutated the block")
	}

	// active match, enabling with a value: updates in place
	root = mustParse(t, "blk {\n  rate = 40\n  b = 2\n}\n")
	blk = FindBlock(root, "blk")
	SetPropertyEnabled(blk, "rate", true, &v)
	if got := blk.Children[0]; got.Value.Literal() != "7" || got.Type != ir.PropertyType {
		t.Fatalf("got %s %s", got.Type, got.Value.Literal())
	}

	// active match, disabling: converts in place
	SetPropertyEnabled(blk, "rate", false, nil)
	if got := blk.Children[0]; got.Type != ir.CommentedPropertyType || got.Value.Literal() != "7" {
		t.Fatalf("got %s %s", got.Type, got.Value.Literal())
	}

	// commented-only or missing, disabling: no-op
	before := len(blk.Children)
	SetPropertyEnabled(blk, "rate", false, nil)
	SetPropertyEnabled(blk, "missing", false, nil)
	if len(blk.Children) != before || blk.Children[0].Type != ir.CommentedPropertyType {
		t.Fatal("disable no-op case mutated the block")
	}
}

func TestToggleKeepsIndex(t *testing.T) {
	root := mustParse(t, "blk {\n  a = 1\n  b = 2\n  c = 3\n}\n")
	blk := FindBlock(root, "blk")
	SetPropertyEnabled(blk, "b", false, nil)
	SetPropertyEnabled(blk, "b", true, nil)
	keys := []string{"a", "b", "c"}
	for i, k := range keys {
		if blk.Children[i].Key != k {
			t.Fatalf("index %d holds %q, want %q", i, blk.Children[i].Key, k)
		}
	}
}

func TestReenableSerializes(t *testing.T) {
	in := "input {\n  sensitivity = 0.5\n  # repeat_rate = 40\n}\n"
	root := mustParse(t, in)
	blk := FindBlock(root, "input")
	SetPropertyEnabled(blk, "repeat_rate", true, nil)
	want := "input {\n  sensitivity = 0.5\n  repeat_rate = 40\n}\n"
	if got := encode.MustString(root); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDisableMultilineValue(t *testing.T) {
	root := mustParse(t, "blk {\n  motd = \"line one\nline two\"\n  b = 2\n}\n")
	blk := FindBlock(root, "blk")
	SetPropertyEnabled(blk, "motd", false, nil)

	out := encode.MustString(root)
	again, err := parse.Parse([]byte(out))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if !ir.Equal(root, again) {
		t.Fatalf("disabled multi-line value does not survive a round trip:\n%s", out)
	}
	prop := FindCommentedProperty(FindBlock(again, "blk"), "motd")
	if prop == nil || prop.Value.Literal() != "line one\nline two" {
		t.Fatalf("remembered value %+v", prop)
	}
}

func TestResolvePath(t *testing.T) {
	root := mustParse(t, "input {\n  touchpad {\n    natural_scroll = true\n  }\n}\ngeneral {\n  col.active = rgb:aa\n}\n")

	blk, key, ok := ResolvePath(root, "input.touchpad.natural_scroll")
	if !ok || blk.Name != "touchpad" || key != "natural_scroll" {
		t.Fatalf("got %v %q %v", blk, key, ok)
	}

	// dotted key: descent stops where blocks end
	blk, key, ok = ResolvePath(root, "general.col.active")
	if !ok || blk.Name != "general" || key != "col.active" {
		t.Fatalf("got %v %q %v", blk, key, ok)
	}

	if _, _, ok = ResolvePath(root, ""); ok {
		t.Fatal("empty path resolved")
	}
}

func TestEnsurePath(t *testing.T) {
	root := mustParse(t, "general {\n  col.active = rgb:aa\n}\n")

	// existing dotted property key is left whole
	blk, key, _ := EnsurePath(root, "general.col.active")
	if blk.Name != "general" || key != "col.active" {
		t.Fatalf("got %q %q", blk.Name, key)
	}

	// unknown intermediate segments become blocks
	blk, key, _ = EnsurePath(root, "input.touchpad.tap")
	if blk.Name != "touchpad" || key != "tap" {
		t.Fatalf("got %q %q", blk.Name, key)
	}
	if FindBlock(root, "input") == nil {
		t.Fatal("input block not created")
	}
}

package parse

import (
	"errors"
	"testing"

	"github.com/curlyconf/curlyconf/ir"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: ``},
		{in: `a = 1`},
		{in: `a = true`},
		{in: `a = hello`},
		{in: `a = "hello world"`},
		{in: "a = 1\nb = 2\n"},
		{in: "# just a comment\n"},
		{in: "# disabled = 40\n"},
		{in: "blk {\n}\n"},
		{in: "blk {\n  a = 1\n}\n"},
		{in: "outer {\n  inner {\n    deepest {\n      a = 1\n    }\n  }\n}\n"},
		{in: "a = 1 # trailing\n"},
		{in: "}\n"},          // stray close brace is skipped
		{in: "= 5\n"},        // non-starter token is skipped
		{in: "a = $mod+X\n"}, // catch-all value
		{in: "a =\n"},        // missing value degrades to empty string
	}
	for _, pt := range pts {
		_, err := Parse([]byte(pt.in))
		if !errors.Is(err, pt.e) {
			t.Errorf("Parse(%q): err %v, want %v", pt.in, err, pt.e)
		}
	}
}

func TestParseFatal(t *testing.T) {
	pts := []parseTest{
		{in: "a\n", e: ErrMissingEquals},
		{in: "a b\n", e: ErrMissingEquals},
		{in: "blk {\n  a = 1\n", e: ErrUnclosedBlock},
		{in: "outer {\n  inner {\n}\n", e: ErrUnclosedBlock},
	}
	for _, pt := range pts {
		_, err := Parse([]byte(pt.in))
		if !errors.Is(err, pt.e) {
			t.Errorf("Parse(%q): err %v, want %v", pt.in, err, pt.e)
			continue
		}
		var pe *ParseErr
		if !errors.As(err, &pe) {
			t.Errorf("Parse(%q): error is not a *ParseErr", pt.in)
			continue
		}
		if pe.Tok.Pos.Line == 0 {
			t.Errorf("Parse(%q): error carries no position", pt.in)
		}
	}
}

func TestParseBlock(t *testing.T) {
	root, err := Parse([]byte("touchpad {\n  natural_scroll = true\n}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("got %d top-level nodes, want 1", len(root.Children))
	}
	blk := root.Children[0]
	if blk.Type != ir.BlockType || blk.Name != "touchpad" {
		t.Fatalf("got %s %q", blk.Type, blk.Name)
	}
	if len(blk.Children) != 1 {
		t.Fatalf("block has %d children, want 1", len(blk.Children))
	}
	prop := blk.Children[0]
	if prop.Type != ir.PropertyType || prop.Key != "natural_scroll" {
		t.Fatalf("got %s %q", prop.Type, prop.Key)
	}
	if prop.Value.Kind != ir.BoolKind || !prop.Value.Bool {
		t.Fatalf("value = %+v, want boolean true", prop.Value)
	}
}

func TestParseCommentedProperty(t *testing.T) {
	cases := []struct {
		in      string
		key     string
		literal string
		inline  string
	}{
		{"# repeat_rate = 40", "repeat_rate", "40", ""},
		{"#repeat_rate=40", "repeat_rate", "40", ""},
		{"# accel = -0.2 # feels slow", "accel", "-0.2", "feels slow"},
		{"# name = \"spaced out\"", "name", "spaced out", ""},
	}
	for _, c := range cases {
		root, err := Parse([]byte(c.in + "\n"))
		if err != nil {
			t.Fatal(err)
		}
		node := root.Children[0]
		if node.Type != ir.CommentedPropertyType {
			t.Errorf("%q: got %s, want CommentedProperty", c.in, node.Type)
			continue
		}
		if node.Key != c.key || node.Value.Literal() != c.literal || node.Comment != c.inline {
			t.Errorf("%q: got key=%q value=%q inline=%q", c.in, node.Key, node.Value.Literal(), node.Comment)
		}
	}
}

func TestParseCommentDegrades(t *testing.T) {
	// '='-bearing comments that do not split into exactly key and
	// value stay plain comments
	cases := []string{
		"# set it with a = sign somewhere",
		"# = 40",
		"# repeat_rate =",
		"# see {docs} = here",
	}
	for _, in := range cases {
		root, err := Parse([]byte(in + "\n"))
		if err != nil {
			t.Fatal(err)
		}
		if got := root.Children[0].Type; got != ir.CommentType {
			t.Errorf("%q: got %s, want Comment", in, got)
		}
	}
}

func TestParseLines(t *testing.T) {
	root, err := Parse([]byte("a = 1\n\nblk {\n  b = 2\n}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := root.Children[0].Line; got != 1 {
		t.Errorf("a on line %d, want 1", got)
	}
	blk := root.Children[1]
	if blk.Line != 3 {
		t.Errorf("blk on line %d, want 3", blk.Line)
	}
	if got := blk.Children[0].Line; got != 4 {
		t.Errorf("b on line %d, want 4", got)
	}
}

func TestParseOrderPreserved(t *testing.T) {
	root, err := Parse([]byte("# lead\na = 1\n# mid = 2\nb = 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	wantTypes := []ir.Type{ir.CommentType, ir.PropertyType, ir.CommentedPropertyType, ir.PropertyType}
	if len(root.Children) != len(wantTypes) {
		t.Fatalf("got %d children, want %d", len(root.Children), len(wantTypes))
	}
	for i, want := range wantTypes {
		if root.Children[i].Type != want {
			t.Errorf("child %d is %s, want %s", i, root.Children[i].Type, want)
		}
	}
}

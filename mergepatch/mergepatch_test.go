package mergepatch

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

func TestMake(t *testing.T) {
	from := mustParse(t, "blk {\n  a = 1\n  b = 2\n}\n")
	to := mustParse(t, "blk {\n  a = 1\n  b = 3\n  c = 4\n}\n")
	patch, err := Make(from, to)
	if err != nil {
		t.Fatal(err)
	}
	cfg := mustParse(t, "# keep me\nblk {\n  a = 1 # and me\n  b = 2\n}\n")
	if err := Apply(cfg, patch); err != nil {
		t.Fatal(err)
	}
	want := "# keep me\nblk {\n  a = 1 # and me\n  b = 3\n  c = 4\n}\n"
	if got := encode.MustString(cfg); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestApplyNullDisables(t *testing.T) {
	cfg := mustParse(t, "blk {\n  a = 1\n  b = 2\n}\n")
	if err := Apply(cfg, []byte(`{"blk":{"a":null}}`)); err != nil {
		t.Fatal(err)
	}
	want := "blk {\n  # a = 1\n  b = 2\n}\n"
	if got := encode.MustString(cfg); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestApplyCreatesBlocks(t *testing.T) {
	cfg := mustParse(t, "a = 1\n")
	if err := Apply(cfg, []byte(`{"input":{"touchpad":{"tap": true}}}`)); err != nil {
		t.Fatal(err)
	}
	want := "a = 1\ninput {\n  touchpad {\n    tap = true\n  }\n}\n"
	if got := encode.MustString(cfg); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestApplyBadPatch(t *testing.T) {
	cfg := mustParse(t, "a = 1\n")
	if err := Apply(cfg, []byte(`[1,2]`)); err == nil {
		t.Fatal("array patch did not error")
	}
}

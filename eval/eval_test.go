package eval

import (
	"testing"

	"github.com/curlyconf/curlyconf/ir"
	"github.com/curlyconf/curlyconf/parse"
)

const doc = `input {
  sensitivity = 0.5
  # repeat_rate = 40
  touchpad {
    natural_scroll = true
  }
}
`

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	root, err := parse.Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestCheck(t *testing.T) {
	cfg := mustParse(t, doc)
	cases := []struct {
		src  string
		want bool
	}{
		{`input.sensitivity >= 0 && input.sensitivity <= 1`, true},
		{`input.touchpad.natural_scroll`, true},
		{`input.sensitivity > 1`, false},
		{`has("input.repeat_rate")`, true},
		{`enabled("input.repeat_rate")`, false},
		{`enabled("input.sensitivity")`, true},
		{`get("input.repeat_rate") == 40.0`, true},
		{`has("input.nope")`, false},
	}
	for _, c := range cases {
		got, err := Check(cfg, c.src)
		if err != nil {
			t.Errorf("Check(%q): %v", c.src, err)
			continue
		}
		if got != c.want {
			t.Errorf("Check(%q) = %v, want %v", c.src, got, c.want)
		}
	}
}

func TestCheckCompileError(t *testing.T) {
	cfg := mustParse(t, doc)
	if _, err := Check(cfg, "1 +"); err == nil {
		t.Fatal("bad expression compiled")
	}
}

func TestMatchProperty(t *testing.T) {
	cfg := mustParse(t, doc)
	blk := cfg.Children[0]
	var sens, rate *ir.Node
	for _, c := range blk.Children {
		switch c.Key {
		case "sensitivity":
			sens = c
		case "repeat_rate":
			rate = c
		}
	}
	ok, err := MatchProperty(cfg, sens, "input.sensitivity", `active && value > 0.1`)
	if err != nil || !ok {
		t.Fatalf("got %v, %v", ok, err)
	}
	ok, err = MatchProperty(cfg, rate, "input.repeat_rate", `!active`)
	if err != nil || !ok {
		t.Fatalf("got %v, %v", ok, err)
	}
}

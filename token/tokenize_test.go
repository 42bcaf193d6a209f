package token

import "testing"

type tokenizeTest struct {
	in    string
	types []TokenType
	texts []string
}

func TestTokenize(t *testing.T) {
	tts := []tokenizeTest{
		{
			in:    "",
			types: []TokenType{TEOF},
		},
		{
			in:    "sensitivity = 0.5",
			types: []TokenType{TIdent, TEquals, TNumber, TEOF},
			texts: []string{"sensitivity", "=", "0.5", ""},
		},
		{
			in:    "natural_scroll = true",
			types: []TokenType{TIdent, TEquals, TBool, TEOF},
		},
		{
			in:    "touchpad {\n}\n",
			types: []TokenType{TIdent, TLBrace, TNewline, TRBrace, TNewline, TEOF},
		},
		{
			in:    "# repeat_rate = 40",
			types: []TokenType{TComment, TEOF},
			texts: []string{"repeat_rate = 40", ""},
		},
		{
			in:    `name = "hello world"`,
			types: []TokenType{TIdent, TEquals, TString, TEOF},
			texts: []string{"name", "=", "hello world", ""},
		},
		{
			in:    `name = 'it\'s'`,
			types: []TokenType{TIdent, TEquals, TString, TEOF},
			texts: []string{"name", "=", "it's", ""},
		},
		{
			// escaped quote inside double quotes
			in:    `name = "say \"hi\""`,
			types: []TokenType{TIdent, TEquals, TString, TEOF},
			texts: []string{"name", "=", `say "hi"`, ""},
		},
		{
			// \n escape reads as a newline
			in:    `motd = "line one\nline two"`,
			types: []TokenType{TIdent, TEquals, TString, TEOF},
			texts: []string{"motd", "=", "line one\nline two", ""},
		},
		{
			// catch-all run: odd symbols never abort tokenization
			in:    "cmd = $mod+SUPER",
			types: []TokenType{TIdent, TEquals, TIdent, TEOF},
			texts: []string{"cmd", "=", "$mod+SUPER", ""},
		},
		{
			in:    "key = value # trailing",
			types: []TokenType{TIdent, TEquals, TIdent, TComment, TEOF},
			texts: []string{"key", "=", "value", "trailing", ""},
		},
		{
			// identifiers may carry - . _ :
			in:    "col.active_border = rgb:aa",
			types: []TokenType{TIdent, TEquals, TIdent, TEOF},
		},
		{
			in:    "x = 1e3",
			types: []TokenType{TIdent, TEquals, TNumber, TEOF},
		},
	}
	for _, tt := range tts {
		toks := Tokenize([]byte(tt.in))
		if len(toks) != len(tt.types) {
			t.Errorf("%q: got %d tokens, want %d", tt.in, len(toks), len(tt.types))
			continue
		}
		for i, want := range tt.types {
			if toks[i].Type != want {
				t.Errorf("%q: token %d is %s, want %s", tt.in, i, toks[i].Type, want)
			}
		}
		if tt.texts == nil {
			continue
		}
		for i, want := range tt.texts {
			if toks[i].Text != want {
				t.Errorf("%q: token %d text %q, want %q", tt.in, i, toks[i].Text, want)
			}
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	toks := Tokenize([]byte("a = 1\n  b = 2\n"))
	wants := []Pos{
		{Line: 1, Col: 0}, // a
		{Line: 1, Col: 2}, // =
		{Line: 1, Col: 4}, // 1
		{Line: 1, Col: 5}, // newline
		{Line: 2, Col: 2}, // b
		{Line: 2, Col: 4}, // =
		{Line: 2, Col: 6}, // 2
		{Line: 2, Col: 7}, // newline
		{Line: 3, Col: 0}, // eof
	}
	if len(toks) != len(wants) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wants))
	}
	for i, want := range wants {
		if toks[i].Pos != want {
			t.Errorf("token %d (%s): pos %s, want %s", i, toks[i].Type, toks[i].Pos, want)
		}
	}
}

func TestTokenizeEmbeddedNewline(t *testing.T) {
	toks := Tokenize([]byte("a = \"x\ny\"\nb = 2"))
	// the string token swallows a newline, so b lands on line 3
	var bTok *Token
	for i := range toks {
		if toks[i].Type == TIdent && toks[i].Text == "b" {
			bTok = &toks[i]
		}
	}
	if bTok == nil {
		t.Fatal("no token for b")
	}
	if bTok.Pos.Line != 3 {
		t.Errorf("b on line %d, want 3", bTok.Pos.Line)
	}
}

func TestTokenizeCommentTrimsBody(t *testing.T) {
	toks := Tokenize([]byte("#   spaced out   "))
	if toks[0].Type != TComment || toks[0].Text != "spaced out" {
		t.Errorf("got %s %q", toks[0].Type, toks[0].Text)
	}
}

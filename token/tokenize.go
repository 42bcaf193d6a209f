// Package token lexes the brace-delimited config language into a flat
// token stream with line/column positions. Tokenization never fails:
// unrecognized runs are captured as catch-all identifier tokens and
// structural recovery is left to the parser.
package token

import "strings"

// Tokenize scans the full document and returns its tokens, always
// terminated by a TEOF token.
func Tokenize(d []byte) []Token {
	s := &scanner{d: d, line: 1}
	var toks []Token
	for {
		t := s.next()
		toks = append(toks, t)
		if t.Type == TEOF {
			return toks
		}
	}
}

type scanner struct {
	d    []byte
	i    int
	line int
	col  int
}

func (s *scanner) pos() Pos {
	return Pos{Line: s.line, Col: s.col}
}

func (s *scanner) advance() byte {
	c := s.d[s.i]
	s.i++
	if c == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return c
}

func (s *scanner) next() Token {
	for s.i < len(s.d) {
		switch s.d[s.i] {
		case ' ', '\t', '\r':
			s.advance()
			continue
		}
		break
	}
	if s.i >= len(s.d) {
		return Token{Type: TEOF, Pos: s.pos()}
	}
	pos := s.pos()
	switch c := s.d[s.i]; c {
	case '\n':
		s.advance()
		return Token{Type: TNewline, Text: "\n", Pos: pos}
	case '{':
		s.advance()
		return Token{Type: TLBrace, Text: "{", Pos: pos}
	case '}':
		s.advance()
		return Token{Type: TRBrace, Text: "}", Pos: pos}
	case '=':
		s.advance()
		return Token{Type: TEquals, Text: "=", Pos: pos}
	case '#':
		return s.comment(pos)
	case '"', '\'':
		return s.quoted(pos)
	default:
		return s.word(pos)
	}
}

// comment consumes '#' through end of line. The trimmed body is kept
// verbatim; whether it encodes a disabled property is decided later,
// by the parser.
func (s *scanner) comment(pos Pos) Token {
	s.advance() // '#'
	start := s.i
	for s.i < len(s.d) && s.d[s.i] != '\n' {
		s.advance()
	}
	return Token{
		Type: TComment,
		Text: strings.TrimSpace(string(s.d[start:s.i])),
		Pos:  pos,
	}
}

// quoted consumes a single- or double-quoted string, resolving
// backslash escapes and allowing embedded newlines. `\n` reads as a
// newline; any other escaped byte reads as itself. An unterminated
// string runs to end of input rather than failing.
func (s *scanner) quoted(pos Pos) Token {
	q := s.advance()
	var b strings.Builder
	for s.i < len(s.d) {
		c := s.advance()
		if c == '\\' && s.i < len(s.d) {
			e := s.advance()
			if e == 'n' {
				e = '\n'
			}
			b.WriteByte(e)
			continue
		}
		if c == q {
			break
		}
		b.WriteByte(c)
	}
	return Token{Type: TString, Text: b.String(), Pos: pos}
}

func (s *scanner) word(pos Pos) Token {
	if isWordByte(s.d[s.i]) {
		start := s.i
		for s.i < len(s.d) && isWordByte(s.d[s.i]) {
			s.advance()
		}
		text := string(s.d[start:s.i])
		return Token{Type: classifyWord(text), Text: text, Pos: pos}
	}
	// Catch-all: sweep anything up to the next delimiter so odd
	// symbols never abort tokenization.
	start := s.i
	for s.i < len(s.d) && !isDelimByte(s.d[s.i]) {
		s.advance()
	}
	return Token{Type: TIdent, Text: string(s.d[start:s.i]), Pos: pos}
}

// classifyWord decides a bareword's type after the fact: exact
// true/false is a boolean, a permissive numeric parse is a number,
// anything else is an identifier.
func classifyWord(text string) TokenType {
	switch text {
	case "true", "false":
		return TBool
	}
	if IsNumeric(text) {
		return TNumber
	}
	return TIdent
}

func isWordByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '.', '_', ':':
		return true
	}
	return false
}

func isDelimByte(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '{', '}', '=', '#', '"', '\'':
		return true
	}
	return false
}

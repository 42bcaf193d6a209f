// Package parse builds config trees from source text. The parser is a
// recursive-descent consumer of the token stream and is deliberately
// lenient: only a property missing its '=' and a block missing its
// closing brace are fatal, so any file a user can open in a text
// editor can also be loaded here.
package parse

import (
	"strings"

	"github.com/curlyconf/curlyconf/ir"
	"github.com/curlyconf/curlyconf/token"
)

// Parse tokenizes and parses a complete config document into a fresh
// tree rooted at an ir.ConfigType node. Each call is independent; there
// is no incremental re-parse.
func Parse(d []byte) (*ir.Node, error) {
	p := &parser{toks: token.Tokenize(d)}
	root := ir.NewConfig()
	if err := p.statements(root, false); err != nil {
		return nil, err
	}
	return root, nil
}

type parser struct {
	toks []token.Token
	i    int
}

func (p *parser) peek() *token.Token {
	return &p.toks[p.i]
}

func (p *parser) next() *token.Token {
	t := &p.toks[p.i]
	if t.Type != token.TEOF {
		p.i++
	}
	return t
}

// statements consumes the body of parent until end of input (at the
// top level) or the block's closing brace. Statement starters are
// identifiers and comments; newlines and anything unrecognized are
// skipped.
func (p *parser) statements(parent *ir.Node, inBlock bool) error {
	for {
		t := p.peek()
		switch t.Type {
		case token.TEOF:
			if inBlock {
				return newParseErr(ErrUnclosedBlock, *t)
			}
			return nil
		case token.TRBrace:
			p.next()
			if inBlock {
				return nil
			}
			// stray close brace at top level: skip
		case token.TNewline:
			p.next()
		case token.TComment:
			p.next()
			parent.Append(nodeFromComment(t))
		case token.TIdent:
			child, err := p.identStatement()
			if err != nil {
				return err
			}
			parent.Append(child)
		default:
			// not a statement starter: lenient recovery
			p.next()
		}
	}
}

// identStatement parses either a property (IDENT '=' value [COMMENT])
// or a block (IDENT '{' ... '}').
func (p *parser) identStatement() (*ir.Node, error) {
	ident := p.next()
	switch t := p.peek(); t.Type {
	case token.TEquals:
		p.next()
		prop := ir.NewProperty(ident.Text, p.value())
		prop.Line = ident.Pos.Line
		if c := p.peek(); c.Type == token.TComment {
			p.next()
			prop.Comment = c.Text
		}
		return prop, nil
	case token.TLBrace:
		p.next()
		blk := ir.NewBlock(ident.Text)
		blk.Line = ident.Pos.Line
		if err := p.statements(blk, true); err != nil {
			return nil, err
		}
		return blk, nil
	default:
		return nil, newParseErr(ErrMissingEquals, *t)
	}
}

// value consumes the property's right-hand side on a best-effort
// basis. A quoted token is always a string; a bareword keeps the
// classification the tokenizer gave it. A missing value yields the
// empty string rather than an error.
func (p *parser) value() ir.Value {
	switch t := p.peek(); t.Type {
	case token.TString:
		p.next()
		return ir.FromString(t.Text)
	case token.TNumber:
		p.next()
		return ir.FromNumber(t.Text)
	case token.TBool:
		p.next()
		return ir.FromBool(t.Text == "true")
	case token.TIdent:
		p.next()
		return ir.FromString(t.Text)
	default:
		return ir.FromString("")
	}
}

// nodeFromComment decides whether a comment token encodes a disabled
// property. Its raw text is split on the first '=' into key and
// remainder, and the remainder on a trailing unescaped '#' into value
// and inline comment. Any split that does not yield exactly a key and
// a value degrades the token to a plain Comment node; this path never
// errors.
func nodeFromComment(t *token.Token) *ir.Node {
	node := tryCommentedProperty(t.Text)
	if node == nil {
		node = ir.NewComment(t.Text)
	}
	node.Line = t.Pos.Line
	return node
}

func tryCommentedProperty(text string) *ir.Node {
	eq := strings.IndexByte(text, '=')
	if eq < 0 {
		return nil
	}
	key := strings.TrimSpace(text[:eq])
	if key == "" || strings.ContainsAny(key, " \t{}#\"'") {
		return nil
	}
	rest, inline := splitInlineComment(text[eq+1:])
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil
	}
	prop := ir.NewCommentedProperty(key, coerceCommented(rest))
	prop.Comment = inline
	return prop
}

// splitInlineComment splits on the last '#' that is not preceded by a
// backslash. The second result is the trimmed inline comment, or the
// empty string when there is none.
func splitInlineComment(s string) (string, string) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != '#' {
			continue
		}
		if i > 0 && s[i-1] == '\\' {
			continue
		}
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}

// coerceCommented applies the parse-time coercion rule to the value of
// a commented-out property. Matching surrounding quotes force string,
// with backslash escapes resolved the same way the tokenizer does.
func coerceCommented(text string) ir.Value {
	if len(text) >= 2 {
		switch text[0] {
		case '"', '\'':
			if text[len(text)-1] == text[0] {
				return ir.FromString(unescape(text[1 : len(text)-1]))
			}
		}
	}
	return ir.CoerceScalar(text)
}

// unescape resolves backslash escapes the same way the tokenizer does
// inside quotes: `\n` is a newline, anything else escaped is itself.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			i++
			c = s[i]
			if c == 'n' {
				c = '\n'
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Package encode renders config trees back to text. With comment
// preservation on, a freshly parsed tree re-encodes to a structurally
// equivalent document: same node sequence, same values, same comments;
// only inter-token whitespace normalizes.
package encode

import (
	"io"
	"strings"

	"github.com/curlyconf/curlyconf/ir"
	"github.com/curlyconf/curlyconf/token"
)

type EncState struct {
	indent   int
	comments bool
	colors   *Colors
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:   2,
		comments: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	_, err := io.WriteString(w, encodeNode(node, 0, es))
	return err
}

// encodeNode renders one node at the given nesting depth. It returns
// the empty string for nodes that contribute nothing (comments while
// preservation is off), which the caller drops rather than blank-lines.
func encodeNode(node *ir.Node, depth int, es *EncState) string {
	switch node.Type {
	case ir.ConfigType:
		body := encodeChildren(node, depth, es)
		if body == "" {
			return ""
		}
		return body + "\n"
	case ir.CommentType:
		if !es.comments {
			return ""
		}
		return pad(depth, es) + es.color(commentColor, "# "+node.Text)
	case ir.PropertyType:
		return pad(depth, es) + es.property(node, "")
	case ir.CommentedPropertyType:
		if !es.comments {
			return ""
		}
		return pad(depth, es) + es.property(node, es.color(commentColor, "# "))
	case ir.BlockType:
		var b strings.Builder
		b.WriteString(pad(depth, es))
		b.WriteString(es.color(nameColor, node.Name))
		b.WriteString(" " + es.color(punctColor, "{") + "\n")
		if body := encodeChildren(node, depth+1, es); body != "" {
			b.WriteString(body + "\n")
		}
		b.WriteString(pad(depth, es) + es.color(punctColor, "}"))
		return b.String()
	}
	return ""
}

func encodeChildren(node *ir.Node, depth int, es *EncState) string {
	var parts []string
	for _, c := range node.Children {
		if s := encodeNode(c, depth, es); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

func (es *EncState) property(node *ir.Node, prefix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(es.color(keyColor, node.Key))
	b.WriteString(" " + es.color(punctColor, "=") + " ")
	b.WriteString(es.colorValue(node.Value))
	if node.Comment != "" && es.comments {
		b.WriteString(" " + es.color(commentColor, "# "+node.Comment))
	}
	return b.String()
}

func (es *EncState) colorValue(v ir.Value) string {
	text := v.Literal()
	if v.Kind == ir.StringKind && needsQuote(text) {
		text = quote(text)
	}
	switch v.Kind {
	case ir.NumberKind:
		return es.color(numberColor, text)
	case ir.BoolKind:
		return es.color(boolColor, text)
	default:
		return es.color(stringColor, text)
	}
}

func pad(depth int, es *EncState) string {
	return strings.Repeat(" ", depth*es.indent)
}

// needsQuote reports whether a string value cannot be written as a
// bareword: it is empty, contains delimiters or whitespace, or would
// re-classify as a boolean or number on the next parse.
func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	switch s {
	case "true", "false":
		return true
	}
	if token.IsNumeric(s) {
		return true
	}
	return strings.ContainsAny(s, " \t\r\n{}=#\"'\\")
}

// quote escapes '#' and newlines as well: commented-out properties are
// re-read by splitting their raw single-line text, so a bare '#' inside
// the quotes would be taken for an inline comment and a raw newline
// would escape the comment line entirely.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\', '#':
			b.WriteByte('\\')
		case '\n':
			b.WriteString(`\n`)
			continue
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

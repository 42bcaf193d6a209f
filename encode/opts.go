package encode

type EncodeOption func(*EncState)

// EncodeComments controls comment preservation: inline comments,
// standalone comments, and commented-out properties all render only
// when it is on. It defaults to on; turning it off drops them without
// leaving blank lines.
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

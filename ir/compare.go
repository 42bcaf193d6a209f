package ir

// Equal reports structural equality of two trees: same variants, keys,
// values, comments and child sequences. Line numbers are ignored, so a
// tree compares equal to its own reparse even when serialization
// normalized whitespace.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case CommentType:
		return a.Text == b.Text
	case PropertyType, CommentedPropertyType:
		return a.Key == b.Key && a.Value.equal(b.Value) && a.Comment == b.Comment
	case BlockType:
		if a.Name != b.Name {
			return false
		}
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

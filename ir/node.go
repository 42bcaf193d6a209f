package ir

// LineSynthesized marks a node created by mutation that has no source
// line yet.
const LineSynthesized = -1

// Node is one element of a config tree. It is a tagged union: Type
// selects the variant and decides which fields are meaningful.
//
//	Config:            Children
//	Block:             Name, Children, Line
//	Property:          Key, Value, Comment, Line
//	CommentedProperty: Key, Value, Comment, Line
//	Comment:           Text, Line
type Node struct {
	Type Type

	// Block
	Name string

	// Property, CommentedProperty
	Key     string
	Value   Value
	Comment string

	// Comment
	Text string

	// Config, Block
	Children []*Node

	Line int
}

func NewConfig() *Node {
	return &Node{Type: ConfigType, Line: LineSynthesized}
}

func NewBlock(name string) *Node {
	return &Node{Type: BlockType, Name: name, Line: LineSynthesized}
}

func NewProperty(key string, v Value) *Node {
	return &Node{Type: PropertyType, Key: key, Value: v, Line: LineSynthesized}
}

func NewCommentedProperty(key string, v Value) *Node {
	return &Node{Type: CommentedPropertyType, Key: key, Value: v, Line: LineSynthesized}
}

func NewComment(text string) *Node {
	return &Node{Type: CommentType, Text: text, Line: LineSynthesized}
}

// Append adds a child at the end of y's children. It is the only
// order-changing operation the tree offers.
func (y *Node) Append(child *Node) *Node {
	y.Children = append(y.Children, child)
	return y
}

// IsProperty reports whether y is a property in either state.
func (y *Node) IsProperty() bool {
	return y.Type == PropertyType || y.Type == CommentedPropertyType
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Name = y.Name
	dst.Key = y.Key
	dst.Value = y.Value
	dst.Comment = y.Comment
	dst.Text = y.Text
	dst.Line = y.Line
	if y.Children == nil {
		dst.Children = nil
		return dst
	}
	dst.Children = make([]*Node, len(y.Children))
	for i, c := range y.Children {
		dst.Children[i] = c.Clone()
	}
	return dst
}

package main

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"

	"github.com/curlyconf/curlyconf/ir"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}

	// LSP lines are 0-based, parse lines are 1-based
	line := int(params.Position.Line) + 1
	node := findNodeAtLine(doc.root, line)
	if node == nil {
		return nil, nil
	}
	text := buildHoverText(node)
	if text == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

func findNodeAtLine(node *ir.Node, line int) *ir.Node {
	for _, c := range node.Children {
		if c.Line == line && c.Type != ir.ConfigType {
			return c
		}
		if len(c.Children) > 0 {
			if found := findNodeAtLine(c, line); found != nil {
				return found
			}
		}
	}
	return nil
}

func buildHoverText(node *ir.Node) string {
	switch node.Type {
	case ir.PropertyType:
		return fmt.Sprintf("**%s** = `%s` (%s, enabled)", node.Key, node.Value.Literal(), kindName(node.Value.Kind))
	case ir.CommentedPropertyType:
		return fmt.Sprintf("**%s** = `%s` (%s, disabled, value remembered)", node.Key, node.Value.Literal(), kindName(node.Value.Kind))
	case ir.BlockType:
		return fmt.Sprintf("block **%s**, %d entries", node.Name, len(node.Children))
	}
	return ""
}

func kindName(k ir.ValueKind) string {
	switch k {
	case ir.NumberKind:
		return "number"
	case ir.BoolKind:
		return "boolean"
	default:
		return "string"
	}
}

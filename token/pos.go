package token

import "fmt"

// Pos locates a token in its source document. Line is 1-based,
// Col is 0-based within the line.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("line=%d, col=%d", p.Line, p.Col)
}

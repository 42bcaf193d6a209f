package parse

import (
	"errors"
	"fmt"

	"github.com/curlyconf/curlyconf/token"
)

var (
	ErrParse = errors.New("parse error")

	// The only two fatal conditions. Everything else degrades.
	ErrMissingEquals = fmt.Errorf("%w: expected '=' after identifier", ErrParse)
	ErrUnclosedBlock = fmt.Errorf("%w: unclosed block at end of input", ErrParse)
)

// ParseErr wraps one of the fatal parse conditions with the offending
// token and its position.
type ParseErr struct {
	Err error
	Tok token.Token
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	if e.Tok.Text != "" && e.Tok.Type != token.TNewline {
		return fmt.Sprintf("%s: %q at %s", e.Err.Error(), e.Tok.Text, e.Tok.Pos)
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Tok.Pos)
}

func newParseErr(err error, tok token.Token) *ParseErr {
	return &ParseErr{Err: err, Tok: tok}
}

package token

type TokenType int

const (
	TIdent TokenType = iota
	TEquals
	TLBrace
	TRBrace
	TString
	TNumber
	TBool
	TComment
	TNewline
	TEOF
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TIdent:   "TIdent",
		TEquals:  "TEquals",
		TLBrace:  "TLBrace",
		TRBrace:  "TRBrace",
		TString:  "TString",
		TNumber:  "TNumber",
		TBool:    "TBool",
		TComment: "TComment",
		TNewline: "TNewline",
		TEOF:     "TEOF",
	}[t]
}

// Token is one lexical element of a config document. Text holds the
// token's value with quoting and escapes already removed; for TComment
// it holds the trimmed comment body without the leading '#'.
type Token struct {
	Type TokenType
	Text string
	Pos  Pos
}

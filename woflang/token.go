package woflang

import "fmt"

type Token struct {
	Kind TokenKind
	Text string
	Span Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenInteger
	TokenFloat
	TokenString
	TokenSymbol
	TokenLabel
	TokenLabelRef
	TokenEOF
)

var tokenKindNames = [...]string{
	TokenInvalid:  "invalid",
	TokenInteger:  "integer",
	TokenFloat:    "float",
	TokenString:   "string",
	TokenSymbol:   "symbol",
	TokenLabel:    "label",
	TokenLabelRef: "label-ref",
	TokenEOF:      "eof",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

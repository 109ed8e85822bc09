package mrp

import "fmt"

// 🏷️ TokenKind identifies the category of a scanned token
type TokenKind int

const (
	TokenEnd      TokenKind = iota // end of expression
	TokenLiteral                   // run of plain text
	TokenLParen                    // (
	TokenRParen                    // )
	TokenColon                     // :
	TokenIdent                     // capture or reference name
	TokenTypeName                  // capture type after ':'
	TokenArrow                     // ->
)

// String returns a human readable description of the kind, used in diagnostics
func (k TokenKind) String() string {
	switch k {
	case TokenLiteral:
		return "literal"
	case TokenLParen:
		return `"("`
	case TokenRParen:
		return `")"`
	case TokenColon:
		return `":"`
	case TokenIdent:
		return "identifier"
	case TokenTypeName:
		return "type name"
	case TokenArrow:
		return `"->"`
	default:
		return "end of expression"
	}
}

// 🎟️ Token is a single lexeme of an expression. Pos is the byte offset of the
// first character of the token in the source text.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

// describe renders the token the way it shows up in "found ..." messages
func (t Token) describe() string {
	switch t.Kind {
	case TokenLiteral, TokenIdent, TokenTypeName:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}

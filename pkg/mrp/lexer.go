// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mrp

import (
	"strings"
	"unicode/utf8"
)

const arrow = "->"

// 🔤 Lexer turns an expression into a flat token stream.
//
// Outside of a group every maximal run of text that is not "(", ")" or "->"
// becomes one literal token. Inside a group only identifiers, ":" and ")" are
// accepted; anything else is a LexError.
type Lexer struct {
	input   string
	pos     int
	inGroup bool
	last    TokenKind
}

// 🏭 NewLexer creates a lexer over input
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, last: TokenEnd}
}

// Tokenize scans the whole input. The returned slice always ends with a
// TokenEnd token.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEnd {
			return tokens, nil
		}
	}
}

// Next returns the next token. Once the input is exhausted it keeps returning
// TokenEnd.
func (l *Lexer) Next() (Token, error) {
	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	l.last = tok.Kind
	return tok, nil
}

func (l *Lexer) scan() (Token, error) {
	if l.pos >= len(l.input) {
		return Token{Kind: TokenEnd, Pos: len(l.input)}, nil
	}

	start := l.pos
	rest := l.input[l.pos:]

	if strings.HasPrefix(rest, arrow) {
		l.pos += len(arrow)
		l.inGroup = false
		return Token{Kind: TokenArrow, Text: arrow, Pos: start}, nil
	}

	switch rest[0] {
	case '(':
		if l.inGroup {
			return Token{}, l.unexpected()
		}
		l.pos++
		l.inGroup = true
		return Token{Kind: TokenLParen, Text: "(", Pos: start}, nil
	case ')':
		l.pos++
		l.inGroup = false
		return Token{Kind: TokenRParen, Text: ")", Pos: start}, nil
	}

	if !l.inGroup {
		return l.literal(), nil
	}

	switch {
	case rest[0] == ':':
		l.pos++
		return Token{Kind: TokenColon, Text: ":", Pos: start}, nil
	case isIdentStart(rest[0]):
		for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
			l.pos++
		}
		kind := TokenIdent
		if l.last == TokenColon {
			kind = TokenTypeName
		}
		return Token{Kind: kind, Text: l.input[start:l.pos], Pos: start}, nil
	default:
		return Token{}, l.unexpected()
	}
}

// literal consumes text up to the next "(", ")" or "->"
func (l *Lexer) literal() Token {
	start := l.pos
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if c == '(' || c == ')' || strings.HasPrefix(l.input[l.pos:], arrow) {
			break
		}
		l.pos++
	}
	return Token{Kind: TokenLiteral, Text: l.input[start:l.pos], Pos: start}
}

func (l *Lexer) unexpected() *LexError {
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return &LexError{Pos: l.pos, Char: r}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

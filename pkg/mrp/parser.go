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

// 🧩 Parser consumes a token stream into an Expression
type Parser struct {
	tokens []Token
	pos    int
	source string
}

// 🏭 NewParser tokenizes input and prepares a parser over it
func NewParser(input string) (*Parser, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return &Parser{tokens: tokens, source: input}, nil
}

// Parse lexes and parses input in one step
func Parse(input string) (*Expression, error) {
	p, err := NewParser(input)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// Parse reads the pattern up to "->" and the template after it
func (p *Parser) Parse() (*Expression, error) {
	pattern, err := p.parsePattern()
	if err != nil {
		return nil, err
	}

	sep := p.advance()
	if sep.Kind != TokenArrow {
		return nil, p.expected(`pattern separator "->"`, sep)
	}

	if p.peek().Kind == TokenEnd {
		return nil, &ParseError{
			Pos:      p.peek().Pos,
			Expected: "template after pattern separator",
			Found:    TokenEnd.String(),
		}
	}

	template, err := p.parseTemplate()
	if err != nil {
		return nil, err
	}

	if end := p.advance(); end.Kind != TokenEnd {
		return nil, p.expected(TokenEnd.String(), end)
	}

	return &Expression{Source: p.source, Pattern: pattern, Template: template}, nil
}

func (p *Parser) parsePattern() (Pattern, error) {
	var out Pattern
	for {
		tok := p.peek()
		switch tok.Kind {
		case TokenArrow, TokenEnd:
			return out, nil
		case TokenLiteral:
			p.advance()
			out = append(out, Literal{Text: tok.Text, Pos: tok.Pos})
		case TokenLParen:
			c, err := p.parseCapture()
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		default:
			return nil, p.expected(`literal or "("`, tok)
		}
	}
}

// parseCapture reads "(" ident [":" type] ")"
func (p *Parser) parseCapture() (Capture, error) {
	open := p.advance()

	name := p.advance()
	if name.Kind != TokenIdent {
		return Capture{}, p.expected("identifier", name)
	}

	c := Capture{Name: name.Text, Type: TypeStr, Pos: open.Pos}

	if p.peek().Kind == TokenColon {
		p.advance()
		typ := p.advance()
		if typ.Kind != TokenTypeName {
			return Capture{}, p.expected("type name", typ)
		}
		t, ok := LookupType(typ.Text)
		if !ok {
			return Capture{}, p.expected("type name (int, str)", typ)
		}
		c.Type = t
	}

	if closing := p.advance(); closing.Kind != TokenRParen {
		return Capture{}, p.expected(TokenRParen.String(), closing)
	}

	return c, nil
}

func (p *Parser) parseTemplate() (Template, error) {
	var out Template
	for {
		tok := p.peek()
		switch tok.Kind {
		case TokenEnd, TokenArrow:
			return out, nil
		case TokenLiteral:
			p.advance()
			out = append(out, Literal{Text: tok.Text, Pos: tok.Pos})
		case TokenLParen:
			ref, err := p.parseReference()
			if err != nil {
				return nil, err
			}
			out = append(out, ref)
		default:
			return nil, p.expected(`literal or "("`, tok)
		}
	}
}

// parseReference reads "(" ident ")"; template references carry no type
func (p *Parser) parseReference() (Reference, error) {
	open := p.advance()

	name := p.advance()
	if name.Kind != TokenIdent {
		return Reference{}, p.expected("identifier", name)
	}

	if closing := p.advance(); closing.Kind != TokenRParen {
		return Reference{}, p.expected(TokenRParen.String(), closing)
	}

	return Reference{Name: name.Text, Pos: open.Pos}, nil
}

func (p *Parser) peek() Token {
	return p.tokens[p.pos]
}

// advance returns the current token and moves past it, staying on TokenEnd
func (p *Parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokenEnd {
		p.pos++
	}
	return tok
}

func (p *Parser) expected(what string, found Token) *ParseError {
	return &ParseError{Pos: found.Pos, Expected: what, Found: found.describe()}
}

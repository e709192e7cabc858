package boolexpr

import (
	"fmt"
	"unicode"
)

type TokenKind int

const (
	VALUE TokenKind = iota
	IDENT
	OPERATOR
	LPAREN
	RPAREN
)

func (k TokenKind) String() string {
	switch k {
	case VALUE:
		return "VALUE"
	case IDENT:
		return "IDENT"
	case OPERATOR:
		return "OPERATOR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Token is a lexical unit positioned in the source text. Pos counts
// characters, not bytes.
//
// Depending on Kind, Value (VALUE) or Text (IDENT, OPERATOR) is set.
type Token struct {
	Kind  TokenKind
	Pos   int
	Value bool
	Text  string
}

// Len is the number of characters the token covers in the source text.
func (t Token) Len() int {
	switch t.Kind {
	case IDENT, OPERATOR:
		return len([]rune(t.Text))
	default:
		return 1
	}
}

// End is the position just past the token.
func (t Token) End() int {
	return t.Pos + t.Len()
}

// Symbol is the token as it would be written in an expression.
func (t Token) Symbol() string {
	switch t.Kind {
	case VALUE:
		if t.Value {
			return "1"
		}
		return "0"
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	default:
		return t.Text
	}
}

// Tokenize splits an expression into tokens. Spaces and tabs separate
// tokens but are otherwise ignored; any other unknown character fails the
// whole input.
//
// Example:
//
//	tokens, err := boolexpr.Tokenize("a => !b")
//	// IDENT(a)@0 OPERATOR(=>)@2 OPERATOR(!)@5 IDENT(b)@6
func Tokenize(expression string) ([]Token, error) {
	input := []rune(expression)
	var tokens []Token

	for pos := 0; pos < len(input); {
		c := input[pos]

		if c == ' ' || c == '\t' {
			pos++
			continue
		}

		if unicode.IsLetter(c) {
			start := pos
			for pos < len(input) && unicode.IsLetter(input[pos]) {
				pos++
			}
			tokens = append(tokens, Token{Kind: IDENT, Pos: start, Text: string(input[start:pos])})
			continue
		}

		// must be checked before the single character operators, otherwise
		// `=>` is read as `=` followed by a stray `>`
		if c == '=' && pos+1 < len(input) && input[pos+1] == '>' {
			tokens = append(tokens, Token{Kind: OPERATOR, Pos: pos, Text: "=>"})
			pos += 2
			continue
		}

		switch c {
		case '0', '1':
			tokens = append(tokens, Token{Kind: VALUE, Pos: pos, Value: c == '1'})
		case '&', '|', '^', '=', '!':
			tokens = append(tokens, Token{Kind: OPERATOR, Pos: pos, Text: string(c)})
		case '(':
			tokens = append(tokens, Token{Kind: LPAREN, Pos: pos})
		case ')':
			tokens = append(tokens, Token{Kind: RPAREN, Pos: pos})
		default:
			return nil, NewParseError(pos, 1, fmt.Sprintf("invalid character '%c'", c))
		}
		pos++
	}

	if len(tokens) == 0 {
		return nil, NewParseError(len(input), 0, "no input.")
	}
	return tokens, nil
}

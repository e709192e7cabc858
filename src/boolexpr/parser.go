package boolexpr

import (
	"fmt"
)

const notSymbol = "!"

var binaryOperators = map[string]Operator{
	"|":  OR,
	"&":  AND,
	"^":  XOR,
	"=":  EQ,
	"=>": IMP,
}

// Parse builds an expression tree from the output of Tokenize.
//
// The operator binding loosest at parenthesis depth zero splits the token
// slice in two and both halves are parsed recursively. A slice without such
// an operator must be wrapped in a single pair of parentheses, which are
// stripped.
//
// Equal binary operators group to the left, `a => b => c` is
// `(a => b) => c`.
func Parse(tokens []Token) (*Node, error) {
	switch len(tokens) {
	case 0:
		return nil, NewParseError(0, 0, "missing input")
	case 1:
		return parseSingleToken(tokens[0])
	}

	if opIdx, ok := findTopLevelOperator(tokens); ok {
		return parseOperator(tokens, opIdx)
	}
	return parseParentheses(tokens)
}

func parseSingleToken(token Token) (*Node, error) {
	switch token.Kind {
	case VALUE:
		return NewValue(token.Value), nil
	case IDENT:
		return NewVariable(token.Text), nil
	default:
		return nil, NewParseError(token.Pos, token.Len(), "value or variable expected")
	}
}

// precedence of an operator symbol, lowest binds loosest. Unknown symbols
// get the lowest precedence so they are split on, and reported, first.
func precedence(symbol string) int {
	switch symbol {
	case "|", "^":
		return 1
	case "&":
		return 2
	case notSymbol:
		return 3
	default:
		return 0
	}
}

// findTopLevelOperator returns the index of the operator to split on. Ties
// between binary operators go to the last one, which makes them left
// associative. Ties between `!` go to the first one since it's a prefix
// operator and everything to its right is its operand.
func findTopLevelOperator(tokens []Token) (int, bool) {
	var depth int
	best := -1

	for i, token := range tokens {
		switch token.Kind {
		case LPAREN:
			depth++
		case RPAREN:
			depth--
		case OPERATOR:
			if depth != 0 {
				continue
			}
			if best < 0 || splitsBefore(token, tokens[best]) {
				best = i
			}
		}
	}

	return best, best >= 0
}

func splitsBefore(candidate, current Token) bool {
	cp, bp := precedence(candidate.Text), precedence(current.Text)
	if cp != bp {
		return cp < bp
	}
	return candidate.Text != notSymbol
}

func parseOperator(tokens []Token, opIdx int) (*Node, error) {
	op := tokens[opIdx]

	var left, right *Node
	var err error
	if opIdx > 0 {
		left, err = Parse(tokens[:opIdx])
		if err != nil {
			return nil, err
		}
	}
	if opIdx < len(tokens)-1 {
		right, err = Parse(tokens[opIdx+1:])
		if err != nil {
			return nil, err
		}
	}

	if right == nil {
		return nil, NewParseError(op.End(), 0, "missing right hand side operand")
	}

	binary, isBinary := binaryOperators[op.Text]
	if !isBinary && op.Text != notSymbol {
		return nil, NewParseError(op.Pos, op.Len(), fmt.Sprintf("unknown operator '%s'", op.Text))
	}

	if left != nil {
		if !isBinary {
			start := tokens[0].Pos
			return nil, NewParseError(start, tokens[opIdx-1].End()-start, "unexpected left hand side operand")
		}
		return NewBinary(binary, left, right), nil
	}

	if isBinary {
		return nil, NewParseError(op.Pos, 0, "missing left hand side operand")
	}
	return NewNot(right), nil
}

// parseParentheses strips one pair of parentheses wrapping the whole slice.
func parseParentheses(tokens []Token) (*Node, error) {
	if tokens[0].Kind != LPAREN {
		return nil, NewParseError(tokens[1].Pos, tokens[1].Len(), "operator expected")
	}

	var depth int
	for i, token := range tokens {
		switch token.Kind {
		case LPAREN:
			depth++
		case RPAREN:
			depth--
			// more closing than opening parentheses with tokens after them.
			// `(a)b` passes here and fails on the stripped slice `a)`.
			if depth < 0 && i+1 < len(tokens) {
				next := tokens[i+1]
				return nil, NewParseError(next.Pos, next.Len(), "operator expected")
			}
		}
	}

	if depth > 0 {
		last := tokens[len(tokens)-1]
		return nil, NewParseError(last.End(), 0, `")" expected`)
	}

	return Parse(tokens[1 : len(tokens)-1])
}

package boolexpr

import (
	"fmt"
)

type Operator int

const (
	LITERAL Operator = iota
	VARIABLE
	NOT
	AND
	OR
	XOR
	EQ
	IMP
)

// Node is one node of an expression tree. Operator decides which of the
// other fields are meaningful:
//
//	LITERAL        Value
//	VARIABLE       Name
//	NOT            Left
//	AND, OR, XOR,
//	EQ, IMP        Left, Right
//
// Trees are built once by the parser and never modified afterwards.
type Node struct {
	Operator Operator
	Left     *Node
	Right    *Node

	Value bool
	Name  string
}

func NewValue(value bool) *Node {
	return &Node{Operator: LITERAL, Value: value}
}

func NewVariable(name string) *Node {
	return &Node{Operator: VARIABLE, Name: name}
}

func NewNot(operand *Node) *Node {
	return &Node{Operator: NOT, Left: operand}
}

func NewBinary(operator Operator, left, right *Node) *Node {
	return &Node{Operator: operator, Left: left, Right: right}
}

// IsVariable reports whether the node is a variable reference.
func (n *Node) IsVariable() bool {
	return n.Operator == VARIABLE
}

// New creates a new evaluable boolean expression based on the given input string
// Example usage:
//
//	tree, err := boolexpr.New("a & (b | 1)")
//	if err != nil {
//		log.Fatalf("failed to parse expression: %v", err)
//	}
//	fmt.Println(tree.Dump()) // Output: And(Variable(a),Or(Variable(b),Value(1)))
//
// A failure is always a *ParseError, wrapped.
func New(expression string) (*Node, error) {
	tokens, err := Tokenize(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize expression '%s': %w", expression, err)
	}

	root, err := Parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expression '%s': %w", expression, err)
	}
	return root, nil
}

package boolexpr

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Eval evaluates the expression with the values held by ctx. Every
// variable in the tree must have a value in ctx, see Context.Get.
func (n *Node) Eval(ctx *Context) bool {
	switch n.Operator {
	case LITERAL:
		return n.Value
	case VARIABLE:
		return ctx.Get(n.Name)
	case NOT:
		return !n.Left.Eval(ctx)
	}
	return apply(n.Operator, n.Left.Eval(ctx), n.Right.Eval(ctx))
}

// Solve evaluates the expression with the values in context, failing with
// an UnknownVariableError if a referenced variable is missing from it.
func (n *Node) Solve(context map[string]bool) (bool, error) {
	switch n.Operator {
	case LITERAL:
		return n.Value, nil
	case VARIABLE:
		v, ok := context[n.Name]
		if !ok {
			return false, NewUnknownVariableError(n.Name)
		}
		return v, nil
	case NOT:
		result, err := n.Left.Solve(context)
		if err != nil {
			return false, fmt.Errorf("failed solving NOT sub-expression: %w", err)
		}
		return !result, nil
	}

	leftResult, err := n.Left.Solve(context)
	if err != nil {
		return false, fmt.Errorf("failed solving left expression: %w", err)
	}
	rightResult, err := n.Right.Solve(context)
	if err != nil {
		return false, fmt.Errorf("failed solving right expression: %w", err)
	}
	return apply(n.Operator, leftResult, rightResult), nil
}

func apply(operator Operator, left, right bool) bool {
	switch operator {
	case AND:
		return left && right
	case OR:
		return left || right
	case XOR:
		return left != right
	case EQ:
		return left == right
	case IMP:
		return !left || right
	}
	panic(fmt.Sprintf("boolexpr: %v is not a binary operator", operator))
}

// Precedence is used when printing: a child is put in parentheses unless it
// binds tighter than its parent. Values and variables never need them.
func (n *Node) Precedence() int {
	switch n.Operator {
	case EQ, IMP:
		return 0
	case OR, XOR:
		return 1
	case AND:
		return 2
	case NOT:
		return 3
	default:
		return 4
	}
}

func (o Operator) symbol() string {
	switch o {
	case NOT:
		return notSymbol
	case AND:
		return "&"
	case OR:
		return "|"
	case XOR:
		return "^"
	case EQ:
		return "="
	case IMP:
		return "=>"
	}
	return ""
}

func (o Operator) String() string {
	switch o {
	case LITERAL:
		return "Value"
	case VARIABLE:
		return "Variable"
	case NOT:
		return "Neg"
	case AND:
		return "And"
	case OR:
		return "Or"
	case XOR:
		return "Xor"
	case EQ:
		return "Eq"
	case IMP:
		return "Imp"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// String renders the expression with as few parentheses as possible.
// Parsing the result gives a tree that evaluates the same for every
// assignment, though equal operators may be grouped differently.
func (n *Node) String() string {
	switch n.Operator {
	case LITERAL:
		if n.Value {
			return "1"
		}
		return "0"
	case VARIABLE:
		return n.Name
	case NOT:
		return notSymbol + n.Left.stringWithin(n)
	}
	return n.Left.stringWithin(n) + " " + n.Operator.symbol() + " " + n.Right.stringWithin(n)
}

func (n *Node) stringWithin(parent *Node) string {
	if n.Precedence() > parent.Precedence() {
		return n.String()
	}
	return "(" + n.String() + ")"
}

// Dump renders the tree with every node named, e.g.
// `And(Or(Variable(a),Variable(b)),Value(1))`. Two trees are structurally
// equal iff their dumps are.
func (n *Node) Dump() string {
	var sb strings.Builder
	n.dump(&sb)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder) {
	sb.WriteString(n.Operator.String())
	sb.WriteByte('(')
	switch n.Operator {
	case LITERAL:
		if n.Value {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	case VARIABLE:
		sb.WriteString(n.Name)
	case NOT:
		n.Left.dump(sb)
	default:
		n.Left.dump(sb)
		sb.WriteByte(',')
		n.Right.dump(sb)
	}
	sb.WriteByte(')')
}

// Walk yields the node and then its descendants, pre-order, left before
// right.
func (n *Node) Walk() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	if n.Left != nil && !n.Left.walk(yield) {
		return false
	}
	if n.Right != nil && !n.Right.walk(yield) {
		return false
	}
	return true
}

// Variables returns the distinct variable names referenced by the
// expression, sorted.
func (n *Node) Variables() []string {
	nodes := lo.Filter(slices.Collect(n.Walk()), func(node *Node, _ int) bool {
		return node.IsVariable()
	})
	names := lo.Uniq(lo.Map(nodes, func(node *Node, _ int) string {
		return node.Name
	}))
	slices.Sort(names)
	return names
}

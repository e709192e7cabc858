package boolexpr_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiterals(t *testing.T) {
	tests := map[string]bool{
		"1": true,
		"0": false,
	}
	runSolverTests(t, tests, make(map[string]bool))
}

func TestVariables(t *testing.T) {
	context := map[string]bool{
		"A": true,
		"B": false,
	}
	tests := map[string]bool{
		"A": true,  // A is true in the context
		"B": false, // B is false in the context

		"!A": false,
		"!B": true,

		"A & B":  false,
		"A | B":  true,
		"A ^ B":  true,
		"A = B":  false,
		"A => B": false,
		"B => A": true,
	}
	runSolverTests(t, tests, context)
}

func TestNot(t *testing.T) {
	tests := map[string]bool{
		"!1":  false,
		"!0":  true,
		"!!1": true,
	}
	runSolverTests(t, tests, make(map[string]bool))
}

func TestBinaryOperators(t *testing.T) {
	tests := map[string]bool{
		"1 & 1": true,
		"1 & 0": false,
		"0 & 1": false,
		"0 & 0": false,

		"1 | 1": true,
		"1 | 0": true,
		"0 | 1": true,
		"0 | 0": false,

		"1 ^ 1": false,
		"1 ^ 0": true,
		"0 ^ 1": true,
		"0 ^ 0": false,

		"1 = 1": true,
		"1 = 0": false,
		"0 = 1": false,
		"0 = 0": true,

		"1 => 1": true,
		"1 => 0": false,
		"0 => 1": true,
		"0 => 0": true,
	}
	runSolverTests(t, tests, make(map[string]bool))
}

func TestRecursiveExpressions(t *testing.T) {
	tests := map[string]bool{
		"1 & !0": true,
		"!0 & 1": true,

		"1 | (0 & 0)": true,
		"(1 | 0) & 0": false,
		"1 | 0 & 0":   true,

		"1 & 1 & 1": true,
		"1 & 1 & 0": false,

		// left associative: (0 => 0) => 0
		"0 => 0 => 0": false,
		// (1 = 0) = 0
		"1 = 0 = 0": true,
	}
	runSolverTests(t, tests, make(map[string]bool))
}

func runSolverTests(t *testing.T, tests map[string]bool, context map[string]bool) {
	for expression, expected := range tests {
		t.Run(expression, func(t *testing.T) {
			node, err := boolexpr.New(expression)
			require.NoError(t, err)

			result, err := node.Solve(context)
			require.NoError(t, err)
			assert.Equal(t, expected, result)

			ctx := boolexpr.NewContext(node.Variables())
			for name, value := range context {
				if slices.Contains(ctx.Variables(), name) {
					_, err := ctx.Preset(name, value)
					require.NoError(t, err)
				}
			}
			assert.Equal(t, expected, node.Eval(ctx))
		})
	}
}

func TestUnknownVariable(t *testing.T) {
	// create an expression referencing variable A
	node, err := boolexpr.New("B | !A")
	require.NoError(t, err)

	// and try to solve it without providing a value for A
	_, err = node.Solve(map[string]bool{"B": false})
	assert.Contains(t, err.Error(), "unknown variable")
	assert.Contains(t, err.Error(), "A")

	var errUnknownVar *boolexpr.UnknownVariableError
	require.True(t, errors.As(err, &errUnknownVar))
	assert.Equal(t, "A", errUnknownVar.VariableName)
}

func TestEval_PanicsOnUnassignedVariable(t *testing.T) {
	node, err := boolexpr.New("a & b")
	require.NoError(t, err)

	ctx := boolexpr.NewContext(node.Variables())
	_, err = ctx.Preset("a", true)
	require.NoError(t, err)

	assert.Panics(t, func() { node.Eval(ctx) })
}

func TestNew_WrapsParseError(t *testing.T) {
	_, err := boolexpr.New("a & (b")

	var parseErr *boolexpr.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "\")\" expected", parseErr.Message)
	assert.Equal(t, 6, parseErr.Pos)
	assert.Equal(t, 0, parseErr.Len)

	_, err = boolexpr.New("   ")
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "no input.", parseErr.Message)
}

func TestString(t *testing.T) {
	testCases := map[string]string{
		"1":              "1",
		"0":              "0",
		"abc":            "abc",
		"!a":             "!a",
		"!!a":            "!(!a)",
		"!(a & b)":       "!(a & b)",
		"a|b":            "a | b",
		"a&b":            "a & b",
		"a^b":            "a ^ b",
		"a=b":            "a = b",
		"a=>b":           "a => b",
		"(a | b) & c":    "(a | b) & c",
		"a | b & c":      "a | b & c",
		"(a & b) | c":    "a & b | c",
		"a & b & c":      "(a & b) & c",
		"a & (b & c)":    "a & (b & c)",
		"!a & b":         "!a & b",
		"((a)) => (b=c)": "a => (b = c)",
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			node, err := boolexpr.New(expression)
			require.NoError(t, err)
			assert.Equal(t, expected, node.String())
		})
	}
}

func TestString_RoundTrip(t *testing.T) {
	expressions := []string{
		"a",
		"!a",
		"!!a & 1",
		"a & b & c",
		"a | b ^ c & !d",
		"a => b => c",
		"a = (b => c)",
		"(a|b&c) = ((a|b)&c)",
		"!a & b ^ c | d = e => f",
		"!(a ^ !(b = 0)) => (c | d & (e ^ f))",
	}

	for _, expression := range expressions {
		t.Run(expression, func(t *testing.T) {
			node, err := boolexpr.New(expression)
			require.NoError(t, err)

			reparsed, err := boolexpr.New(node.String())
			require.NoError(t, err)
			assert.Equal(t, node.Variables(), reparsed.Variables())

			ctx := boolexpr.NewContext(node.Variables())
			for mask := uint64(0); mask < 1<<len(ctx.NotPreset()); mask++ {
				ctx.SetNotPresets(mask)
				assert.Equal(t, node.Eval(ctx), reparsed.Eval(ctx), "mask %b", mask)
			}
		})
	}
}

func TestDump(t *testing.T) {
	node := boolexpr.NewBinary(
		boolexpr.IMP,
		boolexpr.NewNot(boolexpr.NewVariable("a")),
		boolexpr.NewBinary(boolexpr.XOR, boolexpr.NewValue(true), boolexpr.NewValue(false)),
	)
	assert.Equal(t, "Imp(Neg(Variable(a)),Xor(Value(1),Value(0)))", node.Dump())
	assert.Equal(t, "!a => 1 ^ 0", node.String())
}

func TestWalk(t *testing.T) {
	node, err := boolexpr.New("(a | !b) & 1")
	require.NoError(t, err)

	var visited []string
	for n := range node.Walk() {
		visited = append(visited, n.Operator.String())
	}
	assert.Equal(t, []string{"And", "Or", "Variable", "Neg", "Variable", "Value"}, visited)

	t.Run("stops early", func(t *testing.T) {
		var count int
		for range node.Walk() {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count)
	})

	t.Run("restartable", func(t *testing.T) {
		seq := node.Walk()
		first := slices.Collect(seq)
		second := slices.Collect(seq)
		assert.Equal(t, first, second)
		assert.Len(t, first, 6)
	})
}

func TestNode_Variables(t *testing.T) {
	testCases := map[string][]string{
		"1":                       {},
		"a":                       {"a"},
		"b & a | b":               {"a", "b"},
		"Zeta & alpha & beta":     {"Zeta", "alpha", "beta"},
		"(x => y) = !(y ^ x)":     {"x", "y"},
		"!a & b ^ c | d = e => f": {"a", "b", "c", "d", "e", "f"},
	}

	for expression, expected := range testCases {
		t.Run(expression, func(t *testing.T) {
			node, err := boolexpr.New(expression)
			require.NoError(t, err)
			assert.ElementsMatch(t, expected, node.Variables())
			assert.True(t, slices.IsSorted(node.Variables()))
		})
	}
}

package truthtable

import (
	"errors"
	"fmt"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/samber/lo"
)

// MaxFreeVariables is the most not-preset variables a table can have; row
// indexes are uint64 bit masks.
const MaxFreeVariables = 63

var ErrTooManyVariables = errors.New("too many free variables")

// Row is one assignment of all variables and the expression's value under
// it. Bit j of Index is the value of the j-th free variable.
type Row struct {
	Index  uint64
	Values map[string]bool
	Result bool
}

type Table struct {
	// All variables referenced by the expression, sorted
	Variables []string
	// The variables that weren't preset, in bit order
	Free []string

	Rows []Row
}

// RowCount is the number of rows the table for ctx has: 2^k for k
// not-preset variables.
func RowCount(ctx *boolexpr.Context) (uint64, error) {
	free := len(ctx.NotPreset())
	if free > MaxFreeVariables {
		return 0, fmt.Errorf("%w: %d, at most %d are supported", ErrTooManyVariables, free, MaxFreeVariables)
	}
	return 1 << uint(free), nil
}

// Each evaluates expr once per assignment of the not-preset variables of
// ctx, in increasing row index order, and hands every row to fn. Iteration
// stops early if fn returns false.
//
// ctx is left holding the values of the last row visited.
func Each(expr *boolexpr.Node, ctx *boolexpr.Context, fn func(Row) bool) error {
	count, err := RowCount(ctx)
	if err != nil {
		return err
	}

	for i := uint64(0); i < count; i++ {
		ctx.SetNotPresets(i)
		row := Row{
			Index:  i,
			Values: ctx.Values(),
			Result: expr.Eval(ctx),
		}
		if !fn(row) {
			break
		}
	}
	return nil
}

// Build collects every row of the truth table.
func Build(expr *boolexpr.Node, ctx *boolexpr.Context) (*Table, error) {
	table := &Table{
		Variables: ctx.Variables(),
		Free:      ctx.NotPreset(),
	}

	err := Each(expr, ctx, func(row Row) bool {
		table.Record(row)
		return true
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

// Record appends a row to the table
func (t *Table) Record(row Row) {
	t.Rows = append(t.Rows, row)
}

// Satisfying returns the rows where the expression is true.
func (t *Table) Satisfying() []Row {
	return lo.Filter(t.Rows, func(row Row, _ int) bool {
		return row.Result
	})
}

func (t *Table) TrueCount() int {
	return lo.CountBy(t.Rows, func(row Row) bool {
		return row.Result
	})
}

// Satisfiable reports whether at least one row is true.
func (t *Table) Satisfiable() bool {
	return lo.SomeBy(t.Rows, func(row Row) bool {
		return row.Result
	})
}

// Tautology reports whether every row is true.
func (t *Table) Tautology() bool {
	return lo.EveryBy(t.Rows, func(row Row) bool {
		return row.Result
	})
}

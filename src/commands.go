package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/eriklarko/truth-table/src/truthtable"
	"github.com/midbel/cli"
	"github.com/samber/lo"
)

func tableCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:    "table",
		Summary: "print the truth table of an expression",
		Handler: &TableCmd{name: "table", app: a},
	}
}

func evalCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:    "eval",
		Summary: "evaluate an expression with every variable preset",
		Handler: &EvalCmd{name: "eval", app: a},
	}
}

func dumpCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:    "dump",
		Summary: "print the parsed expression tree",
		Handler: &PrintCmd{name: "dump", app: a, print: (*boolexpr.Node).Dump},
	}
}

func fmtCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:    "fmt",
		Summary: "print an expression in canonical form",
		Handler: &PrintCmd{name: "fmt", app: a, print: (*boolexpr.Node).String},
	}
}

func varsCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:    "vars",
		Summary: "list the variables of an expression",
		Handler: &PrintCmd{name: "vars", app: a, print: func(node *boolexpr.Node) string {
			return strings.Join(node.Variables(), "\n")
		}},
	}
}

// PrintCmd parses a single expression and prints something derived from
// its tree.
type PrintCmd struct {
	name  string
	app   *app
	print func(*boolexpr.Node) string
}

func (c *PrintCmd) Run(args []string) error {
	if isVariableNamed(args) {
		return c.app.tableOf(c.name, args)
	}

	node, err := c.app.parse(args)
	if err != nil {
		return err
	}
	if out := c.print(node); out != "" {
		c.app.ui.Printf("%s\n", out)
	}
	return nil
}

type TableCmd struct {
	Format string

	name string
	app  *app
}

func (c *TableCmd) Run(args []string) error {
	set := cli.NewFlagSet("table")
	set.StringVar(&c.Format, "f", c.app.config.Format, "output format, one of table, csv or yaml")
	if err := set.Parse(args); err != nil {
		return err
	}

	args = set.Args()
	if len(args) == 0 {
		args = []string{c.name}
	}
	expression, presets := args[0], args[1:]

	builder := truthtable.NewBuilder(c.app.config, c.app.ui)
	table, err := builder.Build(expression, presets)
	if err != nil {
		return c.app.report(expression, err)
	}
	return c.app.ui.PrintTable(table, c.Format)
}

type EvalCmd struct {
	name string
	app  *app
}

func (c *EvalCmd) Run(args []string) error {
	if isVariableNamed(args) {
		return c.app.tableOf(c.name, args)
	}
	expression, presets := args[0], args[1:]

	builder := truthtable.NewBuilder(c.app.config, c.app.ui)
	node, ctx, err := builder.Prepare(expression, presets)
	if err != nil {
		return c.app.report(expression, err)
	}

	result, err := node.Solve(ctx.Values())
	if err != nil {
		return err
	}
	c.app.ui.Printf("%s\n", map[bool]string{false: "0", true: "1"}[result])
	return nil
}

// isVariableNamed reports whether a subcommand got nothing but presets,
// meaning its name was the expression: `truthtable vars` or
// `truthtable eval +eval`.
func isVariableNamed(args []string) bool {
	return lo.EveryBy(args, func(arg string) bool {
		_, _, err := truthtable.ParsePreset(arg)
		return err == nil
	})
}

// tableOf prints the table of the single variable expression.
func (a *app) tableOf(expression string, presets []string) error {
	table := &TableCmd{name: expression, app: a}
	return table.Run(append([]string{expression}, presets...))
}

func (a *app) parse(args []string) (*boolexpr.Node, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected exactly one expression, got %d arguments", len(args))
	}

	node, err := boolexpr.New(args[0])
	if err != nil {
		return nil, a.report(args[0], err)
	}
	return node, nil
}

// report prints parse errors with their position in the expression. Other
// errors are returned for main to print.
func (a *app) report(expression string, err error) error {
	var errParse *boolexpr.ParseError
	if errors.As(err, &errParse) {
		a.ui.PrintParseError(a.name, expression, errParse)
		return errFail
	}
	return err
}

package tui

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/eriklarko/truth-table/src/config"
	"github.com/eriklarko/truth-table/src/truthtable"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// width of "*** error " plus ": parse error in '"
const parseErrorPrefixLen = 28

// PrintTable writes the table to the output in the given format, one of the
// config.Format* constants.
func (t *TUI) PrintTable(table *truthtable.Table, format string) error {
	switch format {
	case config.FormatTable, "":
		return WriteText(t.output, table)
	case config.FormatCSV:
		return WriteCSV(t.output, table)
	case config.FormatYAML:
		return WriteYAML(t.output, table)
	default:
		return fmt.Errorf("unknown output format '%s'", format)
	}
}

// WriteText writes the table as
//
//	| a | b ||   |
//	+---+---++---+
//	| 0 | 0 || 0 |
//
// with the result column last.
func WriteText(w io.Writer, table *truthtable.Table) error {
	var sb strings.Builder

	sb.WriteString("|")
	for _, name := range table.Variables {
		fmt.Fprintf(&sb, " %s |", name)
	}
	sb.WriteString("|   |\n")

	sb.WriteString("+")
	for _, name := range table.Variables {
		sb.WriteString(strings.Repeat("-", utf8.RuneCountInString(name)+2))
		sb.WriteString("+")
	}
	sb.WriteString("+---+\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}

	for _, row := range table.Rows {
		sb.Reset()
		sb.WriteString("|")
		for _, name := range table.Variables {
			sb.WriteString(strings.Repeat(" ", utf8.RuneCountInString(name)))
			fmt.Fprintf(&sb, "%s |", digit(row.Values[name]))
		}
		fmt.Fprintf(&sb, "| %s |\n", digit(row.Result))

		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes one record per row with a header of the variable names
// followed by "result".
func WriteCSV(w io.Writer, table *truthtable.Table) error {
	writer := csv.NewWriter(w)

	header := append(table.Variables[:len(table.Variables):len(table.Variables)], "result")
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range table.Rows {
		record := lo.Map(table.Variables, func(name string, _ int) string {
			return digit(row.Values[name])
		})
		if err := writer.Write(append(record, digit(row.Result))); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

type yamlRow struct {
	Values map[string]bool `yaml:"values,omitempty"`
	Result bool            `yaml:"result"`
}

type yamlTable struct {
	Variables []string  `yaml:"variables"`
	Free      []string  `yaml:"free"`
	Rows      []yamlRow `yaml:"rows"`
}

func WriteYAML(w io.Writer, table *truthtable.Table) error {
	out := yamlTable{
		Variables: table.Variables,
		Free:      table.Free,
		Rows: lo.Map(table.Rows, func(row truthtable.Row, _ int) yamlRow {
			return yamlRow{Values: row.Values, Result: row.Result}
		}),
	}

	encoder := yaml.NewEncoder(w)
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("failed to encode truth table: %w", err)
	}
	return encoder.Close()
}

// PrintError writes `*** error <app>: <message>` to the error output.
func (t *TUI) PrintError(app string, message string) {
	fmt.Fprintf(t.errOutput, "*** error %s: %s\n", app, message)
}

// PrintParseError reports err against the expression it came from, marking
// the offending span with tildes and a pointer below it.
func (t *TUI) PrintParseError(app string, expression string, err *boolexpr.ParseError) {
	t.PrintError(app, fmt.Sprintf("parse error in '%s'", expression))

	start := parseErrorPrefixLen + utf8.RuneCountInString(app) + err.Pos
	if err.Len > 0 {
		fmt.Fprintf(t.errOutput, "%s%s\n", strings.Repeat(" ", start), strings.Repeat("~", err.Len))
	}
	fmt.Fprintf(t.errOutput, "%s|\n", strings.Repeat(" ", start+err.Len/2))

	indent := max(start-utf8.RuneCountInString(err.Message)/2, 0)
	fmt.Fprintf(t.errOutput, "%s%s\n", strings.Repeat(" ", indent), err.Message)
}

func digit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

package truthtable

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/eriklarko/truth-table/src/config"
	"github.com/eriklarko/truth-table/src/environment"
)

var ErrTooManyRows = errors.New("too many rows")

// Asker asks the user a yes/no question, see tui.TUI.
type Asker interface {
	AskForever(question string, a ...any) bool
}

// Builder turns an expression and a list of preset arguments into a truth
// table.
type Builder struct {
	config *config.Config
	asker  Asker
}

func NewBuilder(config *config.Config, asker Asker) *Builder {
	return &Builder{
		config: config,
		asker:  asker,
	}
}

// Prepare parses the expression and creates a context for it with the
// presets applied.
func (b *Builder) Prepare(expression string, presets []string) (*boolexpr.Node, *boolexpr.Context, error) {
	node, err := boolexpr.New(expression)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("parsed expression", "expression", node.String(), "tree", node.Dump())

	ctx := boolexpr.NewContext(node.Variables())
	if err := b.ApplyPresets(ctx, presets); err != nil {
		return nil, nil, err
	}
	slog.Debug("applied presets", "variables", len(ctx.Variables()), "free", len(ctx.NotPreset()))

	return node, ctx, nil
}

// ApplyPresets presets ctx from `+name`/`-name` arguments. A malformed
// argument is an error. Presets of unknown variables, or of variables
// already preset, are logged and skipped.
func (b *Builder) ApplyPresets(ctx *boolexpr.Context, presets []string) error {
	for _, arg := range presets {
		name, value, err := ParsePreset(arg)
		if err != nil {
			return err
		}

		var errPreset *boolexpr.PresetError
		_, err = ctx.Preset(name, value)
		if errors.As(err, &errPreset) {
			// the expression can still be evaluated, the preset just
			// doesn't do anything
			slog.Warn("ignoring preset", "preset", arg, "error", err)
		} else if err != nil {
			return fmt.Errorf("failed to apply preset '%s': %w", arg, err)
		}
	}
	return nil
}

// Build parses the expression, applies the presets and enumerates all rows.
// Tables larger than the configured max rows need the user's confirmation,
// and are refused when not running interactively.
func (b *Builder) Build(expression string, presets []string) (*Table, error) {
	node, ctx, err := b.Prepare(expression, presets)
	if err != nil {
		return nil, err
	}

	rows, err := RowCount(ctx)
	if err != nil {
		return nil, err
	}
	if err := b.confirmSize(rows); err != nil {
		return nil, err
	}

	return Build(node, ctx)
}

func (b *Builder) confirmSize(rows uint64) error {
	if rows <= b.config.MaxRows {
		return nil
	}

	if environment.IsInteractive() {
		if b.asker.AskForever("%d rows to print. Continue? [y/N]: ", rows) {
			return nil
		}
		return fmt.Errorf("%w: %d rows, declined", ErrTooManyRows, rows)
	}

	slog.Warn("Truth table is larger than the configured limit.",
		"rows", rows,
		"max-rows", b.config.MaxRows,
		"hint", fmt.Sprintf("Preset some variables, run interactively, or raise max-rows in %s.", b.config.Path),
	)
	return fmt.Errorf("%w: %d rows, limit is %d", ErrTooManyRows, rows, b.config.MaxRows)
}

package e2e_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eriklarko/truth-table/src/config"
	"github.com/eriklarko/truth-table/src/environment"
	helpers_test "github.com/eriklarko/truth-table/src/helpers"
	"github.com/eriklarko/truth-table/src/truthtable"
	"github.com/eriklarko/truth-table/src/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthTable(t *testing.T) {
	// Capture log output
	logOutput := helpers_test.CaptureLogs(t)
	t.Cleanup(environment.ResetIsInteractive)
	environment.ForceSetIsInteractive(true)

	configFile := helpers_test.CreateTempFileWithContents(t, "format: csv\nmax-rows: 16\n")
	cfg, err := config.LoadConfig(configFile)
	require.NoError(t, err)

	t.Setenv(config.EnvFormat, config.FormatTable)
	require.NoError(t, cfg.ApplyEnv())

	var output bytes.Buffer
	ui := tui.New()
	ui.SetOutput(&output)
	ui.SetInput(strings.NewReader(""))

	builder := truthtable.NewBuilder(cfg, ui)
	table, err := builder.Build("(a => b) & c", []string{"+c", "-c", "+d"})
	require.NoError(t, err)
	require.NoError(t, ui.PrintTable(table, cfg.Format))

	expected := `| a | b | c ||   |
+---+---+---++---+
| 0 | 0 | 1 || 1 |
| 1 | 0 | 1 || 0 |
| 0 | 1 | 1 || 1 |
| 1 | 1 | 1 || 1 |
`
	assert.Equal(t, expected, output.String())

	assert.Contains(t, logOutput.String(), "variable 'c' preset twice - ignoring second time")
	assert.Contains(t, logOutput.String(), "no variable named 'd'")
}

func TestTruthTable_Confirmation(t *testing.T) {
	t.Cleanup(environment.ResetIsInteractive)

	configFile := helpers_test.CreateTempFileWithContents(t, "format: csv\nmax-rows: 2\n")
	cfg, err := config.LoadConfig(configFile)
	require.NoError(t, err)

	t.Run("accepted", func(t *testing.T) {
		environment.ForceSetIsInteractive(true)

		var output bytes.Buffer
		ui := tui.New()
		ui.SetOutput(&output)
		ui.SetInput(strings.NewReader("y\n"))

		table, err := truthtable.NewBuilder(cfg, ui).Build("a | b", nil)
		require.NoError(t, err)
		require.NoError(t, ui.PrintTable(table, cfg.Format))

		expected := "4 rows to print. Continue? [y/N]: " +
			"a,b,result\n" +
			"0,0,0\n" +
			"1,0,1\n" +
			"0,1,1\n" +
			"1,1,1\n"
		assert.Equal(t, expected, output.String())
	})

	t.Run("not interactive", func(t *testing.T) {
		helpers_test.CaptureLogs(t)
		environment.ForceSetIsInteractive(false)

		ui := tui.New()
		ui.SetOutput(&bytes.Buffer{})

		_, err := truthtable.NewBuilder(cfg, ui).Build("a | b", nil)
		assert.ErrorIs(t, err, truthtable.ErrTooManyRows)
	})
}

package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAskForever(t *testing.T) {
	tests := map[string]bool{
		"y\n":        true,
		"YES\n":      true,
		"n\n":        false,
		"no\n":       false,
		"\n":         false,
		"maybe\ny\n": true,
		"what\nno\n": false,
	}

	for input, expected := range tests {
		t.Run(strings.TrimSpace(input), func(t *testing.T) {
			var output bytes.Buffer
			ui := New()
			ui.SetInput(strings.NewReader(input))
			ui.SetOutput(&output)

			answer := ui.AskForever("%d rows to print. Continue? [y/N]: ", 70000)

			assert.Equal(t, expected, answer)
			assert.True(t, strings.HasPrefix(output.String(), "70000 rows to print. Continue? [y/N]: "))
		})
	}

	t.Run("asks again until answered", func(t *testing.T) {
		var output bytes.Buffer
		ui := New()
		ui.SetInput(strings.NewReader("maybe\nperhaps\nyes\n"))
		ui.SetOutput(&output)

		assert.True(t, ui.AskForever("continue? "))
		assert.Equal(t, "continue? continue? continue? ", output.String())
	})

	t.Run("closed input is a no", func(t *testing.T) {
		var output bytes.Buffer
		ui := New()
		ui.SetInput(strings.NewReader(""))
		ui.SetOutput(&output)

		assert.NotPanics(t, func() {
			assert.False(t, ui.AskForever("continue? "))
		})
		assert.Equal(t, "continue? \n", output.String())
	})

	t.Run("input closed after an unknown answer is a no", func(t *testing.T) {
		ui := New()
		ui.SetInput(strings.NewReader("maybe\n"))
		ui.SetOutput(&bytes.Buffer{})

		assert.False(t, ui.AskForever("continue? "))
	})
}

package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// TUI is the terminal the CLI talks to. Tables go to output, parse errors
// and prompts' failures to errOutput.
type TUI struct {
	input     io.Reader
	output    io.Writer
	errOutput io.Writer
}

func New() *TUI {
	return &TUI{
		input:     os.Stdin,
		output:    os.Stdout,
		errOutput: os.Stderr,
	}
}

func (t *TUI) SetInput(input io.Reader) {
	t.input = input
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

func (t *TUI) SetErrOutput(errOutput io.Writer) {
	t.errOutput = errOutput
}

func (t *TUI) Printf(format string, a ...any) {
	fmt.Fprintf(t.output, format, a...)
}

// AskForever asks a yes/no question until it gets an answer. An empty
// answer, or end of input, is a no.
func (t *TUI) AskForever(question string, a ...any) bool {
	var response string
	for {
		fmt.Fprintf(t.output, question, a...)
		_, err := fmt.Fscanln(t.input, &response)

		if err != nil {
			if err.Error() == "unexpected newline" {
				return false
			}
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				// keep whatever is printed next off the prompt line
				fmt.Fprintln(t.output)
				return false
			}
			slog.Error("failed to read user input", "error", err)
			panic("failed to read user input: " + err.Error())
		}

		switch strings.ToLower(response) {
		case "y", "yes":
			return true
		case "n", "no", "":
			return false
		}
	}
}

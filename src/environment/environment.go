package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides the terminal check, the CLI uses it for
// its -batch flag.
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// ResetIsInteractive removes any override set by ForceSetIsInteractive.
func ResetIsInteractive() {
	interactiveOverride = nil
}

// IsInteractive returns true if the code is run by a user with an
// interactive shell that can both see output and answer questions, false
// otherwise
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isTerminal(os.Stdout) && isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package truthtable

import (
	"fmt"
)

// InvalidPresetError is returned for preset arguments that aren't of the
// form `+name` or `-name`.
type InvalidPresetError struct {
	Arg string
}

func (e *InvalidPresetError) Error() string {
	return fmt.Sprintf("invalid preset '%s'", e.Arg)
}

// ParsePreset parses a preset argument. `+name` presets name to true and
// `-name` to false.
func ParsePreset(arg string) (string, bool, error) {
	if len(arg) < 2 {
		return "", false, &InvalidPresetError{Arg: arg}
	}

	switch arg[0] {
	case '+':
		return arg[1:], true, nil
	case '-':
		return arg[1:], false, nil
	default:
		return "", false, &InvalidPresetError{Arg: arg}
	}
}

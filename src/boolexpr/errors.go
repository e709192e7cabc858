package boolexpr

import (
	"fmt"
)

// ParseError is returned by Tokenize and Parse. Pos and Len locate the
// offending characters in the source text; a zero Len points between two
// characters.
type ParseError struct {
	Pos     int
	Len     int
	Message string
}

// NewParseError creates a new ParseError spanning len characters from pos.
func NewParseError(pos, len int, message string) error {
	return &ParseError{Pos: pos, Len: len, Message: message}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (at %d)", e.Message, e.Pos)
}

// UnknownVariableError is returned when an unknown variable is encountered.
type UnknownVariableError struct {
	VariableName string
}

// NewUnknownVariableError creates a new UnknownVariableError with the given variable name.
func NewUnknownVariableError(variableName string) error {
	return &UnknownVariableError{VariableName: variableName}
}

func (e UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable: %s", e.VariableName)
}

type PresetErrorKind int

const (
	// UnknownVariable means the preset names a variable the expression
	// doesn't reference. The preset is not applied.
	UnknownVariable PresetErrorKind = iota
	// AlreadyPreset means the variable was preset before. The first value
	// stands.
	AlreadyPreset
)

// PresetError is returned by Context.Preset. Neither kind leaves the
// context in a bad state, so callers may report it and carry on.
type PresetError struct {
	Kind     PresetErrorKind
	Variable string
}

func (e *PresetError) Error() string {
	switch e.Kind {
	case AlreadyPreset:
		return fmt.Sprintf("variable '%s' preset twice - ignoring second time", e.Variable)
	default:
		return fmt.Sprintf("no variable named '%s'", e.Variable)
	}
}

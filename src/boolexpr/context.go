package boolexpr

import (
	"fmt"
	"maps"
	"slices"

	"github.com/samber/lo"
)

// Context holds the values used by Node.Eval.
//
// The declared variables are fixed when the context is created. Each one is
// either preset to a fixed value, or assigned per row by SetNotPresets.
type Context struct {
	variables []string
	notPreset []string
	values    map[string]bool
}

// NewContext declares variables, usually the result of Node.Variables.
// Duplicates are ignored.
func NewContext(variables []string) *Context {
	declared := lo.Uniq(variables)
	slices.Sort(declared)

	return &Context{
		variables: declared,
		notPreset: slices.Clone(declared),
		values:    make(map[string]bool, len(declared)),
	}
}

// Variables returns all declared variable names, sorted.
func (c *Context) Variables() []string {
	return slices.Clone(c.variables)
}

// NotPreset returns the variables that haven't been preset, sorted. Bit j
// of a SetNotPresets mask belongs to the j-th of these.
func (c *Context) NotPreset() []string {
	return slices.Clone(c.notPreset)
}

// Preset fixes the value of a declared variable and removes it from the
// not-preset set. A variable can be preset once; the first value stands.
// Failures are *PresetError.
func (c *Context) Preset(name string, value bool) (bool, error) {
	if !slices.Contains(c.variables, name) {
		return false, &PresetError{Kind: UnknownVariable, Variable: name}
	}

	idx := slices.Index(c.notPreset, name)
	if idx < 0 {
		return c.values[name], &PresetError{Kind: AlreadyPreset, Variable: name}
	}

	c.notPreset = slices.Delete(c.notPreset, idx, idx+1)
	c.values[name] = value
	return value, nil
}

// Get returns the current value of a variable. Asking for a variable that
// has neither been preset nor assigned by SetNotPresets is a programming
// error and panics.
func (c *Context) Get(name string) bool {
	v, ok := c.values[name]
	if !ok {
		panic(fmt.Sprintf("boolexpr: variable '%s' has no value", name))
	}
	return v
}

// SetNotPresets assigns every not-preset variable from the bits of mask:
// the j-th not-preset variable gets bit j.
func (c *Context) SetNotPresets(mask uint64) {
	for j, name := range c.notPreset {
		c.values[name] = mask&(1<<uint(j)) != 0
	}
}

// Values returns a copy of the current assignment.
func (c *Context) Values() map[string]bool {
	return maps.Clone(c.values)
}

package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TriState is one of the three states a Tribool can be compared against.
type TriState int

const (
	Undefined TriState = iota
	True
	False
)

// Tribool is an optional boolean. The zero value is undefined, meaning the
// source data did not carry the flag at all.
type Tribool struct {
	value   bool
	defined bool
}

// NewTribool returns a defined flag holding b.
func NewTribool(b bool) Tribool {
	return Tribool{value: b, defined: true}
}

// UndefinedTribool returns the unset flag.
func UndefinedTribool() Tribool {
	return Tribool{}
}

// ParseTribool accepts "true"/"1", "false"/"0" and the empty string (undefined).
func ParseTribool(s string) (Tribool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Tribool{}, nil
	case "true", "1":
		return NewTribool(true), nil
	case "false", "0":
		return NewTribool(false), nil
	default:
		return Tribool{}, fmt.Errorf("invalid tribool value %q", s)
	}
}

func (t Tribool) IsDefined() bool {
	return t.defined
}

// Is reports whether the flag is in the given state. An undefined flag
// never equals True or False.
func (t Tribool) Is(state TriState) bool {
	switch state {
	case True:
		return t.defined && t.value
	case False:
		return t.defined && !t.value
	case Undefined:
		return !t.defined
	default:
		return false
	}
}

// Equals reports whether two flags hold the same state.
func (t Tribool) Equals(other Tribool) bool {
	return t == other
}

func (t Tribool) State() TriState {
	switch {
	case !t.defined:
		return Undefined
	case t.value:
		return True
	default:
		return False
	}
}

// Get returns the value and whether it was defined.
func (t Tribool) Get() (bool, bool) {
	return t.value, t.defined
}

// ValueOr returns the flag's value, or def when undefined.
func (t Tribool) ValueOr(def bool) bool {
	if !t.defined {
		return def
	}
	return t.value
}

func (t *Tribool) Set(b bool) {
	t.value = b
	t.defined = true
}

func (t *Tribool) Clear() {
	*t = Tribool{}
}

// Define assigns def only if the flag is still undefined.
func (t *Tribool) Define(def bool) {
	if !t.defined {
		t.Set(def)
	}
}

// Reverse flips a defined flag. Undefined stays undefined.
func (t Tribool) Reverse() Tribool {
	if !t.defined {
		return t
	}
	return NewTribool(!t.value)
}

// Ptr converts the flag to the *bool shape used by most config structs.
func (t Tribool) Ptr() *bool {
	if !t.defined {
		return nil
	}
	v := t.value
	return &v
}

// TriboolFromPtr is the inverse of Ptr.
func TriboolFromPtr(b *bool) Tribool {
	if b == nil {
		return Tribool{}
	}
	return NewTribool(*b)
}

func (t Tribool) String() string {
	switch t.State() {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "undefined"
	}
}

// IsZero lets encoders drop undefined flags under omitempty/omitzero.
func (t Tribool) IsZero() bool {
	return !t.defined
}

func (t Tribool) MarshalJSON() ([]byte, error) {
	if !t.defined {
		return []byte("null"), nil
	}
	return json.Marshal(t.value)
}

func (t *Tribool) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		t.Clear()
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("invalid tribool: %w", err)
	}
	t.Set(b)
	return nil
}

func (t Tribool) MarshalYAML() (interface{}, error) {
	if !t.defined {
		return nil, nil
	}
	return t.value, nil
}

// UnmarshalYAML decodes a boolean. yaml.v3 skips unmarshalers for null
// nodes and leaves struct fields untouched, so a null only reads as
// undefined when decoding into a fresh record. Use JSON to clear a flag on
// an existing record.
func (t *Tribool) UnmarshalYAML(node *yaml.Node) error {
	var b bool
	if err := node.Decode(&b); err != nil {
		return fmt.Errorf("invalid tribool: %w", err)
	}
	t.Set(b)
	return nil
}

var (
	_ json.Marshaler   = Tribool{}
	_ json.Unmarshaler = (*Tribool)(nil)
	_ yaml.Marshaler   = Tribool{}
	_ yaml.Unmarshaler = (*Tribool)(nil)
)

package form

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// State holds the current value of every form field.
//
// The zero value is the initial form: every field present and empty. A State
// is a plain value; assigning it copies all fields, so snapshots handed to the
// submission dispatcher or the export encoder never alias the live form.
type State struct {
	values [fieldCount]string
}

// Value is one field/value pair in fixed key order.
type Value struct {
	Field Field
	Value string
}

// NewState returns a State populated from values. Fields not present in the
// map stay empty.
func NewState(values map[Field]string) (State, error) {
	var s State
	for f, v := range values {
		if err := s.Set(f, v); err != nil {
			return State{}, err
		}
	}
	return s, nil
}

// Get returns the value of f, or "" for an unknown field.
func (s State) Get(f Field) string {
	if f.Validate() != nil {
		return ""
	}
	return s.values[f]
}

// Set replaces the value of f and leaves every other field untouched.
func (s *State) Set(f Field, value string) error {
	if err := f.Validate(); err != nil {
		return err
	}
	s.values[f] = value
	return nil
}

// Values returns every field with its value in the fixed key order.
func (s State) Values() []Value {
	out := make([]Value, fieldCount)
	for i := range out {
		out[i] = Value{Field: Field(i), Value: s.values[i]}
	}
	return out
}

// Map returns the form keyed by wire name.
func (s State) Map() map[string]string {
	out := make(map[string]string, fieldCount)
	for i, v := range s.values {
		out[fieldNames[i]] = v
	}
	return out
}

// MarshalJSON writes all twelve keys in the fixed key order.
func (s State) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range s.values {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(fieldNames[i])
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of string values. Unknown keys are ignored
// and missing keys are left empty.
func (s *State) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode form state: %w", err)
	}

	var next State
	for name, v := range raw {
		f, err := ParseField(name)
		if err != nil {
			continue
		}
		next.values[f] = v
	}
	*s = next
	return nil
}

package textkind

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText renders the plain string view with no metadata. Together
// with UnmarshalText this wires Text into encoding/json and every other
// codec honoring the encoding interfaces.
func (t Text[K]) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText validates the decoded value through the storage-wrapping
// constructor, never bypassing the kind's check. A rejected value fails
// with the generic kind message augmented with the predicate-level
// cause, e.g. "invalid title because value is empty".
func (t *Text[K]) UnmarshalText(data []byte) error {
	text, err := TryFromDynamic[K](Exclusive.FromString(string(data)))
	if err != nil {
		return decodeError[K](err)
	}
	*t = text
	return nil
}

// MarshalYAML renders the plain string view as a YAML scalar.
func (t Text[K]) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML decodes a YAML scalar and validates it like
// UnmarshalText.
func (t *Text[K]) UnmarshalYAML(node *yaml.Node) error {
	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}
	return t.UnmarshalText([]byte(value))
}

func decodeError[K Kind](err error) error {
	var withValue *ErrorWithValue[K, Dynamic]
	if errors.As(err, &withValue) {
		plain := withValue.WithoutValue()
		return fmt.Errorf("%s because %s", plain.Error(), plain.Cause())
	}
	return err
}

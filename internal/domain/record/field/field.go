package field

import (
	"fmt"
	"math"
	"strconv"
)

// Type is the value shape of a record field.
type Type string

// Field type constants.
const (
	// Text is a scalar string field.
	Text   Type = "text"
	List   Type = "list"
	Number Type = "number"
)

// MaxNameLength is the maximum length of a field name.
const MaxNameLength = 64

// IsValid checks if the type is one of the supported values.
func (t Type) IsValid() bool {
	return t == Text || t == List || t == Number
}

// Field is an immutable, named accessor into records of type R.
// Accessors report ok=false when the record does not carry the field.
type Field[R any] struct {
	name      string
	fieldType Type
	text      func(R) (string, bool)
	list      func(R) ([]string, bool)
	number    func(R) (float64, bool)
}

// NewText creates a scalar string field.
func NewText[R any](name string, get func(R) (string, bool)) Field[R] {
	return Field[R]{name: name, fieldType: Text, text: get}
}

// NewList creates a list-of-strings field.
func NewList[R any](name string, get func(R) ([]string, bool)) Field[R] {
	return Field[R]{name: name, fieldType: List, list: get}
}

// NewNumber creates a numeric field.
func NewNumber[R any](name string, get func(R) (float64, bool)) Field[R] {
	return Field[R]{name: name, fieldType: Number, number: get}
}

// NewLeadingInt creates a numeric field backed by a "<N> <unit>" string such as "8 years".
// Strings without a leading integer report the field as missing.
func NewLeadingInt[R any](name string, get func(R) (string, bool)) Field[R] {
	if get == nil {
		return Field[R]{name: name, fieldType: Number}
	}
	return NewNumber(name, func(r R) (float64, bool) {
		s, ok := get(r)
		if !ok {
			return 0, false
		}
		n, ok := LeadingInt(s)
		return float64(n), ok
	})
}

// TextOf creates a text field from a plain getter. The field is always present.
func TextOf[R any](name string, get func(R) string) Field[R] {
	if get == nil {
		return Field[R]{name: name, fieldType: Text}
	}
	return NewText(name, func(r R) (string, bool) { return get(r), true })
}

// ListOf creates a list field from a plain getter. A nil list is reported as missing.
func ListOf[R any](name string, get func(R) []string) Field[R] {
	if get == nil {
		return Field[R]{name: name, fieldType: List}
	}
	return NewList(name, func(r R) ([]string, bool) {
		v := get(r)
		return v, v != nil
	})
}

// NumberOf creates a number field from a plain getter. NaN is reported as missing.
func NumberOf[R any](name string, get func(R) float64) Field[R] {
	if get == nil {
		return Field[R]{name: name, fieldType: Number}
	}
	return NewNumber(name, func(r R) (float64, bool) {
		v := get(r)
		return v, !math.IsNaN(v)
	})
}

// Name returns the field name.
func (f Field[R]) Name() string { return f.name }

// FieldType returns the field's value shape.
func (f Field[R]) FieldType() Type { return f.fieldType }

// Text returns the scalar value. ok is false for missing values and non-text fields.
func (f Field[R]) Text(r R) (string, bool) {
	if f.text == nil {
		return "", false
	}
	return f.text(r)
}

// List returns the list value. ok is false for missing values and non-list fields.
func (f Field[R]) List(r R) ([]string, bool) {
	if f.list == nil {
		return nil, false
	}
	return f.list(r)
}

// Number returns the numeric value. ok is false for missing values and non-number fields.
func (f Field[R]) Number(r R) (float64, bool) {
	if f.number == nil {
		return 0, false
	}
	v, ok := f.number(r)
	if !ok || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Values flattens the field into its string values.
// Numbers are rendered with strconv.FormatFloat(v, 'f', -1, 64).
func (f Field[R]) Values(r R) []string {
	switch f.fieldType {
	case Text:
		if v, ok := f.Text(r); ok {
			return []string{v}
		}
	case List:
		if v, ok := f.List(r); ok {
			return v
		}
	case Number:
		if v, ok := f.Number(r); ok {
			return []string{strconv.FormatFloat(v, 'f', -1, 64)}
		}
	}
	return nil
}

func (f Field[R]) validate() error {
	if f.name == "" {
		return fmt.Errorf("field name is required")
	}
	if len(f.name) > MaxNameLength {
		return fmt.Errorf("field name %q too long (max %d)", f.name, MaxNameLength)
	}
	if !f.fieldType.IsValid() {
		return fmt.Errorf("invalid field type %q for %q", f.fieldType, f.name)
	}
	var hasAccessor bool
	switch f.fieldType {
	case Text:
		hasAccessor = f.text != nil
	case List:
		hasAccessor = f.list != nil
	case Number:
		hasAccessor = f.number != nil
	}
	if !hasAccessor {
		return fmt.Errorf("field %q has no accessor", f.name)
	}
	return nil
}

// LeadingInt extracts the integer at the start of s, the way "8 years" yields 8.
// Leading whitespace and a single sign are allowed. ok is false when no digit follows.
func LeadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		return 0, false
	}
	return n, true
}

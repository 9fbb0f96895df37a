package arg

import "strings"

// ValueKind indicates the shape of a resolved argument value.
type ValueKind int

const (
	// ValueSingle represents a single string value.
	ValueSingle ValueKind = iota

	// ValueMultiple represents a list of string values. It is reserved for
	// multi-value collection (Count > 1), which the scanner does not
	// currently populate.
	ValueMultiple
)

// String returns a string representation of the value kind.
func (vk ValueKind) String() string {
	if vk == ValueMultiple {
		return "Multiple"
	}

	return "Single"
}

// Value is the tagged variant holding an argument's resolved value.
// Exactly one of Single or Multiple is meaningful, selected by Kind.
type Value struct {
	Kind     ValueKind
	Single   string
	Multiple []string
}

// NewSingle creates a single-string value.
func NewSingle(s string) Value {
	return Value{Kind: ValueSingle, Single: s}
}

// NewMultiple creates a list value. It exists to reserve the multi-value
// slot of the variant; the scanner never constructs one.
func NewMultiple(s ...string) Value {
	return Value{Kind: ValueMultiple, Multiple: s}
}

// String returns the single value, or the list values joined by commas.
func (v Value) String() string {
	if v.Kind == ValueMultiple {
		return strings.Join(v.Multiple, ",")
	}

	return v.Single
}

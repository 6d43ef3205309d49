package pset

import (
	"errors"
	"fmt"
)

// ErrFrozen is returned when writing to a record that has been frozen.
var ErrFrozen = errors.New("record is frozen")

// ErrDuplicateParameter is returned when declaring a parameter name twice.
var ErrDuplicateParameter = errors.New("duplicate parameter")

// SchemaError reports a path that does not exist in a record's schema, or
// that cannot address a value (an index on a scalar, an index out of range).
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error at %q: %s", e.Path, e.Reason)
}

// TypeMismatchError reports a value whose type does not match the declared
// kind of the parameter it is assigned to.
type TypeMismatchError struct {
	Path   string
	Want   Kind
	Got    string
	Reason string
}

func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("type mismatch at %q: want %s, got %s", e.Path, e.Want, e.Got)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

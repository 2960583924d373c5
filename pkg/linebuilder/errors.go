package linebuilder

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAttribute       = errors.New("missing required attribute")
	ErrInvalidAttribute       = errors.New("invalid attribute")
	ErrMissingRouteGeometry   = errors.New("no route geometry")
	ErrAmbiguousRouteGeometry = errors.New("ambiguous route geometry")
	ErrNoStops                = errors.New("no stop points")
	ErrDuplicateIdentifier    = errors.New("duplicate identifier")
)

// InputError is a problem with a single input file. It never leaves partial data in the assembly.
type InputError struct {
	File  string
	Field string
	Err   error
}

func (e *InputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.File, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.File, e.Field, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

func inputError(file string, field string, err error) *InputError {
	return &InputError{File: file, Field: field, Err: err}
}

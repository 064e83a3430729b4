package eridian

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange   = errors.New("value out of range")
	ErrUnknownGlyph = errors.New("unknown glyph")
	ErrEmpty        = errors.New("empty numeral")
)

// OpError records which conversion failed and on what input.
type OpError struct {
	Op    string
	Input string
	Err   error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("eridian.%s %q: %v", e.Op, e.Input, e.Err)
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

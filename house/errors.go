package house

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid house config")
	ErrMissingFloor  = errors.New("missing floor grid")
	ErrGridMismatch  = errors.New("floor grid size mismatch")
)

// ValidationError names the offending config field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

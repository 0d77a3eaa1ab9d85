package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced id is not held by a store.
var ErrNotFound = errors.New("not found")

// ValidationError reports missing or invalid caller input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Invalid builds a ValidationError from a format string.
func Invalid(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err (or anything it wraps) is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

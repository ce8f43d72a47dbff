// ABOUTME: Validation errors for workout input
// ABOUTME: Typed error that callers can match with errors.Is and errors.As

package models

import (
	"errors"
	"fmt"
)

// ErrValidation matches any *ValidationError.
var ErrValidation = errors.New("invalid workout input")

// ValidationError reports a field that failed the numeric or type rules.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

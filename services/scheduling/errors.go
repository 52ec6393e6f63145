package scheduling

import (
	"errors"
	"fmt"
)

// ValidationError marks user-correctable input problems. These always stop
// processing before expansion, and long before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrSessionNotFound is returned when a pending schedule session has expired
// or was already consumed.
var ErrSessionNotFound = errors.New("schedule session not found or expired")

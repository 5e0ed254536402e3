package discovery

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrRequesterNotFound = errors.New("requester profile not found")
)

// FieldError identifies the offending filter field so callers can map
// it to a user-facing message deterministically.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e FieldError) Unwrap() error {
	return ErrValidation
}

func AsFieldError(err error) (*FieldError, bool) {
	var fe FieldError
	if errors.As(err, &fe) {
		return &fe, true
	}
	return nil, false
}

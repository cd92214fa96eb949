package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderNotFound is returned when no order exists for the given identifier.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderConflict is returned when an order identifier collides with an
	// existing one. The storage layer's unique constraint is the authority.
	ErrOrderConflict = errors.New("order id conflict")

	// ErrStorageUnavailable is returned when the store is unreachable or a
	// storage call exceeded its timeout.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError describes a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidValue is returned when a field has an invalid value.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidFormat is returned when a field has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidOptions is returned when a validator is configured in a way
	// that can never produce a matching grammar.
	ErrInvalidOptions = errors.New("invalid validator options")
)

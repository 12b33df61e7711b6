package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity or slot does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingField indicates a required field was left blank.
	// Wrapped with the field name, e.g. "company: missing required field".
	ErrMissingField = errors.New("missing required field")

	// ErrUnsupportedType indicates an unknown storage backend, provider or file type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrPersistence indicates a slot could not be written.
	// In-memory state keeps the mutation when this is returned.
	ErrPersistence = errors.New("persistence failed")

	// ErrGeneratorUnavailable indicates no AI generator is configured.
	// AI features return their fallback text.
	ErrGeneratorUnavailable = errors.New("generator unavailable")

	// ErrImageUnsupported indicates the configured generator cannot produce images.
	ErrImageUnsupported = errors.New("image generation unsupported")

	// ErrRateLimited indicates the provider quota was exceeded.
	ErrRateLimited = errors.New("rate limited")
)

// MissingField returns ErrMissingField annotated with the field name.
func MissingField(field string) error {
	return &fieldError{field: field}
}

type fieldError struct {
	field string
}

func (e *fieldError) Error() string {
	return e.field + ": " + ErrMissingField.Error()
}

func (e *fieldError) Unwrap() error {
	return ErrMissingField
}

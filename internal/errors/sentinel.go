package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrInvalidInput indicates a missing or empty component name.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyExists indicates the component directory is already present.
	// Callers treat it as informational rather than a failure.
	ErrAlreadyExists = errors.New("already exists")

	// ErrStorage indicates a filesystem failure while scaffolding.
	ErrStorage = errors.New("storage error")

	// ErrValidation indicates a configuration schema validation failure.
	ErrValidation = errors.New("validation error")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a template, file, or config was not found.
	ErrNotFound = errors.New("not found")
)

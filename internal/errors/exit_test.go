//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"nil error returns success", nil, ExitSuccess},
		{"already exists is informational", NewAlreadyExistsError("exists", "/x"), ExitSuccess},
		{"invalid input", NewInvalidInputError("name must not be empty", ""), ExitValidationError},
		{"validation error", ErrValidation, ExitValidationError},
		{"wrapped validation error", Wrap(ErrValidation, "schema check failed"), ExitValidationError},
		{"storage permission error", NewStorageError("write file", "/x/y", fs.ErrPermission), ExitPermissionDenied},
		{"storage error", NewStorageError("write file", "/x/y", errors.New("disk full")), ExitGeneralError},
		{"not found error", ErrNotFound, ExitNotFound},
		{"explicit exit error", NewExitError(errors.New("boom"), ExitNotFound), ExitNotFound},
		{"wrapped exit error", fmt.Errorf("outer: %w", NewExitError(errors.New("boom"), ExitValidationError)), ExitValidationError},
		{"unknown error returns general error", errors.New("unknown error"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Permission Denied", ExitCodeName(ExitPermissionDenied))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}

func TestExitErrorUnwrap(t *testing.T) {
	inner := NewInvalidInputError("empty", "")
	exitErr := NewExitError(inner, ExitValidationError)

	assert.Equal(t, inner.Error(), exitErr.Error())
	assert.True(t, errors.Is(exitErr, ErrInvalidInput))
}

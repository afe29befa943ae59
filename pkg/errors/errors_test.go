package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("id", "", "entity is missing its id")

	assert.Contains(t, err.Error(), "validation failed for field id")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.True(t, IsValidationError(err))
	assert.False(t, IsMergeError(err))
}

func TestValidationErrorWithoutField(t *testing.T) {
	err := &ValidationError{Message: "delta rejected"}
	assert.Equal(t, "validation failed: delta rejected", err.Error())
}

func TestMergeError(t *testing.T) {
	cause := errors.New("cannot parse version")
	err := NewMergeError("transcript-42", "weapons", "bad catalog version", cause)

	assert.Contains(t, err.Error(), "weapons")
	assert.Contains(t, err.Error(), "transcript-42")
	assert.True(t, errors.Is(err, ErrCorrupted))
	assert.True(t, IsMergeError(err))
	assert.False(t, IsValidationError(err))
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("weapon", "KS23")

	assert.Equal(t, "weapon with ID KS23 not found", err.Error())
	assert.True(t, IsNotFound(err))
}

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected token")
	err := NewParseError("json", "catalog.json", cause.Error(), cause)

	assert.Contains(t, err.Error(), "catalog.json")
	assert.Equal(t, cause, errors.Unwrap(err))

	bare := &ParseError{Format: "version", Message: "want major.minor.patch"}
	assert.Equal(t, "version parse error: want major.minor.patch", bare.Error())
}

func TestIOError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewIOError("write", "/tmp/catalog.json", cause)

	assert.Contains(t, err.Error(), "write")
	assert.Contains(t, err.Error(), "/tmp/catalog.json")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, WrapValidation("tags", nil))
	assert.NoError(t, WrapIO("read", "x", nil))
	assert.NoError(t, WrapParse("json", "x", nil))

	err := WrapValidation("notes", errors.New("too long"))
	assert.True(t, IsValidationError(err))
}

func TestErrorsSurviveWrapping(t *testing.T) {
	inner := NewValidationError("id", nil, "missing")
	wrapped := fmt.Errorf("normalizing delta: %w", inner)

	assert.True(t, IsValidationError(wrapped))

	var verr *ValidationError
	assert.True(t, errors.As(wrapped, &verr))
	assert.Equal(t, "id", verr.Field)
}

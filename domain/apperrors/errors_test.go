package apperrors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("title", "Title is required")
	assert.Equal(t, "title: Title is required", err.Error())
	assert.True(t, IsValidation(err))
	assert.True(t, IsValidation(fmt.Errorf("create: %w", err)))
	assert.False(t, IsValidation(ErrNotFound))

	assert.Equal(t, "bad input", (&ValidationError{Reason: "bad input"}).Error())
}

func TestDuplicateEmailIsValidation(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", ErrDuplicateEmail)
	assert.ErrorIs(t, wrapped, ErrDuplicateEmail)
	assert.True(t, IsValidation(wrapped))
}

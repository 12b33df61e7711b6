package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrMissingField", ErrMissingField},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrPersistence", ErrPersistence},
		{"ErrGeneratorUnavailable", ErrGeneratorUnavailable},
		{"ErrImageUnsupported", ErrImageUnsupported},
		{"ErrRateLimited", ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrMissingField,
		ErrUnsupportedType,
		ErrPersistence,
		ErrGeneratorUnavailable,
		ErrImageUnsupported,
		ErrRateLimited,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

func TestMissingField(t *testing.T) {
	err := MissingField("company")

	assert.True(t, errors.Is(err, ErrMissingField))
	assert.False(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "company: missing required field", err.Error())
}

func TestMissingField_Wrapped(t *testing.T) {
	err := fmt.Errorf("draft cover letter: %w", MissingField("role"))

	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Contains(t, err.Error(), "role")
}

package model

import (
	"errors"
	"fmt"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError(validation.Errors{
		"password": errors.New("the length must be between 8 and 72"),
		"email":    errors.New("must be a valid email address"),
		"name":     nil,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
	assert.Equal(t, "validation failed: email: must be a valid email address; password: the length must be between 8 and 72", verr.Error())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewValidationError_PassesThroughOtherErrors(t *testing.T) {
	assert.Equal(t, assert.AnError, NewValidationError(assert.AnError))
	assert.NoError(t, NewValidationError(validation.Errors{"name": nil}))
}

func TestErrEmailTaken_IsValidation(t *testing.T) {
	wrapped := fmt.Errorf("failed to save user: %w", ErrEmailTaken)
	assert.ErrorIs(t, wrapped, ErrValidation)
	assert.ErrorIs(t, wrapped, ErrEmailTaken)
}

func TestUser_HasRole(t *testing.T) {
	u := User{ID: uuid.New(), Roles: []Role{{Name: "user"}, {Name: "admin"}}}

	assert.True(t, u.HasRole("admin"))
	assert.False(t, u.HasRole("Admin"))
	assert.Equal(t, []string{"user", "admin"}, u.RoleNames())
}

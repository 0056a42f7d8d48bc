package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneDoesNotMutatePredefined(t *testing.T) {
	clone := Clone(ErrNotFound, "Teacher not found")
	assert.Equal(t, "Teacher not found", clone.Message)
	assert.Equal(t, "resource not found", ErrNotFound.Message)
	assert.Equal(t, http.StatusNotFound, clone.Status)
}

func TestBusinessRule(t *testing.T) {
	err := BusinessRule("Scheduled date cannot be in the past")
	assert.Equal(t, ErrBusinessRule.Code, err.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
	assert.Equal(t, "Scheduled date cannot be in the past", err.Message)
}

func TestFromValidationCollectsFields(t *testing.T) {
	type payload struct {
		Email    string `validate:"required,email"`
		Capacity int    `validate:"gt=0"`
	}

	verr := validator.New().Struct(payload{Email: "nope", Capacity: -1})
	require.Error(t, verr)

	appErr := FromValidation(verr)
	assert.Equal(t, ErrValidation.Code, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	require.Len(t, appErr.Details, 2)
	assert.Equal(t, "Email", appErr.Details[0].Field)
	assert.Equal(t, "must be a valid email address", appErr.Details[0].Message)
	assert.Equal(t, "must be greater than 0", appErr.Details[1].Message)
}

func TestFromErrorWrapsUnknown(t *testing.T) {
	plain := errors.New("boom")
	appErr := FromError(plain)
	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.ErrorIs(t, appErr, plain)
}

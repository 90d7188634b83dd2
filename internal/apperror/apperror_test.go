package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type form struct {
	Section    string `validate:"required"`
	Subsection string `validate:"required"`
}

func TestFieldErrors(t *testing.T) {
	err := validator.New().Struct(form{Section: "Seoul"})

	fields := FieldErrors(err)

	assert.Equal(t, map[string]string{"Subsection": "is required"}, fields)
}

func TestFieldErrors_NotValidator(t *testing.T) {
	assert.Empty(t, FieldErrors(errors.New("boom")))
}

func TestStatus(t *testing.T) {
	cause := errors.New("unreachable")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", Invalid("Both fields must be filled!"), http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("save: %w", Invalid("x")), http.StatusBadRequest},
		{"write", &WriteError{Collection: "notes", Err: cause}, http.StatusBadGateway},
		{"delete", &DeleteError{Collection: "notes", ID: "a", Err: cause}, http.StatusBadGateway},
		{"read", &ReadError{Collection: "notes", Err: cause}, http.StatusBadGateway},
		{"other", cause, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestErrorsUnwrap(t *testing.T) {
	cause := errors.New("timeout")

	assert.ErrorIs(t, &ReadError{Collection: "flights", Err: cause}, cause)
	assert.ErrorIs(t, &WriteError{Collection: "flights", ID: "1", Err: cause}, cause)
	assert.ErrorIs(t, &DeleteError{Collection: "flights", ID: "1", Err: cause}, cause)
	assert.Equal(t, "write flights: timeout", (&WriteError{Collection: "flights", Err: cause}).Error())
	assert.Equal(t, "write flights/1: timeout", (&WriteError{Collection: "flights", ID: "1", Err: cause}).Error())
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(FromValidator("Please fill out all fields.", nil)))
	assert.False(t, IsValidation(errors.New("x")))
}

func TestValidationErrorUnwrap(t *testing.T) {
	ve := &ValidationError{Message: "Invalid time format.", Err: ErrInvalidFormat}

	assert.ErrorIs(t, ve, ErrInvalidFormat)
	assert.NotErrorIs(t, Invalid("x"), ErrInvalidFormat)
}

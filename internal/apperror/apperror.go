// Package apperror defines the error taxonomy shared by the document store,
// the view controllers and the HTTP layer.
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var (
	ErrRequired      = errors.New("is required")
	ErrInvalidFormat = errors.New("has an invalid format")
)

// tagErrors maps validator tags to the message shown next to a field.
var tagErrors = map[string]error{
	"required": ErrRequired,
}

// ReadError reports a failed read of a collection. Views degrade it to an
// empty result set.
type ReadError struct {
	Collection string
	Err        error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Collection, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a rejected create or overwrite.
type WriteError struct {
	Collection string
	ID         string
	Err        error
}

func (e *WriteError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("write %s: %v", e.Collection, e.Err)
	}
	return fmt.Sprintf("write %s/%s: %v", e.Collection, e.ID, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// DeleteError reports a rejected delete.
type DeleteError struct {
	Collection string
	ID         string
	Err        error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("delete %s/%s: %v", e.Collection, e.ID, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }

// ValidationError blocks an action before any store call is made.
type ValidationError struct {
	Message string
	Fields  map[string]string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

// Invalid builds a ValidationError with a consolidated message.
func Invalid(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// FromValidator converts validator errors into a ValidationError carrying the
// consolidated message plus one entry per failing field.
func FromValidator(message string, err error) *ValidationError {
	return &ValidationError{Message: message, Fields: FieldErrors(err), Err: err}
}

// FieldErrors maps each failing field to a short message. Errors that are not
// validator errors yield an empty map.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)

	var validationErr validator.ValidationErrors
	if !errors.As(err, &validationErr) {
		return out
	}
	for _, e := range validationErr {
		msg := fmt.Sprintf("%s is invalid", e.Field())
		if v, ok := tagErrors[e.Tag()]; ok {
			msg = v.Error()
		}
		out[e.Field()] = msg
	}
	return out
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Status maps an error to the HTTP status used for action responses.
func Status(err error) int {
	var (
		ve *ValidationError
		we *WriteError
		de *DeleteError
		re *ReadError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &we), errors.As(err, &de), errors.As(err, &re):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

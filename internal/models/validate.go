package models

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AnshRaj112/tripboard-backend/internal/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so messages line up with form keys.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check validates form and wraps a failure with message.
func check(form any, message string) error {
	if err := validate.Struct(form); err != nil {
		return apperror.FromValidator(message, err)
	}
	return nil
}

// timeFormatError blocks a save whose timestamps did not parse. Both fields
// are reported because both are cleared in the echoed form.
func timeFormatError(message string, fields ...string) error {
	ve := &apperror.ValidationError{
		Message: message,
		Fields:  make(map[string]string, len(fields)),
		Err:     apperror.ErrInvalidFormat,
	}
	for _, f := range fields {
		ve.Fields[f] = apperror.ErrInvalidFormat.Error()
	}
	return ve
}

// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "budget/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator reports the first failing field as a 400 validation error.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that names fields by their json tag.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.WithStack(err)
	}

	return domainerrors.Validation(message(fieldErrs[0]))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is required.", fe.Field())
	case "max":
		return fmt.Sprintf("'%s' is too long.", fe.Field())
	case "min":
		return fmt.Sprintf("'%s' is too short.", fe.Field())
	case "oneof":
		return fmt.Sprintf("Invalid '%s'.", fe.Field())
	default:
		return fmt.Sprintf("'%s' is invalid.", fe.Field())
	}
}

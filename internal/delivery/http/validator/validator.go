// Package validator adapts go-playground/validator to echo's Validator
// interface and translates failures into the domain validation error.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "around/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator on top of go-playground/validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New constructs the validator. Field names in messages come from the json
// (or param, for path parameters) tag so diagnostics match the wire names.
func New() *RequestValidator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "param"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	return &RequestValidator{validate: validate}
}

// Validate checks the struct against its validate tags. The first failing
// field deterministically produces the domain ValidationError; handlers never
// see partially validated input.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
		return domainerrors.NewValidationError(fieldMessage(fieldErrors[0]))
	}

	return domainerrors.NewValidationError("Invalid request data")
}

// fieldMessage renders a stable, schema-style message for one failed field.
func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%q length must be at most %s characters long", field, fe.Param())
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "http_url":
		return fmt.Sprintf("%q must be a valid URL", field)
	case "mongodb":
		return fmt.Sprintf("%q must be a 24-character hex id", field)
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}

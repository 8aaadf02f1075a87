// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"aurelise/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates request DTOs through their `validate` tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the echo validator.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return errors.New(describe(fieldErrs))
		}

		return errors.WithStack(err)
	}

	return nil
}

// describe renders field errors as "field: rule" pairs joined by semicolons.
func describe(fieldErrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		parts = append(parts, fieldErr.Namespace()+": "+rule)
	}

	return strings.Join(parts, "; ")
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}

// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	"lostfound/internal/domain/entity"
	"lostfound/internal/proximity"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Validator validates bound request structs.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator that reports JSON field names and knows the
// "postkind" and "latlng" rules.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})

	_ = validate.RegisterValidation("postkind", func(fl validator.FieldLevel) bool {
		return entity.PostKind(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("latlng", func(fl validator.FieldLevel) bool {
		_, ok := proximity.ParseCoordinate(fl.Field().String())

		return ok
	})

	return &Validator{validate: validate}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// FieldErrors flattens a validation failure for the response body. It returns nil for other errors.
func FieldErrors(err error) []FieldError {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, FieldError{
			Field: fieldErr.Field(),
			Rule:  fieldErr.Tag(),
			Param: fieldErr.Param(),
		})
	}

	return fields
}

package usecase

import (
	"reflect"
	"strings"

	"voll/internal/domain/entity"
	"voll/internal/errors"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// NewValidate returns a validator that knows the registry's custom rules
// and reports fields by their JSON names.
func NewValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("specialty", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseSpecialty(fl.Field().String())

		return ok
	})

	return v
}

// FieldErrors flattens a validator error into per-field details.
// It returns nil when err is not a validation error.
func FieldErrors(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		// Namespace is "RegisterDoctorInput.address.zip_code"; drop the struct name.
		_, path, _ := strings.Cut(fe.Namespace(), ".")
		fields = append(fields, FieldError{
			Field: path,
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return fields
}

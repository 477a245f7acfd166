// Package validator adapts the usecase validation rules to echo.
package validator

import (
	domainerrors "voll/internal/domain/errors"
	"voll/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns an echo validator sharing the usecase rules.
func New() *CustomValidator {
	return &CustomValidator{validate: usecase.NewValidate()}
}

// Validate reports field errors as a VALIDATION_FAILED AppError.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(usecase.FieldErrors(err))
	}

	return nil
}

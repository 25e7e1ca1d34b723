// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "farmkitchen/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates the request validator used by the Echo server.
func New() *echoValidator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate runs struct-tag validation and converts failures into the
// application's validation error.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

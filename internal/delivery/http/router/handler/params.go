package handler

import (
	domainerrors "farmkitchen/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathUUID parses a UUID path parameter, failing with an input error on
// malformed values.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WithDetails("Invalid " + name)
	}

	return id, nil
}

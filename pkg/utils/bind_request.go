package utils

import (
	"github.com/Ramsey-B/rose/pkg/errors"
	"github.com/labstack/echo/v4"
)

// BindRequest decodes the request body into T and runs struct validation on it.
func BindRequest[T any](c echo.Context) (T, error) {
	var v T

	if err := c.Bind(&v); err != nil {
		return v, errors.NewValidationError(err)
	}

	return Validate(v)
}

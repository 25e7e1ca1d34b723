// Package response holds the wire shapes shared by all HTTP handlers.
package response

import "github.com/labstack/echo/v4"

// ErrorBody is the single error shape the API returns.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error writes the status code and the standard error body.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Error: message})
}

// Package response holds the unified JSON envelope helpers for handlers.
package response

import (
	"net/http"

	domainerrors "arenago/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Envelope is the success variant of the unified API response. Errors
// reuse domainerrors.Response so middleware and handlers emit the same
// shape.
type Envelope struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`    // HTTP status code
	Message string `json:"message"` // User-friendly message
	Data    any    `json:"data,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Envelope{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

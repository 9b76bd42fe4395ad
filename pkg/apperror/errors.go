package apperror

import (
	"errors"
	"net/http"
)

// AppError is an error that knows which HTTP status it maps to.
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes a validation failure on a single field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Sentinel errors shared across services.
var (
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest         = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrConflict           = &AppError{Code: http.StatusConflict, Message: "Resource already exists"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid email or password"}
	ErrInvalidToken       = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}
)

// NewAppError builds an error with an explicit status code.
func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// NewValidationError builds a 422 carrying per-field failures.
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError builds a 404 naming the missing resource.
func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: resource + " not found"}
}

// NewConflictError builds a 409 with the given message.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

// NewBadRequestError builds a 400 with the given message.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// IsAppError reports whether err wraps an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError unwraps err to an AppError, defaulting to a 500.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Code: http.StatusInternalServerError, Message: err.Error()}
}

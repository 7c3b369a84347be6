package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// Ledger failures. Every one of them aborts the call and leaves storage untouched.
var (
	ErrAlreadyInitialized = errors.New("already initialized")
	ErrNotInitialized     = errors.New("not initialized")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrMissingGoals       = errors.New("no goals found")
	ErrIndexOutOfRange    = errors.New("goal index out of bounds")
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)

// AppError carries an HTTP status alongside a client-facing message.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewBadRequestError creates a 400 AppError.
func NewBadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewUnauthorizedError creates a 401 AppError.
func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

// NewInternalServerError creates a 500 AppError.
func NewInternalServerError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message, nil)
}

// NewGatewayTimeoutError creates a 504 AppError, used when an upstream provider fails.
func NewGatewayTimeoutError(message string) *AppError {
	return NewAppError(http.StatusGatewayTimeout, message, nil)
}

// StatusCode maps an error from the core to the HTTP status returned to callers.
func StatusCode(err error) int {
	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
		return appErr.Code
	case errors.Is(err, ErrAlreadyInitialized):
		return http.StatusConflict
	case errors.Is(err, ErrNotInitialized):
		return http.StatusPreconditionFailed
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrMissingGoals), errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrIndexOutOfRange), errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrArithmeticOverflow):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

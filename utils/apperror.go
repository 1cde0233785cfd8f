package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the error type every service operation surfaces. Code is a
// stable machine-readable tag, Status the HTTP status it maps to.
type AppError struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(format string, args ...interface{}) *AppError {
	return &AppError{Code: "validationError", Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NewNotFound(format string, args ...interface{}) *AppError {
	return &AppError{Code: "notFound", Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Code: "unauthorized", Status: http.StatusUnauthorized, Message: message}
}

func NewForbidden(message string) *AppError {
	return &AppError{Code: "forbidden", Status: http.StatusForbidden, Message: message}
}

func NewConflict(format string, args ...interface{}) *AppError {
	return &AppError{Code: "conflict", Status: http.StatusConflict, Message: fmt.Sprintf(format, args...)}
}

func NewPaymentVerificationError(message string) *AppError {
	return &AppError{Code: "paymentVerificationFailed", Status: http.StatusBadRequest, Message: message}
}

// NewDependencyError wraps a storage or gateway failure. Callers surface it
// immediately; only the reconciler retries, on its next pass.
func NewDependencyError(message string, err error) *AppError {
	return &AppError{Code: "dependencyError", Status: http.StatusInternalServerError, Message: message, Err: err}
}

// AsAppError extracts an *AppError from an error chain, or wraps the error
// as a generic dependency failure.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewDependencyError("internal error", err)
}

// IsCode reports whether err carries the given AppError code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

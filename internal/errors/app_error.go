package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	// Location is set only for redirect errors and carries the canonical URL.
	Location string
	Err      error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeRedirect        = "MOVED_PERMANENTLY"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeDatabaseError   = "DATABASE_ERROR"
	ErrCodeUpstreamQuery   = "UPSTREAM_QUERY_ERROR"
	ErrCodeUpstreamTimeout = "UPSTREAM_TIMEOUT"
	ErrCodeSearchFailed    = "SEARCH_FAILED"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

// RedirectError signals that a canonical URL exists for the requested one.
// It is not a failure; handlers translate it into a 301 with Location set.
func RedirectError(location string) *AppError {
	e := NewAppError(ErrCodeRedirect, "resource moved permanently", http.StatusMovedPermanently)
	e.Location = location

	return e
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func DatabaseError(message string) *AppError {
	return NewAppError(ErrCodeDatabaseError, message, http.StatusInternalServerError)
}

func UpstreamQueryError(message string) *AppError {
	return NewAppError(ErrCodeUpstreamQuery, message, http.StatusInternalServerError)
}

func UpstreamTimeoutError(message string) *AppError {
	return NewAppError(ErrCodeUpstreamTimeout, message, http.StatusGatewayTimeout)
}

// SearchError wraps a failed product search. Callers render an empty result
// set with an error banner instead of failing the whole page.
func SearchError(err error) *AppError {
	return NewAppError(ErrCodeSearchFailed, "Search failed. Please try again.", http.StatusInternalServerError).WithError(err)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

func IsRedirect(err error) (*AppError, bool) {
	if appErr, ok := IsAppError(err); ok && appErr.Code == ErrCodeRedirect {
		return appErr, true
	}

	return nil, false
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}

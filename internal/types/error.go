package types

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	ValidationError      ErrorCode = "VALIDATION_ERROR"
	InvalidAddress       ErrorCode = "INVALID_ADDRESS"
	ServiceUnavailable   ErrorCode = "SERVICE_UNAVAILABLE"
)

func (e ErrorCode) String() string {
	return string(e)
}

// Error carries HTTP status alongside the underlying error.
// Err holds message that is safe to return to the caller, internal details must be logged instead
type Error struct {
	StatusCode int
	ErrorCode  ErrorCode
	Err        error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        fmt.Errorf("%s", msg),
	}
}

func NewInternalServiceError(msg string) *Error {
	return NewErrorWithMsg(http.StatusInternalServerError, InternalServiceError, msg)
}

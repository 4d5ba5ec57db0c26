package apperror

import (
	"errors"
	"fmt"
)

type Error struct {
	Code    string
	Message string
	Inner   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("error code: %s, message: %s", e.Code, e.Message)
}

func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	return errors.Is(e.Inner, target)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Inner
}

type ErrorCode int

const (
	ErrUnknown ErrorCode = iota + 1000001
	ErrInvalidArgument
	ErrInvalidURI
	ErrInvalidObjectData
	ErrInvalidResponse
	ErrConnectionFailure
	// Add more error codes here...
)

func wrapError(code ErrorCode, msg string, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    fmt.Sprintf("%d", code),
		Message: fmt.Sprintf("%s: %s", msg, err.Error()),
		Inner:   err,
	}
}

// NewInvalidArgumentError ...
func NewInvalidArgumentError(param, content string) *Error {
	return wrapError(ErrInvalidArgument, "invalid argument", fmt.Errorf("%s %s is invalid", param, content))
}

// NewInvalidURIError ...
func NewInvalidURIError(err error) *Error {
	return wrapError(ErrInvalidURI, "invalid URI", err)
}

// NewInvalidObjectDataError ...
func NewInvalidObjectDataError(err error) *Error {
	return wrapError(ErrInvalidObjectData, "invalid object data", err)
}

// NewInvalidResponseError ...
func NewInvalidResponseError(err error) *Error {
	return wrapError(ErrInvalidResponse, "invalid API response", err)
}

// NewConnectionFailureError ...
func NewConnectionFailureError(err error) *Error {
	return wrapError(ErrConnectionFailure, "could not connect to API endpoint", err)
}

// NewInternalError ...
func NewInternalError(err error) *Error {
	return wrapError(ErrUnknown, "internal error", err)
}

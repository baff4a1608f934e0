package constants

import (
	"errors"
	"net/http"
)

// CodedError is an error that knows which HTTP status it should be rendered with.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound        = NewCodedError(http.StatusNotFound, "not found")
	ErrUnauthorized      = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrMissingAuthCookie = NewCodedError(http.StatusUnauthorized, "missing auth cookie")
	ErrStoreDisabled     = NewCodedError(http.StatusServiceUnavailable, "report archive is not configured")
	ErrBadRequest        = NewCodedError(http.StatusBadRequest, "bad request")
)

// Coder is implemented by every error that carries its own HTTP status.
type Coder interface {
	Code() int
}

// CodeOf walks the error chain and returns the first status found, or 500.
func CodeOf(err error) int {
	var c Coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return http.StatusInternalServerError
}

package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ValidationError is returned before any network call when a required local
// parameter is missing or malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Reason
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Code() int { return http.StatusBadRequest }

// HTTPError is a non-2xx answer from the remote API.
type HTTPError struct {
	Status  int
	Body    string
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Code keeps client errors as they are and reports upstream failures as a bad gateway.
func (e *HTTPError) Code() int {
	if e.Status >= 400 && e.Status < 500 {
		return e.Status
	}
	return http.StatusBadGateway
}

// TimeoutError means our own deadline elapsed before the API answered.
type TimeoutError struct {
	Path string
}

func (e *TimeoutError) Error() string {
	return "request timeout: the AI service is taking longer than expected, please try again"
}

func (e *TimeoutError) Code() int { return http.StatusGatewayTimeout }

// GatewayTimeoutError means the API itself answered 504.
type GatewayTimeoutError struct {
	Path    string
	Message string
}

func (e *GatewayTimeoutError) Error() string {
	return "504 gateway timeout: the AI service is currently experiencing high demand, please try again in a few moments"
}

func (e *GatewayTimeoutError) Code() int { return http.StatusGatewayTimeout }

// NetworkError wraps transport failures such as DNS errors or refused connections.
type NetworkError struct {
	Path string
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %v", e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Code() int { return http.StatusBadGateway }

// IsTimeoutClass reports whether err is a local timeout or an upstream 504.
func IsTimeoutClass(err error) bool {
	var te *TimeoutError
	var ge *GatewayTimeoutError
	return errors.As(err, &te) || errors.As(err, &ge)
}

// IsValidation reports whether err was raised before any network call.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

type errorEnvelope struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// newHTTPError prefers the {error:{message}} body and falls back to the status text.
func newHTTPError(status int, body []byte) *HTTPError {
	e := &HTTPError{Status: status, Body: string(body)}

	var env errorEnvelope
	if err := codec.Unmarshal(body, &env); err == nil && env.Error != nil && strings.TrimSpace(env.Error.Message) != "" {
		e.Message = env.Error.Message
		return e
	}

	e.Message = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	return e
}

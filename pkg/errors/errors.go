// Package errors defines the error taxonomy returned by the monnify client.
//
// Every failure surfaces as an *Error carrying one of the Code constants. The
// exported sentinels match any *Error with the same code:
//
//	if errors.Is(err, apperrors.ErrAuthentication) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeConfiguration     = "CONFIGURATION_ERROR"
	CodeUnsupportedMethod = "UNSUPPORTED_METHOD"
	CodeAuthentication    = "AUTHENTICATION_ERROR"
	CodeTransport         = "TRANSPORT_ERROR"
	CodeDecode            = "DECODE_ERROR"
	CodeValidation        = "VALIDATION_ERROR"
)

// Error is a structured client error.
type Error struct {
	Code       string
	Message    string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = UserMessage(e.Code)
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap returns the original error for error chaining.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a bare sentinel with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Message != "" || t.Err != nil || t.StatusCode != 0 {
		return e == t
	}
	return e.Code == t.Code
}

// New creates a new Error.
func New(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Sentinels for errors.Is.
var (
	ErrConfiguration     = &Error{Code: CodeConfiguration}
	ErrUnsupportedMethod = &Error{Code: CodeUnsupportedMethod}
	ErrAuthentication    = &Error{Code: CodeAuthentication}
	ErrTransport         = &Error{Code: CodeTransport}
	ErrDecode            = &Error{Code: CodeDecode}
	ErrValidation        = &Error{Code: CodeValidation}
)

// ErrMissingCredentials is wrapped by the configuration error raised when the
// API key or secret key cannot be resolved.
var ErrMissingCredentials = errors.New("missing credentials")

func Configuration(message string, err error) *Error {
	return New(CodeConfiguration, message, err)
}

func UnsupportedMethod(method string) *Error {
	return New(CodeUnsupportedMethod,
		fmt.Sprintf("invalid HTTP method %q, supported methods are GET, POST, PUT, DELETE", method), nil)
}

func Authentication(message string, err error) *Error {
	return New(CodeAuthentication, message, err)
}

func Transport(message string, err error) *Error {
	return New(CodeTransport, message, err)
}

// Decode builds a decode error; status is the HTTP status of the offending response.
func Decode(message string, status int, err error) *Error {
	e := New(CodeDecode, message, err)
	e.StatusCode = status
	return e
}

func Validation(message string, err error) *Error {
	return New(CodeValidation, message, err)
}

// CodeOf returns the code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

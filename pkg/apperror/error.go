// Package apperror maps failures to HTTP status codes and the JSON error
// envelope used by every endpoint:
//
//	{"error": {"code": "not_found", "message": "Resource not found"}}
package apperror

import (
	"errors"
	"net/http"
)

type Error struct {
	HTTPStatus int
	Code       string
	Message    string

	// Internal is logged, never sent to the client.
	Internal error
	Details  map[string]any
}

func New(status int, code, message string) *Error {
	return &Error{HTTPStatus: status, Code: code, Message: message}
}

var (
	ErrBadRequest         = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrNotFound           = New(http.StatusNotFound, "not_found", "Resource not found")
	ErrMethodNotAllowed   = New(http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	ErrInternal           = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
	ErrServiceUnavailable = New(http.StatusServiceUnavailable, "service_unavailable", "Service unavailable")
)

func (e *Error) Error() string {
	s := e.Code + ": " + e.Message
	if e.Internal != nil {
		s += " (" + e.Internal.Error() + ")"
	}
	return s
}

func (e *Error) Unwrap() error { return e.Internal }

// The With helpers copy, so package sentinels stay untouched.

func (e *Error) WithInternal(err error) *Error {
	return e.with(func(c *Error) { c.Internal = err })
}

func (e *Error) WithMessage(message string) *Error {
	return e.with(func(c *Error) { c.Message = message })
}

func (e *Error) WithDetails(details map[string]any) *Error {
	return e.with(func(c *Error) { c.Details = details })
}

func (e *Error) with(set func(*Error)) *Error {
	c := *e
	set(&c)
	return &c
}

// Response is the wire envelope.
type Response struct {
	Error ResponseBody `json:"error"`
}

type ResponseBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Body() Response {
	return Response{Error: ResponseBody{Code: e.Code, Message: e.Message, Details: e.Details}}
}

// From returns the *Error inside err, or ErrInternal wrapping err.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal.WithInternal(err)
}

// Package apperr carries the error taxonomy used across stores and
// handlers: every failure is an *Error holding the HTTP status it maps to
// plus the user-facing message. A single middleware renders them.
package apperr

import (
	"errors"
	"net/http"
)

// DefaultMessage is what clients see when something unexpected blows up.
const DefaultMessage = "We're having technical issues. Please try again later"

type Error struct {
	Status  int
	Message string
	// Friendly is an optional explanatory message rendered alongside the
	// error (e.g. the demo-account delete refusal).
	Friendly string
	// IsDemoUser marks demo-policy refusals so the client can render a
	// specific explanation instead of a generic failure.
	IsDemoUser bool
	// Err is the underlying cause, if any. Never shown in release mode.
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Message: msg}
}

func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: DefaultMessage, Err: err}
}

// DemoForbidden is the demo-account policy refusal: a demo user tried to
// delete an original demo task.
func DemoForbidden() *Error {
	return &Error{
		Status:     http.StatusForbidden,
		Message:    "Demo users cannot delete original demo tasks",
		Friendly:   "Demo users can only delete tasks they create themselves",
		IsDemoUser: true,
	}
}

// From normalizes any error into an *Error; non-taxonomy errors become
// Internal so nothing leaks to clients.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}

// internal/engine/errors.go
package engine

import (
	"errors"
	"fmt"
)

// ErrNoRow is the sentinel store adapters return (wrapped or bare) when a
// requested row does not exist. The engine maps it to a NotFound error so it
// never leaks a driver error across the boundary.
var ErrNoRow = errors.New("no matching row")

// Code classifies an engine failure. Callers map codes (or the StatusCode
// carried alongside) onto their transport.
type Code string

const (
	CodeNotFound           Code = "not_found"
	CodeInvalidState       Code = "invalid_state"
	CodeInvalidMove        Code = "invalid_move"
	CodePreconditionFailed Code = "precondition_failed"
	CodeResourceExhausted  Code = "resource_exhausted"
	CodeDependencyFailure  Code = "dependency_failure"
)

// Error is the single error value the engine surfaces. Every public operation
// returns either a success value or an *Error; nothing else crosses the
// boundary.
type Error struct {
	Code       Code   `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func notFound(format string, args ...interface{}) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...), StatusCode: 404}
}

func invalidState(format string, args ...interface{}) *Error {
	return &Error{Code: CodeInvalidState, Message: fmt.Sprintf(format, args...), StatusCode: 409}
}

func invalidMove(format string, args ...interface{}) *Error {
	return &Error{Code: CodeInvalidMove, Message: fmt.Sprintf(format, args...), StatusCode: 400}
}

func preconditionFailed(format string, args ...interface{}) *Error {
	return &Error{Code: CodePreconditionFailed, Message: fmt.Sprintf(format, args...), StatusCode: 400}
}

func resourceExhausted(format string, args ...interface{}) *Error {
	return &Error{Code: CodeResourceExhausted, Message: fmt.Sprintf(format, args...), StatusCode: 409}
}

func dependency(cause error, format string, args ...interface{}) *Error {
	return &Error{Code: CodeDependencyFailure, Message: fmt.Sprintf(format, args...), StatusCode: 500, cause: cause}
}

// storeErr translates a store failure: ErrNoRow becomes NotFound with the
// given message, anything else becomes DependencyFailure.
func storeErr(cause error, format string, args ...interface{}) *Error {
	if errors.Is(cause, ErrNoRow) {
		return notFound(format, args...)
	}
	return dependency(cause, format, args...)
}

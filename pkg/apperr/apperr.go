package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	NotFound   Kind = "NOT_FOUND"
	Validation Kind = "VALIDATION_FAILED"
	Upstream   Kind = "UPSTREAM_FAILURE"
)

// Error is a failure tagged with a stable Kind. Msg is shown to clients,
// Err keeps the underlying cause for logs and the envelope's error field.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func NewNotFound(msg string) error {
	return &Error{Kind: NotFound, Msg: msg}
}

func NewValidation(msg string, err error) error {
	return &Error{Kind: Validation, Msg: msg, Err: err}
}

func NewUpstream(err error) error {
	return &Error{Kind: Upstream, Msg: "Internal Server Error", Err: err}
}

// KindOf reports the Kind of err, Upstream when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Upstream
}

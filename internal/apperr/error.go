package apperr

import (
	"context"
	"errors"
	"fmt"
)

type Error struct {
	Code Code
	Msg  string // returned to the client together with Code
	Err  error  // kept for logs only
}

func NewError(code Code, msg string, underlying error) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
		Err:  underlying,
	}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("[%s] %s", e.Code.String(), e.Msg)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code.String(), e.Msg, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// From converts any error into an *Error, keeping an existing code.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var aerr *Error
	if errors.As(err, &aerr) {
		return aerr
	}
	if errors.Is(err, context.Canceled) {
		return NewError(Canceled, "connection closed", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewError(DeadlineExceeded, "deadline exceeded", err)
	}
	return NewError(Unknown, "unknown error", err)
}

func IsCode(err error, code Code) bool {
	var aerr *Error
	if errors.As(err, &aerr) {
		return aerr.Code == code
	}
	return false
}

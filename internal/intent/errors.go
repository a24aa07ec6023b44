package intent

import (
	"errors"
	"fmt"

	"github.com/sandeepkv93/shoplist/internal/model"
)

type ErrorCode string

const (
	ErrCodeNotFound      ErrorCode = "not_found"
	ErrCodeInvalidInput  ErrorCode = "invalid_input"
	ErrCodeDisabled      ErrorCode = "disabled"
	ErrCodeUnknownAction ErrorCode = "unknown_action"
	ErrCodeInternal      ErrorCode = "internal"
)

// Error is returned by Dispatch when an event could not be applied. The
// store is unchanged and no render happened.
type Error struct {
	Action  Action
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Action, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func classify(action Action, err error) *Error {
	var ie *Error
	if errors.As(err, &ie) {
		return ie
	}
	code := ErrCodeInternal
	switch {
	case errors.Is(err, model.ErrNotFound):
		code = ErrCodeNotFound
	case errors.Is(err, model.ErrInvalidInput):
		code = ErrCodeInvalidInput
	}
	return &Error{Action: action, Code: code, Message: err.Error(), Err: err}
}

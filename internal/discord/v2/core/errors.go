package core

import (
	"errors"

	dnderr "github.com/KirkDiggler/dream-bot-discord/internal/errors"
)

// MsgInternal is shown for failures the user cannot act on
const MsgInternal = "An internal error occurred. Please try again later."

// HandlerError is raised by the Discord layer itself, e.g. a stale button or
// a malformed modal, and carries the message shown to the user
type HandlerError struct {
	Err         error
	UserMessage string
	Code        dnderr.Code
}

// Error implements the error interface
func (e *HandlerError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMessage
}

// Unwrap returns the underlying error
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// NewInternalError hides err behind a generic message
func NewInternalError(err error) *HandlerError {
	return &HandlerError{
		Err:         err,
		UserMessage: MsgInternal,
		Code:        dnderr.CodeInternal,
	}
}

// NewValidationError rejects input the user can correct
func NewValidationError(message string) *HandlerError {
	return &HandlerError{
		UserMessage: message,
		Code:        dnderr.CodeValidation,
	}
}

// ErrorCode returns the code of a handler error or of a coded service error
func ErrorCode(err error) dnderr.Code {
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr.Code
	}
	return dnderr.GetCode(err)
}

// UserMessage returns the text to show for err when the user can act on it.
// Handler errors always carry one; service errors do when they reject input
// or point at something missing.
func UserMessage(err error) (string, bool) {
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr.UserMessage, true
	}

	switch dnderr.GetCode(err) {
	case dnderr.CodeValidation, dnderr.CodeInvalidArgument, dnderr.CodeNotFound:
		return dnderr.UserMessage(err), true
	}
	return "", false
}

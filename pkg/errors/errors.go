package errors

import (
	"errors"
	"fmt"
)

// Code classifies an error for reporting and exit-code mapping.
type Code string

const (
	// ErrCodeUsage indicates bad arguments or flags.
	ErrCodeUsage Code = "USAGE_ERROR"

	// ErrCodeUnknownCommand indicates an unrecognized top-level subcommand.
	ErrCodeUnknownCommand Code = "UNKNOWN_COMMAND"

	// ErrCodeUnknownInstanceCommand indicates an unrecognized instance subcommand.
	ErrCodeUnknownInstanceCommand Code = "UNKNOWN_INSTANCE_COMMAND"

	// ErrCodeInvalidCondition indicates a malformed waitfor count expression.
	ErrCodeInvalidCondition Code = "INVALID_CONDITION"

	// ErrCodeDanglingParent indicates hierarchy records referencing a parent
	// that is not present in the input.
	ErrCodeDanglingParent Code = "DANGLING_PARENT_REFERENCE"

	// ErrCodeTimeout indicates a poll loop that exceeded its deadline.
	ErrCodeTimeout Code = "TIMEOUT"

	// ErrCodeUpstream indicates a failed call to an external collaborator.
	ErrCodeUpstream Code = "UPSTREAM_FAILURE"

	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Exit codes reported to the shell. These are part of the CLI contract and
// scripted against, so they must stay stable.
const (
	ExitOK                     = 0
	ExitUsage                  = 1
	ExitUnknownCommand         = 2
	ExitUnknownInstanceCommand = 3
	ExitTimeout                = 4
)

// Error is a coded error. It wraps an optional cause for errors.Is/As chains.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error with the given message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a coded error around an underlying cause.
func Wrap(code Code, err error, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of the first coded error in err's chain, or
// ErrCodeInternal if none is found.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether err's chain contains a coded error with code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	switch CodeOf(err) {
	case ErrCodeUnknownCommand:
		return ExitUnknownCommand
	case ErrCodeUnknownInstanceCommand:
		return ExitUnknownInstanceCommand
	case ErrCodeTimeout:
		return ExitTimeout
	default:
		return ExitUsage
	}
}

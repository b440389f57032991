package cli

import (
	"errors"

	"github.com/roach88/ordkey/internal/position"
	"github.com/roach88/ordkey/internal/store"
	"github.com/roach88/ordkey/orderkey"
)

// Error codes reported in CLI error responses.
const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeIndexOutOfRange = "INDEX_OUT_OF_RANGE"
	ErrCodeUnsorted        = "UNSORTED"
	ErrCodeEmptyName       = "EMPTY_NAME"
	ErrCodeRejected        = "REJECTED"
	ErrCodeCommand         = "COMMAND_ERROR"
)

// errorCode classifies err for the JSON error envelope.
func errorCode(err error) string {
	var ke *orderkey.KeyError
	switch {
	case errors.As(err, &ke):
		return string(ke.Code)
	case errors.Is(err, store.ErrNotFound):
		return ErrCodeNotFound
	case errors.Is(err, position.ErrIndexOutOfRange):
		return ErrCodeIndexOutOfRange
	case errors.Is(err, position.ErrUnsorted):
		return ErrCodeUnsorted
	case errors.Is(err, store.ErrEmptyName):
		return ErrCodeEmptyName
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code == ExitFailure {
		return ErrCodeRejected
	}
	return ErrCodeCommand
}

// rejected wraps an error caused by the caller's input (exit code 1).
// Everything else a command returns exits with code 2.
func rejected(message string, err error) *ExitError {
	return WrapExitError(ExitFailure, message, err)
}

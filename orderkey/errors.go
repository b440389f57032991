package orderkey

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes engine errors.
type ErrorCode string

const (
	// CodeInvalidKey indicates a key failed structural validation.
	CodeInvalidKey ErrorCode = "INVALID_KEY"

	// CodeOrderViolation indicates bounds were supplied out of order.
	CodeOrderViolation ErrorCode = "ORDER_VIOLATION"

	// CodeInvalidArgument indicates a non-key argument was out of range.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Sentinels matched with errors.Is.
var (
	ErrInvalidKey      = errors.New("invalid order key")
	ErrOrderViolation  = errors.New("order keys out of order")
	ErrInvalidArgument = errors.New("invalid argument")
)

// KeyError describes why an input was rejected.
//
// Every failure the engine reports is a *KeyError. None of them are
// recoverable: the bounds handed to the engine must be keys it produced.
type KeyError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Key is the offending input (the lower bound for order violations).
	Key string

	// Other is the upper bound for order violations.
	Other string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	switch {
	case e.Code == CodeOrderViolation:
		return fmt.Sprintf("%s: %s (%q >= %q)", e.Code, e.Message, e.Key, e.Other)
	case e.Key != "":
		return fmt.Sprintf("%s: %s (key=%q)", e.Code, e.Message, e.Key)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Unwrap maps the code to its sentinel so errors.Is works on wrapped errors.
func (e *KeyError) Unwrap() error {
	switch e.Code {
	case CodeInvalidKey:
		return ErrInvalidKey
	case CodeOrderViolation:
		return ErrOrderViolation
	case CodeInvalidArgument:
		return ErrInvalidArgument
	}
	return nil
}

// IsInvalidKey returns true if err is an invalid key error.
func IsInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}

// IsOrderViolation returns true if err is an order violation.
func IsOrderViolation(err error) bool {
	return errors.Is(err, ErrOrderViolation)
}

func invalidKey(key, format string, args ...any) *KeyError {
	return &KeyError{
		Code:    CodeInvalidKey,
		Key:     key,
		Message: fmt.Sprintf(format, args...),
	}
}

func orderViolation(a, b string) *KeyError {
	return &KeyError{
		Code:    CodeOrderViolation,
		Key:     a,
		Other:   b,
		Message: "lower bound must sort before upper bound",
	}
}

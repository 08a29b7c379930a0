// Package error defines domain-specific errors for the expense tracker.
package error

import "errors"

// Monthly limit domain errors.
var (
	// ErrLimitNotFound is returned when a monthly limit is not found.
	ErrLimitNotFound = errors.New("monthly limit not found")

	// ErrInvalidLimitAmount is returned when the limit amount is zero or negative.
	ErrInvalidLimitAmount = errors.New("limit amount must be positive")
)

// LimitErrorCode defines error codes for monthly limit errors.
type LimitErrorCode string

const (
	ErrCodeLimitNotFound      LimitErrorCode = "LIM-010001"
	ErrCodeInvalidLimitAmount LimitErrorCode = "LIM-010002"
)

// LimitError represents a monthly limit error with code and message.
type LimitError struct {
	Code    LimitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LimitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LimitError) Unwrap() error {
	return e.Err
}

// NewLimitError creates a new LimitError with the given code and message.
func NewLimitError(code LimitErrorCode, message string, err error) *LimitError {
	return &LimitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Package error defines domain-specific errors for the expense tracker.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when a category with the same name already exists.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryInUse is returned when deleting a category that still has expenses.
	ErrCategoryInUse = errors.New("category has expenses and cannot be deleted")
)

// CategoryErrorCode defines error codes for category errors.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound   CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameExists CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryInUse      CategoryErrorCode = "CAT-010003"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

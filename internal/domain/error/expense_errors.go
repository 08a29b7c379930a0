// Package error defines domain-specific errors for the expense tracker.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrNotAuthorizedToModifyExpense is returned when the user is not authorized to modify an expense.
	ErrNotAuthorizedToModifyExpense = errors.New("not authorized to modify expense")

	// ErrInvalidExpenseDate is returned when the expense date is invalid.
	ErrInvalidExpenseDate = errors.New("invalid expense date")

	// ErrInvalidExpenseAmount is returned when the expense amount is negative or malformed.
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrCategoryNotFoundForExpense is returned when the referenced category does not exist.
	ErrCategoryNotFoundForExpense = errors.New("category not found")

	// ErrInvalidFilterValue is returned when a list filter parameter cannot be parsed.
	ErrInvalidFilterValue = errors.New("invalid filter value")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseDate   ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount ExpenseErrorCode = "EXP-010002"
	ErrCodeMissingExpenseFields ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidFilterValue   ExpenseErrorCode = "EXP-010004"

	// Lookup/ownership errors (02XXXX)
	ErrCodeExpenseNotFound       ExpenseErrorCode = "EXP-020001"
	ErrCodeNotAuthorizedExpense  ExpenseErrorCode = "EXP-020002"
	ErrCodeExpCategoryNotFound   ExpenseErrorCode = "EXP-020003"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Package error defines domain-specific errors for the expense tracker.
package error

import "errors"

// Event domain errors.
var (
	// ErrEventNotFound is returned when an event is not found in the system.
	ErrEventNotFound = errors.New("event not found")

	// ErrNotAuthorizedToModifyEvent is returned when the user does not own the event.
	ErrNotAuthorizedToModifyEvent = errors.New("not authorized to modify event")

	// ErrInvalidEventDate is returned when the event date is invalid.
	ErrInvalidEventDate = errors.New("invalid event date")
)

// EventErrorCode defines error codes for event errors.
type EventErrorCode string

const (
	ErrCodeEventNotFound      EventErrorCode = "EVT-010001"
	ErrCodeNotAuthorizedEvent EventErrorCode = "EVT-010002"
	ErrCodeInvalidEventDate   EventErrorCode = "EVT-010003"
	ErrCodeMissingEventFields EventErrorCode = "EVT-010004"
)

// EventError represents an event error with code and message.
type EventError struct {
	Code    EventErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EventError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EventError) Unwrap() error {
	return e.Err
}

// NewEventError creates a new EventError with the given code and message.
func NewEventError(code EventErrorCode, message string, err error) *EventError {
	return &EventError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

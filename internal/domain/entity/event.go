// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a calendar event.
type Event struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewEvent creates a new Event entity.
func NewEvent(userID uuid.UUID, title, description string, date time.Time) *Event {
	now := time.Now().UTC()

	return &Event{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

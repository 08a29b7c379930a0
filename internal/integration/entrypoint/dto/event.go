package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateEventRequest represents the request body for event creation.
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description,omitempty" binding:"omitempty,max=1000"`
	Date        string `json:"date" binding:"required"`
}

// UpdateEventRequest represents the request body for event update.
type UpdateEventRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	Date        *string `json:"date,omitempty"`
}

// EventResponse represents a single event in API responses.
type EventResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventListResponse represents the response for listing events.
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// ToEventResponse converts a domain Event entity to an EventResponse DTO.
func ToEventResponse(event *entity.Event) EventResponse {
	return EventResponse{
		ID:          event.ID.String(),
		UserID:      event.UserID.String(),
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date.Format(time.RFC3339),
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}

// ToEventListResponse converts events to an EventListResponse.
func ToEventListResponse(events []*entity.Event) EventListResponse {
	responses := make([]EventResponse, len(events))
	for i, e := range events {
		responses[i] = ToEventResponse(e)
	}
	return EventListResponse{Events: responses}
}

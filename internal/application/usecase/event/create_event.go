// Package event contains calendar event use cases.
package event

import (
	"context"
	"fmt"
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CreateEventInput represents the input for event creation.
type CreateEventInput struct {
	Title       string
	Description string
	Date        time.Time
}

// CreateEventUseCase handles event creation logic.
type CreateEventUseCase struct {
	eventRepo adapter.EventRepository
}

// NewCreateEventUseCase creates a new CreateEventUseCase instance.
func NewCreateEventUseCase(eventRepo adapter.EventRepository) *CreateEventUseCase {
	return &CreateEventUseCase{
		eventRepo: eventRepo,
	}
}

// Execute creates a calendar event owned by the acting user.
func (uc *CreateEventUseCase) Execute(ctx context.Context, actor *entity.User, input CreateEventInput) (*entity.Event, error) {
	if input.Title == "" {
		return nil, domainerror.NewEventError(
			domainerror.ErrCodeMissingEventFields,
			"title is required",
			nil,
		)
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewEventError(
			domainerror.ErrCodeInvalidEventDate,
			"date is required",
			domainerror.ErrInvalidEventDate,
		)
	}

	event := entity.NewEvent(actor.ID, input.Title, input.Description, input.Date)

	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

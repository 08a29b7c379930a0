package event

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateEventInput represents the input for event updates. Nil fields are
// left untouched.
type UpdateEventInput struct {
	Title       *string
	Description *string
	Date        *time.Time
}

// UpdateEventUseCase handles event update logic.
type UpdateEventUseCase struct {
	eventRepo adapter.EventRepository
}

// NewUpdateEventUseCase creates a new UpdateEventUseCase instance.
func NewUpdateEventUseCase(eventRepo adapter.EventRepository) *UpdateEventUseCase {
	return &UpdateEventUseCase{
		eventRepo: eventRepo,
	}
}

// Execute applies a partial update to an event owned by the acting user.
func (uc *UpdateEventUseCase) Execute(ctx context.Context, actor *entity.User, id uuid.UUID, input UpdateEventInput) (*entity.Event, error) {
	event, err := uc.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerror.NewEventError(
			domainerror.ErrCodeEventNotFound,
			"event not found",
			domainerror.ErrEventNotFound,
		)
	}

	if event.UserID != actor.ID && !actor.Role.IsAdmin() {
		return nil, domainerror.NewEventError(
			domainerror.ErrCodeNotAuthorizedEvent,
			"not authorized to modify this event",
			domainerror.ErrNotAuthorizedToModifyEvent,
		)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, domainerror.NewEventError(
				domainerror.ErrCodeMissingEventFields,
				"title must not be empty",
				nil,
			)
		}
		event.Title = *input.Title
	}

	if input.Description != nil {
		event.Description = *input.Description
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewEventError(
				domainerror.ErrCodeInvalidEventDate,
				"date must be a valid timestamp",
				domainerror.ErrInvalidEventDate,
			)
		}
		event.Date = *input.Date
	}

	event.UpdatedAt = time.Now().UTC()

	if err := uc.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

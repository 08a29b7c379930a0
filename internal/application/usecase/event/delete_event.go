package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteEventUseCase handles event deletion logic.
type DeleteEventUseCase struct {
	eventRepo adapter.EventRepository
}

// NewDeleteEventUseCase creates a new DeleteEventUseCase instance.
func NewDeleteEventUseCase(eventRepo adapter.EventRepository) *DeleteEventUseCase {
	return &DeleteEventUseCase{
		eventRepo: eventRepo,
	}
}

// Execute deletes an event owned by the acting user.
func (uc *DeleteEventUseCase) Execute(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	event, err := uc.eventRepo.FindByID(ctx, id)
	if err != nil {
		return domainerror.NewEventError(
			domainerror.ErrCodeEventNotFound,
			"event not found",
			domainerror.ErrEventNotFound,
		)
	}

	if event.UserID != actor.ID && !actor.Role.IsAdmin() {
		return domainerror.NewEventError(
			domainerror.ErrCodeNotAuthorizedEvent,
			"not authorized to modify this event",
			domainerror.ErrNotAuthorizedToModifyEvent,
		)
	}

	if err := uc.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

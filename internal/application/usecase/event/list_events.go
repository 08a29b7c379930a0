package event

import (
	"context"
	"fmt"
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListEventsInput represents the date window for listing events.
type ListEventsInput struct {
	From time.Time
	To   time.Time
}

// ListEventsUseCase lists a user's calendar events within a window.
type ListEventsUseCase struct {
	eventRepo adapter.EventRepository
}

// NewListEventsUseCase creates a new ListEventsUseCase instance.
func NewListEventsUseCase(eventRepo adapter.EventRepository) *ListEventsUseCase {
	return &ListEventsUseCase{
		eventRepo: eventRepo,
	}
}

// Execute lists the acting user's events. An empty window defaults to the
// current calendar month.
func (uc *ListEventsUseCase) Execute(ctx context.Context, actor *entity.User, input ListEventsInput) ([]*entity.Event, error) {
	from, to := input.From, input.To
	if from.IsZero() || to.IsZero() {
		now := time.Now().UTC()
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	}

	events, err := uc.eventRepo.FindByUserBetween(ctx, actor.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

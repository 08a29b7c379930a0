package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// eventRepository implements the adapter.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository instance.
func NewEventRepository(db *gorm.DB) adapter.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// Create creates a new event in the database.
func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventModel := model.EventFromEntity(event)
	result := r.db.WithContext(ctx).Create(eventModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an event by its ID.
func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventModel model.EventModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&eventModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEventNotFound
		}
		return nil, result.Error
	}
	return eventModel.ToEntity(), nil
}

// FindByUserBetween retrieves a user's events dated within [from, to],
// ordered by date ascending.
func (r *eventRepository) FindByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Event, error) {
	var eventModels []model.EventModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&eventModels)
	if result.Error != nil {
		return nil, result.Error
	}

	events := make([]*entity.Event, len(eventModels))
	for i, em := range eventModels {
		events[i] = em.ToEntity()
	}
	return events, nil
}

// Update updates an existing event in the database.
func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	eventModel := model.EventFromEntity(event)
	result := r.db.WithContext(ctx).Save(eventModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an event from the database.
func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.EventModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEventNotFound
	}
	return nil
}

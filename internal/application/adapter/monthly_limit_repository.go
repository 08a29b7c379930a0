// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// MonthlyLimitRepository defines the interface for monthly limit persistence operations.
type MonthlyLimitRepository interface {
	// Upsert creates or replaces the limit for the user+category pair.
	Upsert(ctx context.Context, limit *entity.MonthlyLimit) error

	// FindByUserAndCategory retrieves the limit for a user+category pair.
	// Returns nil (no error) when no limit is configured.
	FindByUserAndCategory(ctx context.Context, userID, categoryID uuid.UUID) (*entity.MonthlyLimit, error)

	// FindByUser retrieves all limits configured for a user, with categories.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MonthlyLimitWithProgress, error)

	// Delete removes a limit.
	Delete(ctx context.Context, id uuid.UUID) error
}

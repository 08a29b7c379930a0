package limit

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListLimitsUseCase lists a user's monthly limits with current-month
// progress.
type ListLimitsUseCase struct {
	limitRepo adapter.MonthlyLimitRepository
}

// NewListLimitsUseCase creates a new ListLimitsUseCase instance.
func NewListLimitsUseCase(limitRepo adapter.MonthlyLimitRepository) *ListLimitsUseCase {
	return &ListLimitsUseCase{
		limitRepo: limitRepo,
	}
}

// Execute returns the acting user's limits with spending progress.
func (uc *ListLimitsUseCase) Execute(ctx context.Context, actor *entity.User) ([]*entity.MonthlyLimitWithProgress, error) {
	limits, err := uc.limitRepo.FindByUser(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly limits: %w", err)
	}
	return limits, nil
}

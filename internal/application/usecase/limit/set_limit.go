// Package limit contains monthly spending limit use cases.
package limit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// SetLimitInput represents the input for configuring a monthly limit.
type SetLimitInput struct {
	CategoryID    uuid.UUID
	LimitAmount   decimal.Decimal
	AlertOnExceed bool
}

// SetLimitUseCase creates or replaces a user's monthly limit for a category.
type SetLimitUseCase struct {
	limitRepo    adapter.MonthlyLimitRepository
	categoryRepo adapter.CategoryRepository
}

// NewSetLimitUseCase creates a new SetLimitUseCase instance.
func NewSetLimitUseCase(limitRepo adapter.MonthlyLimitRepository, categoryRepo adapter.CategoryRepository) *SetLimitUseCase {
	return &SetLimitUseCase{
		limitRepo:    limitRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute upserts the limit for the acting user and category.
func (uc *SetLimitUseCase) Execute(ctx context.Context, actor *entity.User, input SetLimitInput) (*entity.MonthlyLimit, error) {
	if !input.LimitAmount.IsPositive() {
		return nil, domainerror.NewLimitError(
			domainerror.ErrCodeInvalidLimitAmount,
			"limit amount must be positive",
			domainerror.ErrInvalidLimitAmount,
		)
	}

	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	limit := entity.NewMonthlyLimit(actor.ID, input.CategoryID, input.LimitAmount, input.AlertOnExceed)

	if err := uc.limitRepo.Upsert(ctx, limit); err != nil {
		return nil, fmt.Errorf("failed to save monthly limit: %w", err)
	}

	return limit, nil
}

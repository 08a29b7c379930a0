package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense updates. Nil fields
// are left untouched.
type UpdateExpenseInput struct {
	Date        *time.Time
	Description *string
	Amount      *decimal.Decimal
	CategoryID  *uuid.UUID
	BillPhoto   *string
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, categoryRepo adapter.CategoryRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute applies a partial update to an expense. Viewers may only modify
// their own expenses; admins may modify any.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, actor *entity.User, id uuid.UUID, input UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if !actor.Role.IsAdmin() && expense.UserID != actor.ID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNotAuthorizedExpense,
			"not authorized to modify this expense",
			domainerror.ErrNotAuthorizedToModifyExpense,
		)
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseAmount,
				"amount must not be negative",
				domainerror.ErrInvalidExpenseAmount,
			)
		}
		expense.Amount = *input.Amount
	}

	if input.Description != nil {
		if *input.Description == "" || len(*input.Description) > MaxDescriptionLength {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeMissingExpenseFields,
				fmt.Sprintf("description must be between 1 and %d characters", MaxDescriptionLength),
				nil,
			)
		}
		expense.Description = *input.Description
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseDate,
				"date must be a valid timestamp",
				domainerror.ErrInvalidExpenseDate,
			)
		}
		expense.Date = *input.Date
	}

	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForExpense,
			)
		}
		expense.CategoryID = *input.CategoryID
	}

	if input.BillPhoto != nil {
		expense.BillPhoto = input.BillPhoto
	}

	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return expense, nil
}

package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// GetExpenseUseCase handles fetching a single expense.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute retrieves an expense with its relations. Viewers may only read
// their own expenses.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, actor *entity.User, id uuid.UUID) (*entity.ExpenseWithRelations, error) {
	expense, err := uc.expenseRepo.FindByIDWithRelations(ctx, id)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if !actor.Role.IsAdmin() && expense.Expense.UserID != actor.ID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	return expense, nil
}

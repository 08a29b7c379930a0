package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute soft-deletes an expense. Viewers may only delete their own
// expenses; admins may delete any.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	expense, err := uc.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if !actor.Role.IsAdmin() && expense.UserID != actor.ID {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeNotAuthorizedExpense,
			"not authorized to modify this expense",
			domainerror.ErrNotAuthorizedToModifyExpense,
		)
	}

	if err := uc.expenseRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}

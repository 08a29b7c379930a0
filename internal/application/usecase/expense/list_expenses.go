package expense

import (
	"context"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListExpensesUseCase handles filtered, paginated expense listing.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// ListExpensesOutput bundles the page of expenses with its metadata.
type ListExpensesOutput struct {
	Expenses []*entity.ExpenseWithRelations
	PageInfo PageInfo
}

// Execute runs the resolved query on behalf of the acting user. Viewers are
// always scoped to their own expenses regardless of the userId filter;
// admins may filter by any user or see everything.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, actor *entity.User, query ResolvedListQuery) (*ListExpensesOutput, error) {
	if !actor.Role.IsAdmin() {
		ownID := actor.ID
		query.Filter.UserID = &ownID
	}

	result, err := uc.expenseRepo.FindByFilter(ctx, query.Filter, query.Sort, query.Pagination)
	if err != nil {
		return nil, err
	}

	return &ListExpensesOutput{
		Expenses: result.Expenses,
		PageInfo: NewPageInfo(query.Pagination.Page, query.Pagination.PageSize, result.TotalCount),
	}, nil
}

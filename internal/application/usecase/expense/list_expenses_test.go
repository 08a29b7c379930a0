package expense

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// stubExpenseRepository implements only the filter path; the other methods
// are unused by the list use case.
type stubExpenseRepository struct {
	adapter.ExpenseRepository

	lastFilter     adapter.ExpenseFilter
	lastSort       adapter.ExpenseSort
	lastPagination adapter.ExpensePagination

	result *adapter.ExpenseListResult
	err    error
}

func (s *stubExpenseRepository) FindByFilter(_ context.Context, filter adapter.ExpenseFilter, sort adapter.ExpenseSort, pagination adapter.ExpensePagination) (*adapter.ExpenseListResult, error) {
	s.lastFilter = filter
	s.lastSort = sort
	s.lastPagination = pagination
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func makeExpensePage(n int) []*entity.ExpenseWithRelations {
	page := make([]*entity.ExpenseWithRelations, 0, n)
	for i := 0; i < n; i++ {
		page = append(page, &entity.ExpenseWithRelations{
			Expense: &entity.Expense{
				ID:          uuid.New(),
				Date:        time.Date(2025, 6, 1+i, 0, 0, 0, 0, time.UTC),
				Description: "groceries",
				Amount:      decimal.NewFromInt(int64(10 + i)),
			},
		})
	}
	return page
}

func TestListExpenses_PaginationMetadata(t *testing.T) {
	repo := &stubExpenseRepository{
		result: &adapter.ExpenseListResult{
			Expenses:   makeExpensePage(10),
			TotalCount: 25,
		},
	}
	uc := NewListExpensesUseCase(repo)
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin}

	query, err := ParseListQuery(ListQueryParams{Page: "2", PageSize: "10"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out, err := uc.Execute(context.Background(), admin, query)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(out.Expenses) != 10 {
		t.Errorf("expected 10 expenses on page, got %d", len(out.Expenses))
	}
	if out.PageInfo.TotalCount != 25 {
		t.Errorf("expected total count 25, got %d", out.PageInfo.TotalCount)
	}
	if out.PageInfo.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", out.PageInfo.TotalPages)
	}
	if !out.PageInfo.HasNextPage {
		t.Error("expected hasNextPage true on page 2 of 3")
	}
	if !out.PageInfo.HasPreviousPage {
		t.Error("expected hasPreviousPage true on page 2 of 3")
	}
	if repo.lastPagination.Page != 2 || repo.lastPagination.PageSize != 10 {
		t.Errorf("expected repository called with page 2 size 10, got %+v", repo.lastPagination)
	}
}

func TestListExpenses_ViewerScopedToOwnExpenses(t *testing.T) {
	repo := &stubExpenseRepository{
		result: &adapter.ExpenseListResult{TotalCount: 0},
	}
	uc := NewListExpensesUseCase(repo)

	viewer := &entity.User{ID: uuid.New(), Role: entity.RoleViewer}
	someoneElse := uuid.New()

	query, err := ParseListQuery(ListQueryParams{UserID: someoneElse.String()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := uc.Execute(context.Background(), viewer, query); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if repo.lastFilter.UserID == nil {
		t.Fatal("expected viewer query to carry a user filter")
	}
	if *repo.lastFilter.UserID != viewer.ID {
		t.Errorf("expected viewer scoped to own id %s, got %s", viewer.ID, *repo.lastFilter.UserID)
	}
}

func TestListExpenses_AdminMayFilterByUser(t *testing.T) {
	repo := &stubExpenseRepository{
		result: &adapter.ExpenseListResult{TotalCount: 0},
	}
	uc := NewListExpensesUseCase(repo)

	admin := &entity.User{ID: uuid.New(), Role: entity.RoleSuperAdmin}
	target := uuid.New()

	query, err := ParseListQuery(ListQueryParams{UserID: target.String()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := uc.Execute(context.Background(), admin, query); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if repo.lastFilter.UserID == nil || *repo.lastFilter.UserID != target {
		t.Errorf("expected admin filter on %s to pass through, got %v", target, repo.lastFilter.UserID)
	}
}

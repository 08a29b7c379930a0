// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseSortField enumerates the expense fields valid for sorting.
type ExpenseSortField string

const (
	SortFieldDate        ExpenseSortField = "date"
	SortFieldAmount      ExpenseSortField = "amount"
	SortFieldDescription ExpenseSortField = "description"
	SortFieldCreatedAt   ExpenseSortField = "createdAt"
	SortFieldUpdatedAt   ExpenseSortField = "updatedAt"
)

// ExpenseSortOrder enumerates sort directions.
type ExpenseSortOrder string

const (
	SortOrderAsc  ExpenseSortOrder = "asc"
	SortOrderDesc ExpenseSortOrder = "desc"
)

// ExpenseFilter defines the predicate for listing expenses. Nil/empty
// fields mean "no filter"; all active filters combine with logical AND.
type ExpenseFilter struct {
	UserID       *uuid.UUID // Owner equality; nil means all owners
	StartDate    *time.Time // Inclusive lower bound
	EndDate      *time.Time // Inclusive upper bound (already end-of-day normalized)
	MinAmount    *decimal.Decimal
	MaxAmount    *decimal.Decimal
	CategoryIDs  []uuid.UUID // IN-set predicate
	Search       string      // Case-insensitive description match
	HasBillPhoto *bool       // Tri-state: nil = no filter
}

// ExpenseSort defines the sort directive for listing expenses.
type ExpenseSort struct {
	Field ExpenseSortField
	Order ExpenseSortOrder
}

// ExpensePagination defines pagination options.
type ExpensePagination struct {
	Page     int
	PageSize int
}

// ExpenseListResult represents the result of listing expenses.
type ExpenseListResult struct {
	Expenses   []*entity.ExpenseWithRelations
	TotalCount int64
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByIDWithRelations retrieves an expense with its category and
	// restricted user projection by ID.
	FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithRelations, error)

	// FindByFilter retrieves expenses matching the filter with sorting and
	// pagination. The same predicate drives both the count and the find.
	FindByFilter(
		ctx context.Context,
		filter ExpenseFilter,
		sort ExpenseSort,
		pagination ExpensePagination,
	) (*ExpenseListResult, error)

	// SumForCategoryMonth returns the summed amount of a user's expenses in
	// the given category dated within [monthStart, monthEnd].
	SumForCategoryMonth(
		ctx context.Context,
		userID uuid.UUID,
		categoryID uuid.UUID,
		monthStart, monthEnd time.Time,
	) (decimal.Decimal, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete soft-deletes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	// A single connection keeps every session on the same in-memory database.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to sqlite: %v", err)
	}

	if err := dbConn.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.ExpenseModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return dbConn
}

func seedExpenseFixtures(t *testing.T, db *gorm.DB) (*entity.User, *entity.Category) {
	t.Helper()

	user := entity.NewUser("alice@example.com", "Alice", "hash")
	if err := db.Create(model.UserFromEntity(user)).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	category := entity.NewCategory("Food", "")
	if err := db.Create(model.CategoryFromEntity(category)).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	return user, category
}

func TestExpenseRepositoryRoundTripsDate(t *testing.T) {
	db := newTestDB(t)
	user, category := seedExpenseFixtures(t, db)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	date := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	expense := entity.NewExpense(user.ID, category.ID, date, "Groceries", decimal.NewFromInt(42), nil)
	if err := repo.Create(ctx, expense); err != nil {
		t.Fatalf("failed to create expense: %v", err)
	}

	result, err := repo.FindByFilter(
		ctx,
		adapter.ExpenseFilter{},
		adapter.ExpenseSort{Field: adapter.SortFieldDate, Order: adapter.SortOrderDesc},
		adapter.ExpensePagination{Page: 1, PageSize: 20},
	)
	if err != nil {
		t.Fatalf("failed to list expenses: %v", err)
	}

	if result.TotalCount != 1 {
		t.Fatalf("expected 1 expense, got %d", result.TotalCount)
	}
	got := result.Expenses[0]
	if !got.Expense.Date.Equal(date) {
		t.Errorf("expected date %v, got %v", date, got.Expense.Date)
	}
	if got.Expense.Description != "Groceries" {
		t.Errorf("expected description Groceries, got %s", got.Expense.Description)
	}
	if got.Category == nil || got.Category.Name != "Food" {
		t.Error("expected preloaded category Food")
	}
}

func TestExpenseRepositoryFiltersDateRangeInclusive(t *testing.T) {
	db := newTestDB(t)
	user, category := seedExpenseFixtures(t, db)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	boundary := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for _, e := range []*entity.Expense{
		entity.NewExpense(user.ID, category.ID, boundary, "Boundary", decimal.NewFromInt(10), nil),
		entity.NewExpense(user.ID, category.ID, late, "Late", decimal.NewFromInt(10), nil),
	} {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}
	}

	endOfDay := time.Date(2026, 7, 31, 23, 59, 59, 999000000, time.UTC)
	result, err := repo.FindByFilter(
		ctx,
		adapter.ExpenseFilter{EndDate: &endOfDay},
		adapter.ExpenseSort{Field: adapter.SortFieldDate, Order: adapter.SortOrderDesc},
		adapter.ExpensePagination{Page: 1, PageSize: 20},
	)
	if err != nil {
		t.Fatalf("failed to list expenses: %v", err)
	}

	if result.TotalCount != 1 {
		t.Fatalf("expected 1 expense within range, got %d", result.TotalCount)
	}
	if result.Expenses[0].Expense.Description != "Boundary" {
		t.Errorf("expected the boundary-day expense, got %s", result.Expenses[0].Expense.Description)
	}
}

func TestExpenseRepositoryFiltersBillPhoto(t *testing.T) {
	db := newTestDB(t)
	user, category := seedExpenseFixtures(t, db)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	date := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	photoURL := "https://example.com/receipt.jpg"
	emptyURL := ""
	for _, e := range []*entity.Expense{
		entity.NewExpense(user.ID, category.ID, date, "With photo", decimal.NewFromInt(10), &photoURL),
		entity.NewExpense(user.ID, category.ID, date, "Empty photo", decimal.NewFromInt(10), &emptyURL),
		entity.NewExpense(user.ID, category.ID, date, "No photo", decimal.NewFromInt(10), nil),
	} {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}
	}

	hasPhoto := true
	result, err := repo.FindByFilter(
		ctx,
		adapter.ExpenseFilter{HasBillPhoto: &hasPhoto},
		adapter.ExpenseSort{Field: adapter.SortFieldDate, Order: adapter.SortOrderDesc},
		adapter.ExpensePagination{Page: 1, PageSize: 20},
	)
	if err != nil {
		t.Fatalf("failed to list expenses: %v", err)
	}
	if result.TotalCount != 1 {
		t.Fatalf("expected 1 expense with a photo, got %d", result.TotalCount)
	}
	if result.Expenses[0].Expense.Description != "With photo" {
		t.Errorf("expected the photo expense, got %s", result.Expenses[0].Expense.Description)
	}

	hasPhoto = false
	result, err = repo.FindByFilter(
		ctx,
		adapter.ExpenseFilter{HasBillPhoto: &hasPhoto},
		adapter.ExpenseSort{Field: adapter.SortFieldDate, Order: adapter.SortOrderDesc},
		adapter.ExpensePagination{Page: 1, PageSize: 20},
	)
	if err != nil {
		t.Fatalf("failed to list expenses: %v", err)
	}
	if result.TotalCount != 2 {
		t.Fatalf("expected 2 expenses without a photo, got %d", result.TotalCount)
	}
}

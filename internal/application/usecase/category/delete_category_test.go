package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type stubCategoryRepository struct {
	adapter.CategoryRepository

	category     *entity.Category
	expenseCount int64
	deleted      []uuid.UUID
}

func (r *stubCategoryRepository) FindByID(_ context.Context, _ uuid.UUID) (*entity.Category, error) {
	if r.category == nil {
		return nil, domainerror.ErrCategoryNotFound
	}
	return r.category, nil
}

func (r *stubCategoryRepository) CountExpenses(_ context.Context, _ uuid.UUID) (int64, error) {
	return r.expenseCount, nil
}

func (r *stubCategoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func TestDeleteCategory_RejectsCategoryInUse(t *testing.T) {
	repo := &stubCategoryRepository{
		category:     entity.NewCategory("Groceries", ""),
		expenseCount: 4,
	}
	uc := NewDeleteCategoryUseCase(repo)

	err := uc.Execute(context.Background(), repo.category.ID)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var catErr *domainerror.CategoryError
	if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeCategoryInUse {
		t.Errorf("expected category in use error, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Error("expected no deletion when category is in use")
	}
}

func TestDeleteCategory_DeletesUnusedCategory(t *testing.T) {
	repo := &stubCategoryRepository{
		category: entity.NewCategory("Travel", ""),
	}
	uc := NewDeleteCategoryUseCase(repo)

	if err := uc.Execute(context.Background(), repo.category.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != repo.category.ID {
		t.Errorf("expected category %s deleted, got %v", repo.category.ID, repo.deleted)
	}
}

func TestDeleteCategory_NotFound(t *testing.T) {
	uc := NewDeleteCategoryUseCase(&stubCategoryRepository{})

	err := uc.Execute(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var catErr *domainerror.CategoryError
	if !errors.As(err, &catErr) || catErr.Code != domainerror.ErrCodeCategoryNotFound {
		t.Errorf("expected category not found error, got %v", err)
	}
}

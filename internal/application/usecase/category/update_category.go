package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category updates. Nil fields
// are left untouched.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute applies a partial update to a category.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, id uuid.UUID, input UpdateCategoryInput) (*entity.Category, error) {
	category, err := uc.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if input.Name != nil && *input.Name != category.Name {
		if existing, err := uc.categoryRepo.FindByName(ctx, *input.Name); err == nil && existing != nil {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameExists,
				"a category with this name already exists",
				domainerror.ErrCategoryNameExists,
			)
		}
		category.Name = *input.Name
	}

	if input.Description != nil {
		category.Description = *input.Description
	}

	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

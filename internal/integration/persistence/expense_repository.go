// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// sortColumns maps sort fields to their database columns.
var sortColumns = map[adapter.ExpenseSortField]string{
	adapter.SortFieldDate:        "date",
	adapter.SortFieldAmount:      "amount",
	adapter.SortFieldDescription: "description",
	adapter.SortFieldCreatedAt:   "created_at",
	adapter.SortFieldUpdatedAt:   "updated_at",
}

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByIDWithRelations retrieves an expense with its category and the
// restricted owner projection by ID.
func (r *expenseRepository) FindByIDWithRelations(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithRelations, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Where("id = ?", id).
		First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntityWithRelations(), nil
}

// FindByFilter retrieves expenses based on filter criteria with sorting and
// pagination. The count and the page query share the same predicate.
func (r *expenseRepository) FindByFilter(
	ctx context.Context,
	filter adapter.ExpenseFilter,
	sort adapter.ExpenseSort,
	pagination adapter.ExpensePagination,
) (*adapter.ExpenseListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.ExpenseModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}
	if filter.MinAmount != nil {
		query = query.Where("amount >= ?", filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("amount <= ?", filter.MaxAmount)
	}
	if len(filter.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", filter.CategoryIDs)
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(description) LIKE ?", searchPattern)
	}
	if filter.HasBillPhoto != nil {
		if *filter.HasBillPhoto {
			query = query.Where("bill_photo IS NOT NULL AND bill_photo <> ''")
		} else {
			query = query.Where("bill_photo IS NULL OR bill_photo = ''")
		}
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	orderClause := sortColumns[sort.Field]
	if sort.Order == adapter.SortOrderAsc {
		orderClause += " ASC"
	} else {
		orderClause += " DESC"
	}
	if sort.Field != adapter.SortFieldCreatedAt {
		orderClause += ", created_at DESC"
	}

	offset := (pagination.Page - 1) * pagination.PageSize

	var expenseModels []model.ExpenseModel
	result := query.
		Preload("Category").
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Order(orderClause).
		Offset(offset).
		Limit(pagination.PageSize).
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.ExpenseWithRelations, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntityWithRelations()
	}

	return &adapter.ExpenseListResult{
		Expenses:   expenses,
		TotalCount: total,
	}, nil
}

// SumForCategoryMonth returns the summed amount of a user's expenses in the
// given category dated within [monthStart, monthEnd].
func (r *expenseRepository) SumForCategoryMonth(
	ctx context.Context,
	userID uuid.UUID,
	categoryID uuid.UUID,
	monthStart, monthEnd time.Time,
) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).Model(&model.ExpenseModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ?", userID).
		Where("category_id = ?", categoryID).
		Where("date >= ? AND date <= ?", monthStart, monthEnd).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}

	return result.Total, nil
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Save(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes an expense from the database.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// monthlyLimitRepository implements the adapter.MonthlyLimitRepository interface.
type monthlyLimitRepository struct {
	db *gorm.DB
}

// NewMonthlyLimitRepository creates a new monthly limit repository instance.
func NewMonthlyLimitRepository(db *gorm.DB) adapter.MonthlyLimitRepository {
	return &monthlyLimitRepository{
		db: db,
	}
}

// Upsert creates or replaces the limit for the user+category pair.
func (r *monthlyLimitRepository) Upsert(ctx context.Context, limit *entity.MonthlyLimit) error {
	limitModel := model.MonthlyLimitFromEntity(limit)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "category_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"limit_amount", "alert_on_exceed", "updated_at",
			}),
		}).
		Create(limitModel)
	return result.Error
}

// FindByUserAndCategory retrieves the limit for a user+category pair.
// Returns nil (no error) when no limit is configured.
func (r *monthlyLimitRepository) FindByUserAndCategory(ctx context.Context, userID, categoryID uuid.UUID) (*entity.MonthlyLimit, error) {
	var limitModel model.MonthlyLimitModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		First(&limitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return limitModel.ToEntity(), nil
}

// FindByUser retrieves all limits configured for a user, with their
// categories and the spending accumulated in the current calendar month.
func (r *monthlyLimitRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MonthlyLimitWithProgress, error) {
	var limitModels []model.MonthlyLimitModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Find(&limitModels)
	if result.Error != nil {
		return nil, result.Error
	}

	if len(limitModels) == 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	var sums []struct {
		CategoryID uuid.UUID       `gorm:"column:category_id"`
		Total      decimal.Decimal `gorm:"column:total"`
	}
	err := r.db.WithContext(ctx).Model(&model.ExpenseModel{}).
		Select("category_id, COALESCE(SUM(amount), 0) as total").
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", monthStart, monthEnd).
		Group("category_id").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}

	spentByCategory := make(map[uuid.UUID]decimal.Decimal, len(sums))
	for _, s := range sums {
		spentByCategory[s.CategoryID] = s.Total
	}

	limits := make([]*entity.MonthlyLimitWithProgress, len(limitModels))
	for i, lm := range limitModels {
		progress := &entity.MonthlyLimitWithProgress{
			Limit: lm.ToEntity(),
			Spent: decimal.Zero,
		}
		if lm.Category != nil {
			progress.Category = lm.Category.ToEntity()
		}
		if spent, ok := spentByCategory[lm.CategoryID]; ok {
			progress.Spent = spent
		}
		limits[i] = progress
	}

	return limits, nil
}

// Delete removes a limit.
func (r *monthlyLimitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.MonthlyLimitModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrLimitNotFound
	}
	return nil
}

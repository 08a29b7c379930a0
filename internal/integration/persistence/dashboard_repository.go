package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.Repository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.Repository {
	return &dashboardRepository{
		db: db,
	}
}

// TotalCount returns the number of non-deleted expenses.
func (r *dashboardRepository) TotalCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ExpenseModel{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return count, nil
}

// TotalAmount returns the summed amount of non-deleted expenses.
func (r *dashboardRepository) TotalAmount(ctx context.Context) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).Model(&model.ExpenseModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}

	return result.Total, nil
}

// MonthlyBreakdown returns per-month aggregates for expenses dated at or
// after since, most recent month first.
func (r *dashboardRepository) MonthlyBreakdown(ctx context.Context, since time.Time) ([]dashboard.MonthlyAggregate, error) {
	var results []struct {
		Year        int             `gorm:"column:year"`
		Month       int             `gorm:"column:month"`
		Count       int64           `gorm:"column:count"`
		TotalAmount decimal.Decimal `gorm:"column:total_amount"`
	}

	query := `
		SELECT
			EXTRACT(YEAR FROM date)::int as year,
			EXTRACT(MONTH FROM date)::int as month,
			COUNT(*) as count,
			COALESCE(SUM(amount), 0) as total_amount
		FROM expenses
		WHERE date >= ?
			AND deleted_at IS NULL
		GROUP BY EXTRACT(YEAR FROM date), EXTRACT(MONTH FROM date)
		ORDER BY year DESC, month DESC
	`

	err := r.db.WithContext(ctx).
		Raw(query, since).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly breakdown: %w", err)
	}

	aggregates := make([]dashboard.MonthlyAggregate, len(results))
	for i, res := range results {
		aggregates[i] = dashboard.MonthlyAggregate{
			Year:        res.Year,
			Month:       res.Month,
			Count:       res.Count,
			TotalAmount: res.TotalAmount,
		}
	}

	return aggregates, nil
}

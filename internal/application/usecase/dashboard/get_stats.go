package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// MonthlyStat is one month of the dashboard breakdown, newest first.
type MonthlyStat struct {
	Year        int
	Month       int
	MonthName   string // Short English month name, e.g. "Jun"
	YearMonth   string // Zero-padded "YYYY-MM" key, e.g. "2024-06"
	Count       int64
	TotalAmount decimal.Decimal
}

// StatsOutput represents the dashboard statistics.
type StatsOutput struct {
	TotalCount  int64
	TotalAmount decimal.Decimal
	Monthly     []MonthlyStat
}

// GetStatsUseCase computes the dashboard statistics: overall totals plus a
// monthly breakdown of the trailing twelve months.
type GetStatsUseCase struct {
	repo Repository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(repo Repository) *GetStatsUseCase {
	return &GetStatsUseCase{
		repo: repo,
	}
}

// Execute runs the three aggregate queries concurrently and reshapes the
// month rows for presentation.
func (uc *GetStatsUseCase) Execute(ctx context.Context) (*StatsOutput, error) {
	oneYearAgo := time.Now().UTC().AddDate(-1, 0, 0)

	var (
		totalCount  int64
		totalAmount decimal.Decimal
		aggregates  []MonthlyAggregate
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := uc.repo.TotalCount(gctx)
		if err != nil {
			return fmt.Errorf("failed to count expenses: %w", err)
		}
		totalCount = count
		return nil
	})

	g.Go(func() error {
		amount, err := uc.repo.TotalAmount(gctx)
		if err != nil {
			return fmt.Errorf("failed to sum expenses: %w", err)
		}
		totalAmount = amount
		return nil
	})

	g.Go(func() error {
		rows, err := uc.repo.MonthlyBreakdown(gctx, oneYearAgo)
		if err != nil {
			return fmt.Errorf("failed to load monthly breakdown: %w", err)
		}
		aggregates = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	monthly := make([]MonthlyStat, 0, len(aggregates))
	for _, row := range aggregates {
		monthly = append(monthly, MonthlyStat{
			Year:        row.Year,
			Month:       row.Month,
			MonthName:   time.Date(row.Year, time.Month(row.Month), 1, 0, 0, 0, 0, time.UTC).Format("Jan"),
			YearMonth:   fmt.Sprintf("%04d-%02d", row.Year, row.Month),
			Count:       row.Count,
			TotalAmount: row.TotalAmount,
		})
	}

	return &StatsOutput{
		TotalCount:  totalCount,
		TotalAmount: totalAmount,
		Monthly:     monthly,
	}, nil
}

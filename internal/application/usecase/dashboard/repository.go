// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyAggregate is one row of the month-grouped aggregation query.
type MonthlyAggregate struct {
	Year        int
	Month       int
	Count       int64
	TotalAmount decimal.Decimal
}

// Repository defines the read-side queries the dashboard needs. All
// queries span every user's expenses; the dashboard is a shared household
// view.
type Repository interface {
	// TotalCount returns the number of non-deleted expenses.
	TotalCount(ctx context.Context) (int64, error)

	// TotalAmount returns the summed amount of non-deleted expenses.
	TotalAmount(ctx context.Context) (decimal.Decimal, error)

	// MonthlyBreakdown returns per-month aggregates for expenses dated at
	// or after since, most recent month first.
	MonthlyBreakdown(ctx context.Context, since time.Time) ([]MonthlyAggregate, error)
}

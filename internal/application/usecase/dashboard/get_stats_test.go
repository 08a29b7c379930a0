package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type stubRepository struct {
	totalCount  int64
	totalAmount decimal.Decimal
	aggregates  []MonthlyAggregate

	countErr error

	gotSince time.Time
}

func (s *stubRepository) TotalCount(_ context.Context) (int64, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	return s.totalCount, nil
}

func (s *stubRepository) TotalAmount(_ context.Context) (decimal.Decimal, error) {
	return s.totalAmount, nil
}

func (s *stubRepository) MonthlyBreakdown(_ context.Context, since time.Time) ([]MonthlyAggregate, error) {
	s.gotSince = since
	return s.aggregates, nil
}

func TestGetStats_ReshapesMonthRows(t *testing.T) {
	repo := &stubRepository{
		totalCount:  5,
		totalAmount: decimal.RequireFromString("280.50"),
		aggregates: []MonthlyAggregate{
			{Year: 2024, Month: 7, Count: 2, TotalAmount: decimal.RequireFromString("180.00")},
			{Year: 2024, Month: 6, Count: 3, TotalAmount: decimal.RequireFromString("100.50")},
		},
	}
	uc := NewGetStatsUseCase(repo)

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if out.TotalCount != 5 {
		t.Errorf("expected total count 5, got %d", out.TotalCount)
	}
	if !out.TotalAmount.Equal(decimal.RequireFromString("280.50")) {
		t.Errorf("expected total amount 280.50, got %s", out.TotalAmount)
	}

	if len(out.Monthly) != 2 {
		t.Fatalf("expected 2 monthly rows, got %d", len(out.Monthly))
	}

	july := out.Monthly[0]
	if july.MonthName != "Jul" {
		t.Errorf("expected month name Jul, got %s", july.MonthName)
	}
	if july.YearMonth != "2024-07" {
		t.Errorf("expected year month 2024-07, got %s", july.YearMonth)
	}
	if july.Count != 2 {
		t.Errorf("expected count 2, got %d", july.Count)
	}

	june := out.Monthly[1]
	if june.MonthName != "Jun" {
		t.Errorf("expected month name Jun, got %s", june.MonthName)
	}
	if june.YearMonth != "2024-06" {
		t.Errorf("expected year month 2024-06, got %s", june.YearMonth)
	}
	if !june.TotalAmount.Equal(decimal.RequireFromString("100.50")) {
		t.Errorf("expected june total 100.50, got %s", june.TotalAmount)
	}
}

func TestGetStats_EmptyDataset(t *testing.T) {
	repo := &stubRepository{totalAmount: decimal.Zero}
	uc := NewGetStatsUseCase(repo)

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if out.TotalCount != 0 {
		t.Errorf("expected total count 0, got %d", out.TotalCount)
	}
	if out.TotalAmount.String() != "0" {
		t.Errorf("expected total amount 0, got %s", out.TotalAmount)
	}
	if len(out.Monthly) != 0 {
		t.Errorf("expected no monthly rows, got %d", len(out.Monthly))
	}
}

func TestGetStats_WindowCoversTrailingYear(t *testing.T) {
	repo := &stubRepository{totalAmount: decimal.Zero}
	uc := NewGetStatsUseCase(repo)

	before := time.Now().UTC().AddDate(-1, 0, 0)
	if _, err := uc.Execute(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	after := time.Now().UTC().AddDate(-1, 0, 0)

	if repo.gotSince.Before(before) || repo.gotSince.After(after) {
		t.Errorf("expected since within [%v, %v], got %v", before, after, repo.gotSince)
	}
}

func TestGetStats_PropagatesQueryErrors(t *testing.T) {
	queryErr := errors.New("connection reset")
	repo := &stubRepository{totalAmount: decimal.Zero, countErr: queryErr}
	uc := NewGetStatsUseCase(repo)

	_, err := uc.Execute(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, queryErr) {
		t.Errorf("expected wrapped query error, got %v", err)
	}
}

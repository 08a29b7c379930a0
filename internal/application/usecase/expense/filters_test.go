package expense

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestParseListQuery_Defaults(t *testing.T) {
	resolved, err := ParseListQuery(ListQueryParams{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resolved.Pagination.Page != 1 {
		t.Errorf("expected default page 1, got %d", resolved.Pagination.Page)
	}
	if resolved.Pagination.PageSize != 20 {
		t.Errorf("expected default page size 20, got %d", resolved.Pagination.PageSize)
	}
	if resolved.Sort.Field != adapter.SortFieldDate {
		t.Errorf("expected default sort field date, got %s", resolved.Sort.Field)
	}
	if resolved.Sort.Order != adapter.SortOrderDesc {
		t.Errorf("expected default sort order desc, got %s", resolved.Sort.Order)
	}
	if resolved.Filter.StartDate != nil || resolved.Filter.EndDate != nil {
		t.Error("expected no date filter by default")
	}
	if resolved.Filter.HasBillPhoto != nil {
		t.Error("expected no bill photo filter by default")
	}
}

func TestParseListQuery_DateRange(t *testing.T) {
	resolved, err := ParseListQuery(ListQueryParams{
		StartDate: "2025-01-01",
		EndDate:   "2025-01-15",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	wantStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !resolved.Filter.StartDate.Equal(wantStart) {
		t.Errorf("expected start date %v, got %v", wantStart, *resolved.Filter.StartDate)
	}

	wantEnd := time.Date(2025, 1, 15, 23, 59, 59, 999000000, time.UTC)
	if !resolved.Filter.EndDate.Equal(wantEnd) {
		t.Errorf("expected end date %v, got %v", wantEnd, *resolved.Filter.EndDate)
	}

	// An expense stamped mid-afternoon on the end day stays inside the range.
	sameDay := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)
	if sameDay.After(*resolved.Filter.EndDate) {
		t.Error("expected afternoon of end day to fall within range")
	}
	nextDay := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)
	if !nextDay.After(*resolved.Filter.EndDate) {
		t.Error("expected next day to fall outside range")
	}
}

func TestParseListQuery_MalformedDate(t *testing.T) {
	tests := []struct {
		name   string
		params ListQueryParams
	}{
		{"malformed start date", ListQueryParams{StartDate: "not-a-date"}},
		{"malformed end date", ListQueryParams{EndDate: "15/01/2025"}},
		{"malformed min amount", ListQueryParams{MinAmount: "ten"}},
		{"malformed max amount", ListQueryParams{MaxAmount: "1,50"}},
		{"malformed category id", ListQueryParams{CategoryIDs: []string{"not-a-uuid"}}},
		{"malformed user id", ListQueryParams{UserID: "42"}},
		{"malformed page", ListQueryParams{Page: "two"}},
		{"malformed page size", ListQueryParams{PageSize: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseListQuery(tt.params)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var expenseErr *domainerror.ExpenseError
			if !errors.As(err, &expenseErr) {
				t.Fatalf("expected ExpenseError, got %T", err)
			}
			if expenseErr.Code != domainerror.ErrCodeInvalidFilterValue {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidFilterValue, expenseErr.Code)
			}
		})
	}
}

func TestParseListQuery_PaginationClamps(t *testing.T) {
	tests := []struct {
		name         string
		page         string
		pageSize     string
		wantPage     int
		wantPageSize int
	}{
		{"zero page clamps to 1", "0", "", 1, 20},
		{"negative page clamps to 1", "-5", "", 1, 20},
		{"page size above maximum clamps to 100", "", "500", 1, 100},
		{"zero page size clamps to 1", "", "0", 1, 1},
		{"in-range values pass through", "3", "50", 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := ParseListQuery(ListQueryParams{Page: tt.page, PageSize: tt.pageSize})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resolved.Pagination.Page != tt.wantPage {
				t.Errorf("expected page %d, got %d", tt.wantPage, resolved.Pagination.Page)
			}
			if resolved.Pagination.PageSize != tt.wantPageSize {
				t.Errorf("expected page size %d, got %d", tt.wantPageSize, resolved.Pagination.PageSize)
			}
		})
	}
}

func TestParseListQuery_CategoryIDs(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	t.Run("single category", func(t *testing.T) {
		resolved, err := ParseListQuery(ListQueryParams{CategoryIDs: []string{first.String()}})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(resolved.Filter.CategoryIDs) != 1 || resolved.Filter.CategoryIDs[0] != first {
			t.Errorf("expected single category %s, got %v", first, resolved.Filter.CategoryIDs)
		}
	})

	t.Run("repeated categories collect into a set", func(t *testing.T) {
		resolved, err := ParseListQuery(ListQueryParams{CategoryIDs: []string{first.String(), second.String()}})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(resolved.Filter.CategoryIDs) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(resolved.Filter.CategoryIDs))
		}
		if resolved.Filter.CategoryIDs[0] != first || resolved.Filter.CategoryIDs[1] != second {
			t.Errorf("expected [%s %s], got %v", first, second, resolved.Filter.CategoryIDs)
		}
	})
}

func TestParseListQuery_HasBillPhoto(t *testing.T) {
	t.Run("true filters for attached photos", func(t *testing.T) {
		resolved, err := ParseListQuery(ListQueryParams{HasBillPhoto: "true"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if resolved.Filter.HasBillPhoto == nil || !*resolved.Filter.HasBillPhoto {
			t.Error("expected HasBillPhoto filter set to true")
		}
	})

	t.Run("false filters for missing photos", func(t *testing.T) {
		resolved, err := ParseListQuery(ListQueryParams{HasBillPhoto: "false"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if resolved.Filter.HasBillPhoto == nil || *resolved.Filter.HasBillPhoto {
			t.Error("expected HasBillPhoto filter set to false")
		}
	})

	t.Run("absent leaves the filter unset", func(t *testing.T) {
		resolved, err := ParseListQuery(ListQueryParams{})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if resolved.Filter.HasBillPhoto != nil {
			t.Error("expected no HasBillPhoto filter")
		}
	})
}

func TestParseListQuery_Sorting(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		wantField adapter.ExpenseSortField
		wantOrder adapter.ExpenseSortOrder
	}{
		{"amount ascending", "amount", "asc", adapter.SortFieldAmount, adapter.SortOrderAsc},
		{"created at descending", "createdAt", "desc", adapter.SortFieldCreatedAt, adapter.SortOrderDesc},
		{"unknown field falls back to date", "secretField", "asc", adapter.SortFieldDate, adapter.SortOrderAsc},
		{"unknown order falls back to desc", "description", "sideways", adapter.SortFieldDescription, adapter.SortOrderDesc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := ParseListQuery(ListQueryParams{SortBy: tt.sortBy, SortOrder: tt.sortOrder})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resolved.Sort.Field != tt.wantField {
				t.Errorf("expected sort field %s, got %s", tt.wantField, resolved.Sort.Field)
			}
			if resolved.Sort.Order != tt.wantOrder {
				t.Errorf("expected sort order %s, got %s", tt.wantOrder, resolved.Sort.Order)
			}
		})
	}
}

func TestParseListQuery_Amounts(t *testing.T) {
	resolved, err := ParseListQuery(ListQueryParams{MinAmount: "10.50", MaxAmount: "200"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !resolved.Filter.MinAmount.Equal(decimal.RequireFromString("10.50")) {
		t.Errorf("expected min amount 10.50, got %s", resolved.Filter.MinAmount)
	}
	if !resolved.Filter.MaxAmount.Equal(decimal.RequireFromString("200")) {
		t.Errorf("expected max amount 200, got %s", resolved.Filter.MaxAmount)
	}
}

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		pageSize    int
		totalCount  int64
		wantPages   int
		wantNext    bool
		wantPrev    bool
	}{
		{"middle page", 2, 10, 25, 3, true, true},
		{"first page", 1, 10, 25, 3, true, false},
		{"last page", 3, 10, 25, 3, false, true},
		{"exact multiple", 2, 10, 20, 2, false, true},
		{"empty result", 1, 20, 0, 0, false, false},
		{"single short page", 1, 20, 5, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPageInfo(tt.page, tt.pageSize, tt.totalCount)
			if info.TotalPages != tt.wantPages {
				t.Errorf("expected %d total pages, got %d", tt.wantPages, info.TotalPages)
			}
			if info.HasNextPage != tt.wantNext {
				t.Errorf("expected hasNextPage %v, got %v", tt.wantNext, info.HasNextPage)
			}
			if info.HasPreviousPage != tt.wantPrev {
				t.Errorf("expected hasPreviousPage %v, got %v", tt.wantPrev, info.HasPreviousPage)
			}
			if info.TotalCount != tt.totalCount {
				t.Errorf("expected total count %d, got %d", tt.totalCount, info.TotalCount)
			}
		})
	}
}

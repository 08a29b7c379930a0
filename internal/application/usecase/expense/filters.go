// Package expense contains expense-related use cases.
package expense

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100

	dateLayout = "2006-01-02"
)

// sortFieldMap whitelists the expense fields valid for sorting. Unknown
// fields fall back to the date default.
var sortFieldMap = map[string]adapter.ExpenseSortField{
	"date":        adapter.SortFieldDate,
	"amount":      adapter.SortFieldAmount,
	"description": adapter.SortFieldDescription,
	"createdAt":   adapter.SortFieldCreatedAt,
	"updatedAt":   adapter.SortFieldUpdatedAt,
}

// ListQueryParams is the raw, request-scoped query parameter bag for the
// expense list endpoint. All fields are optional strings; an empty value
// means "no filter". CategoryIDs collects every occurrence of the
// repeatable categoryId parameter.
type ListQueryParams struct {
	StartDate    string
	EndDate      string
	MinAmount    string
	MaxAmount    string
	CategoryIDs  []string
	UserID       string
	Search       string
	HasBillPhoto string
	Page         string
	PageSize     string
	SortBy       string
	SortOrder    string
}

// ResolvedListQuery is the immutable result of parsing ListQueryParams:
// predicate, sort directive and paging, ready to hand to the repository.
type ResolvedListQuery struct {
	Filter     adapter.ExpenseFilter
	Sort       adapter.ExpenseSort
	Pagination adapter.ExpensePagination
}

// ParseListQuery converts the raw parameter bag into a resolved query.
// Malformed dates, amounts and ids are rejected rather than silently
// coerced; page and pageSize are clamped, not rejected, when merely out
// of range.
func ParseListQuery(raw ListQueryParams) (ResolvedListQuery, error) {
	var resolved ResolvedListQuery

	if raw.StartDate != "" {
		startDate, err := time.Parse(dateLayout, raw.StartDate)
		if err != nil {
			return resolved, invalidFilter("startDate must be formatted as YYYY-MM-DD", err)
		}
		resolved.Filter.StartDate = &startDate
	}

	if raw.EndDate != "" {
		endDate, err := time.Parse(dateLayout, raw.EndDate)
		if err != nil {
			return resolved, invalidFilter("endDate must be formatted as YYYY-MM-DD", err)
		}
		// Make the range inclusive of the entire end day.
		endOfDay := time.Date(
			endDate.Year(), endDate.Month(), endDate.Day(),
			23, 59, 59, 999000000, time.UTC,
		)
		resolved.Filter.EndDate = &endOfDay
	}

	if raw.MinAmount != "" {
		minAmount, err := decimal.NewFromString(raw.MinAmount)
		if err != nil {
			return resolved, invalidFilter("minAmount must be a decimal number", err)
		}
		resolved.Filter.MinAmount = &minAmount
	}

	if raw.MaxAmount != "" {
		maxAmount, err := decimal.NewFromString(raw.MaxAmount)
		if err != nil {
			return resolved, invalidFilter("maxAmount must be a decimal number", err)
		}
		resolved.Filter.MaxAmount = &maxAmount
	}

	for _, idStr := range raw.CategoryIDs {
		idStr = strings.TrimSpace(idStr)
		if idStr == "" {
			continue
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return resolved, invalidFilter("categoryId must be a valid id", err)
		}
		resolved.Filter.CategoryIDs = append(resolved.Filter.CategoryIDs, id)
	}

	if raw.UserID != "" {
		id, err := uuid.Parse(raw.UserID)
		if err != nil {
			return resolved, invalidFilter("userId must be a valid id", err)
		}
		resolved.Filter.UserID = &id
	}

	if search := strings.TrimSpace(raw.Search); search != "" {
		resolved.Filter.Search = search
	}

	switch raw.HasBillPhoto {
	case "true":
		hasPhoto := true
		resolved.Filter.HasBillPhoto = &hasPhoto
	case "false":
		hasPhoto := false
		resolved.Filter.HasBillPhoto = &hasPhoto
	}

	page := defaultPage
	if raw.Page != "" {
		parsed, err := strconv.Atoi(raw.Page)
		if err != nil {
			return resolved, invalidFilter("page must be an integer", err)
		}
		page = parsed
	}
	if page < 1 {
		page = 1
	}

	pageSize := defaultPageSize
	if raw.PageSize != "" {
		parsed, err := strconv.Atoi(raw.PageSize)
		if err != nil {
			return resolved, invalidFilter("pageSize must be an integer", err)
		}
		pageSize = parsed
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	resolved.Pagination = adapter.ExpensePagination{
		Page:     page,
		PageSize: pageSize,
	}

	sortField := adapter.SortFieldDate
	if field, ok := sortFieldMap[raw.SortBy]; ok {
		sortField = field
	}

	sortOrder := adapter.SortOrderDesc
	if raw.SortOrder == "asc" {
		sortOrder = adapter.SortOrderAsc
	}

	resolved.Sort = adapter.ExpenseSort{
		Field: sortField,
		Order: sortOrder,
	}

	return resolved, nil
}

// PageInfo holds the pagination metadata derived from a total count.
type PageInfo struct {
	Page            int
	PageSize        int
	TotalCount      int64
	TotalPages      int
	HasNextPage     bool
	HasPreviousPage bool
}

// NewPageInfo computes pagination metadata for an already-resolved page and
// page size. Pure function of its inputs; it performs no queries.
func NewPageInfo(page, pageSize int, totalCount int64) PageInfo {
	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))

	return PageInfo{
		Page:            page,
		PageSize:        pageSize,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// Skip returns the row offset for the resolved page.
func (q ResolvedListQuery) Skip() int {
	return (q.Pagination.Page - 1) * q.Pagination.PageSize
}

// Limit returns the row limit for the resolved page.
func (q ResolvedListQuery) Limit() int {
	return q.Pagination.PageSize
}

func invalidFilter(message string, err error) error {
	return domainerror.NewExpenseError(
		domainerror.ErrCodeInvalidFilterValue,
		message,
		err,
	)
}

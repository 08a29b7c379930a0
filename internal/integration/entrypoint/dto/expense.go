package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      string  `json:"amount" binding:"required"`
	CategoryID  string  `json:"category_id" binding:"required"`
	BillPhoto   *string `json:"bill_photo,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *string `json:"amount,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
	BillPhoto   *string `json:"bill_photo,omitempty"`
}

// ExpenseCategoryResponse represents category information in expense responses.
type ExpenseCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ExpenseUserResponse represents the restricted owner projection in expense
// responses.
type ExpenseUserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string                   `json:"id"`
	UserID      string                   `json:"user_id"`
	Date        string                   `json:"date"`
	Description string                   `json:"description"`
	Amount      string                   `json:"amount"`
	CategoryID  string                   `json:"category_id"`
	Category    *ExpenseCategoryResponse `json:"category,omitempty"`
	User        *ExpenseUserResponse     `json:"user,omitempty"`
	BillPhoto   *string                  `json:"bill_photo,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// PaginationResponse represents pagination metadata in API responses.
type PaginationResponse struct {
	Page            int   `json:"page"`
	PageSize        int   `json:"page_size"`
	Total           int64 `json:"total"`
	TotalPages      int   `json:"total_pages"`
	HasNextPage     bool  `json:"has_next_page"`
	HasPreviousPage bool  `json:"has_previous_page"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse  `json:"expenses"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		UserID:      e.UserID.String(),
		Date:        e.Date.Format(time.RFC3339),
		Description: e.Description,
		Amount:      e.Amount.String(),
		CategoryID:  e.CategoryID.String(),
		BillPhoto:   e.BillPhoto,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseWithRelationsResponse converts an ExpenseWithRelations entity to
// an ExpenseResponse DTO with its nested projections.
func ToExpenseWithRelationsResponse(e *entity.ExpenseWithRelations) ExpenseResponse {
	response := ToExpenseResponse(e.Expense)

	if e.Category != nil {
		response.Category = &ExpenseCategoryResponse{
			ID:   e.Category.ID.String(),
			Name: e.Category.Name,
		}
	}

	if e.User != nil {
		response.User = &ExpenseUserResponse{
			ID:    e.User.ID.String(),
			Name:  e.User.Name,
			Email: e.User.Email,
		}
	}

	return response
}

// ToExpenseListResponse converts a ListExpensesOutput to ExpenseListResponse.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		expenses[i] = ToExpenseWithRelationsResponse(e)
	}

	return ExpenseListResponse{
		Expenses: expenses,
		Pagination: PaginationResponse{
			Page:            output.PageInfo.Page,
			PageSize:        output.PageInfo.PageSize,
			Total:           output.PageInfo.TotalCount,
			TotalPages:      output.PageInfo.TotalPages,
			HasNextPage:     output.PageInfo.HasNextPage,
			HasPreviousPage: output.PageInfo.HasPreviousPage,
		},
	}
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SetLimitRequest represents the request body for configuring a monthly limit.
type SetLimitRequest struct {
	CategoryID    string `json:"category_id" binding:"required"`
	LimitAmount   string `json:"limit_amount" binding:"required"`
	AlertOnExceed bool   `json:"alert_on_exceed"`
}

// LimitResponse represents a single monthly limit in API responses.
type LimitResponse struct {
	ID            string                   `json:"id"`
	CategoryID    string                   `json:"category_id"`
	Category      *ExpenseCategoryResponse `json:"category,omitempty"`
	LimitAmount   string                   `json:"limit_amount"`
	AlertOnExceed bool                     `json:"alert_on_exceed"`
	Spent         string                   `json:"spent"`
	Percentage    string                   `json:"percentage"`
}

// LimitListResponse represents the response for listing monthly limits.
type LimitListResponse struct {
	Limits []LimitResponse `json:"limits"`
}

// ToLimitResponse converts a domain MonthlyLimit entity to a LimitResponse DTO.
func ToLimitResponse(limit *entity.MonthlyLimit) LimitResponse {
	return LimitResponse{
		ID:            limit.ID.String(),
		CategoryID:    limit.CategoryID.String(),
		LimitAmount:   limit.LimitAmount.String(),
		AlertOnExceed: limit.AlertOnExceed,
		Spent:         "0",
		Percentage:    "0",
	}
}

// ToLimitListResponse converts limits with progress to a LimitListResponse.
func ToLimitListResponse(limits []*entity.MonthlyLimitWithProgress) LimitListResponse {
	responses := make([]LimitResponse, len(limits))
	for i, l := range limits {
		response := ToLimitResponse(l.Limit)
		response.Spent = l.Spent.String()
		if l.Limit.LimitAmount.IsPositive() {
			response.Percentage = l.Spent.Div(l.Limit.LimitAmount).Mul(decimal.NewFromInt(100)).Round(2).String()
		}
		if l.Category != nil {
			response.Category = &ExpenseCategoryResponse{
				ID:   l.Category.ID.String(),
				Name: l.Category.Name,
			}
		}
		responses[i] = response
	}
	return LimitListResponse{Limits: responses}
}

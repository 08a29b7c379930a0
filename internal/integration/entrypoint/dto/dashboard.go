package dto

import (
	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
)

// MonthlyStatResponse represents one month of the dashboard breakdown.
type MonthlyStatResponse struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	MonthName   string `json:"month_name"`
	YearMonth   string `json:"year_month"`
	Count       int64  `json:"count"`
	TotalAmount string `json:"total_amount"`
}

// StatsResponse represents the dashboard statistics.
type StatsResponse struct {
	TotalCount  int64                 `json:"total_count"`
	TotalAmount string                `json:"total_amount"`
	Monthly     []MonthlyStatResponse `json:"monthly"`
}

// ToStatsResponse converts a StatsOutput to a StatsResponse DTO.
func ToStatsResponse(output *dashboard.StatsOutput) StatsResponse {
	monthly := make([]MonthlyStatResponse, len(output.Monthly))
	for i, m := range output.Monthly {
		monthly[i] = MonthlyStatResponse{
			Year:        m.Year,
			Month:       m.Month,
			MonthName:   m.MonthName,
			YearMonth:   m.YearMonth,
			Count:       m.Count,
			TotalAmount: m.TotalAmount.String(),
		}
	}

	return StatsResponse{
		TotalCount:  output.TotalCount,
		TotalAmount: output.TotalAmount.String(),
		Monthly:     monthly,
	}
}

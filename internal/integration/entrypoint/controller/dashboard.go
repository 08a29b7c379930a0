// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	statsUseCase *dashboard.GetStatsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(statsUseCase *dashboard.GetStatsUseCase) *DashboardController {
	return &DashboardController{
		statsUseCase: statsUseCase,
	}
}

// Stats handles GET /dashboard/stats requests. The statistics cover all
// expenses in the system, not just the requesting user's.
func (c *DashboardController) Stats(ctx *gin.Context) {
	output, err := c.statsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		slog.ErrorContext(ctx.Request.Context(), "failed to compute dashboard stats",
			slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatsResponse(output))
}

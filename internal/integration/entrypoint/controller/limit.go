// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/limit"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// LimitController handles monthly spending limit endpoints.
type LimitController struct {
	setUseCase  *limit.SetLimitUseCase
	listUseCase *limit.ListLimitsUseCase
}

// NewLimitController creates a new limit controller instance.
func NewLimitController(setUseCase *limit.SetLimitUseCase, listUseCase *limit.ListLimitsUseCase) *LimitController {
	return &LimitController{
		setUseCase:  setUseCase,
		listUseCase: listUseCase,
	}
}

// List handles GET /limits requests. Each limit is returned with the
// spending accumulated in the current calendar month.
func (c *LimitController) List(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	limits, err := c.listUseCase.Execute(ctx.Request.Context(), actor)
	if err != nil {
		c.handleLimitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLimitListResponse(limits))
}

// Set handles PUT /limits requests. It creates or replaces the acting
// user's limit for the given category.
func (c *LimitController) Set(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.SetLimitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidLimitAmount),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "category_id must be a valid UUID",
			Code:  string(domainerror.ErrCodeLimitNotFound),
		})
		return
	}

	limitAmount, err := decimal.NewFromString(req.LimitAmount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "limit_amount must be a valid decimal number",
			Code:  string(domainerror.ErrCodeInvalidLimitAmount),
		})
		return
	}

	input := limit.SetLimitInput{
		CategoryID:    categoryID,
		LimitAmount:   limitAmount,
		AlertOnExceed: req.AlertOnExceed,
	}

	saved, err := c.setUseCase.Execute(ctx.Request.Context(), actor, input)
	if err != nil {
		c.handleLimitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLimitResponse(saved))
}

// handleLimitError handles limit errors and returns appropriate HTTP responses.
func (c *LimitController) handleLimitError(ctx *gin.Context, err error) {
	var limErr *domainerror.LimitError
	if errors.As(err, &limErr) {
		statusCode := c.getStatusCodeForLimitError(limErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: limErr.Message,
			Code:  string(limErr.Code),
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForLimitError maps limit error codes to HTTP status codes.
func (c *LimitController) getStatusCodeForLimitError(code domainerror.LimitErrorCode) int {
	switch code {
	case domainerror.ErrCodeLimitNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidLimitAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

const expenseDateLayout = "2006-01-02"

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase   *expense.ListExpensesUseCase
	createUseCase *expense.CreateExpenseUseCase
	getUseCase    *expense.GetExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	getUseCase *expense.GetExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	raw := expense.ListQueryParams{
		StartDate:    ctx.Query("startDate"),
		EndDate:      ctx.Query("endDate"),
		MinAmount:    ctx.Query("minAmount"),
		MaxAmount:    ctx.Query("maxAmount"),
		CategoryIDs:  ctx.QueryArray("categoryId"),
		UserID:       ctx.Query("userId"),
		Search:       ctx.Query("search"),
		HasBillPhoto: ctx.Query("hasBillPhoto"),
		Page:         ctx.Query("page"),
		PageSize:     ctx.Query("pageSize"),
		SortBy:       ctx.Query("sortBy"),
		SortOrder:    ctx.Query("sortOrder"),
	}

	query, err := expense.ParseListQuery(raw)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), actor, query)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	date, err := time.Parse(expenseDateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "date must be formatted as YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "amount must be a valid decimal number",
			Code:  string(domainerror.ErrCodeInvalidExpenseAmount),
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "category_id must be a valid UUID",
			Code:  string(domainerror.ErrCodeExpCategoryNotFound),
		})
		return
	}

	input := expense.CreateExpenseInput{
		Date:        date,
		Description: req.Description,
		Amount:      amount,
		CategoryID:  categoryID,
		BillPhoto:   req.BillPhoto,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), actor, input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	response := dto.ToExpenseResponse(output.Expense)
	if output.Category != nil {
		response.Category = &dto.ExpenseCategoryResponse{
			ID:   output.Category.ID.String(),
			Name: output.Category.Name,
		}
	}

	ctx.JSON(http.StatusCreated, response)
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Expense not found",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
		return
	}

	result, err := c.getUseCase.Execute(ctx.Request.Context(), actor, id)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseWithRelationsResponse(result))
}

// Update handles PATCH /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Expense not found",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	input := expense.UpdateExpenseInput{
		Description: req.Description,
		BillPhoto:   req.BillPhoto,
	}

	if req.Date != nil {
		date, err := time.Parse(expenseDateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "date must be formatted as YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidExpenseDate),
			})
			return
		}
		input.Date = &date
	}

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "amount must be a valid decimal number",
				Code:  string(domainerror.ErrCodeInvalidExpenseAmount),
			})
			return
		}
		input.Amount = &amount
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "category_id must be a valid UUID",
				Code:  string(domainerror.ErrCodeExpCategoryNotFound),
			})
			return
		}
		input.CategoryID = &categoryID
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), actor, id, input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(updated))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Expense not found",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), actor, id); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleExpenseError handles expense errors and returns appropriate HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		statusCode := c.getStatusCodeForExpenseError(expErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeMissingExpenseFields,
		domainerror.ErrCodeInvalidFilterValue,
		domainerror.ErrCodeExpCategoryNotFound:
		return http.StatusBadRequest
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedExpense:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthenticated writes the standard response for requests that
// reach a protected handler without an authenticated user.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

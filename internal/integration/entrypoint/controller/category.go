// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/usecase/category"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	createUseCase *category.CreateCategoryUseCase
	listUseCase   *category.ListCategoriesUseCase
	updateUseCase *category.UpdateCategoryUseCase
	deleteUseCase *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	createUseCase *category.CreateCategoryUseCase,
	listUseCase *category.ListCategoriesUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(categories))
}

// Create handles POST /categories requests. Only admins may create categories.
func (c *CategoryController) Create(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	if !actor.Role.IsAdmin() {
		respondForbidden(ctx)
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeCategoryNotFound),
		})
		return
	}

	input := category.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(created))
}

// Update handles PATCH /categories/:id requests. Only admins may update categories.
func (c *CategoryController) Update(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	if !actor.Role.IsAdmin() {
		respondForbidden(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Category not found",
			Code:  string(domainerror.ErrCodeCategoryNotFound),
		})
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeCategoryNotFound),
		})
		return
	}

	input := category.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), id, input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(updated))
}

// Delete handles DELETE /categories/:id requests. Only admins may delete
// categories, and only when no expenses reference them.
func (c *CategoryController) Delete(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	if !actor.Role.IsAdmin() {
		respondForbidden(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Category not found",
			Code:  string(domainerror.ErrCodeCategoryNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCategoryError handles category errors and returns appropriate HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		statusCode := c.getStatusCodeForCategoryError(catErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func (c *CategoryController) getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameExists,
		domainerror.ErrCodeCategoryInUse:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondForbidden writes the standard response for authenticated users
// without the required role.
func respondForbidden(ctx *gin.Context) {
	ctx.JSON(http.StatusForbidden, dto.ErrorResponse{
		Error: "Insufficient permissions",
		Code:  string(domainerror.ErrCodeForbidden),
	})
}

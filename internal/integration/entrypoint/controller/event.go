// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/usecase/event"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

const eventDateLayout = "2006-01-02"

// EventController handles calendar event endpoints.
type EventController struct {
	createUseCase *event.CreateEventUseCase
	listUseCase   *event.ListEventsUseCase
	updateUseCase *event.UpdateEventUseCase
	deleteUseCase *event.DeleteEventUseCase
}

// NewEventController creates a new event controller instance.
func NewEventController(
	createUseCase *event.CreateEventUseCase,
	listUseCase *event.ListEventsUseCase,
	updateUseCase *event.UpdateEventUseCase,
	deleteUseCase *event.DeleteEventUseCase,
) *EventController {
	return &EventController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /events requests. An optional from/to window narrows the
// range; without one the current calendar month is used.
func (c *EventController) List(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var input event.ListEventsInput

	if fromStr := ctx.Query("from"); fromStr != "" {
		from, err := time.Parse(eventDateLayout, fromStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "from must be formatted as YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidEventDate),
			})
			return
		}
		input.From = from
	}
	if toStr := ctx.Query("to"); toStr != "" {
		to, err := time.Parse(eventDateLayout, toStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "to must be formatted as YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidEventDate),
			})
			return
		}
		// Make the upper bound inclusive of the whole day.
		input.To = to.Add(24*time.Hour - time.Nanosecond)
	}

	events, err := c.listUseCase.Execute(ctx.Request.Context(), actor, input)
	if err != nil {
		c.handleEventError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEventListResponse(events))
}

// Create handles POST /events requests.
func (c *EventController) Create(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingEventFields),
		})
		return
	}

	date, err := time.Parse(eventDateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "date must be formatted as YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidEventDate),
		})
		return
	}

	input := event.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), actor, input)
	if err != nil {
		c.handleEventError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEventResponse(created))
}

// Update handles PATCH /events/:id requests.
func (c *EventController) Update(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Event not found",
			Code:  string(domainerror.ErrCodeEventNotFound),
		})
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingEventFields),
		})
		return
	}

	input := event.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
	}

	if req.Date != nil {
		date, err := time.Parse(eventDateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "date must be formatted as YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidEventDate),
			})
			return
		}
		input.Date = &date
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), actor, id, input)
	if err != nil {
		c.handleEventError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEventResponse(updated))
}

// Delete handles DELETE /events/:id requests.
func (c *EventController) Delete(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Event not found",
			Code:  string(domainerror.ErrCodeEventNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), actor, id); err != nil {
		c.handleEventError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleEventError handles event errors and returns appropriate HTTP responses.
func (c *EventController) handleEventError(ctx *gin.Context, err error) {
	var evtErr *domainerror.EventError
	if errors.As(err, &evtErr) {
		statusCode := c.getStatusCodeForEventError(evtErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: evtErr.Message,
			Code:  string(evtErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForEventError maps event error codes to HTTP status codes.
func (c *EventController) getStatusCodeForEventError(code domainerror.EventErrorCode) int {
	switch code {
	case domainerror.ErrCodeEventNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedEvent:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidEventDate,
		domainerror.ErrCodeMissingEventFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

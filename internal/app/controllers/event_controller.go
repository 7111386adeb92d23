package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/app/models/dto"
	"github.com/aaryan/councilhub/internal/app/services"
	"github.com/aaryan/councilhub/internal/middleware"
	"github.com/aaryan/councilhub/internal/pkg/blobstore"
)

// EventController handles event endpoints
type EventController struct {
	eventService *services.EventService
	blobs        blobstore.Store
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService, blobs blobstore.Store) *EventController {
	return &EventController{
		eventService: eventService,
		blobs:        blobs,
	}
}

func (c *EventController) resolve(ref blobstore.Ref) string {
	return c.blobs.URL(ref)
}

// ListUpcoming retrieves public upcoming events
// @Summary List upcoming events
// @Description Returns public upcoming events, soonest first
// @Tags events
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.EventResponse} "Upcoming events"
// @Failure 503 {object} dto.ErrorResponse "Service not ready"
// @Router /events/upcoming [get]
func (c *EventController) ListUpcoming(ctx *gin.Context) {
	events, err := c.eventService.ListUpcoming(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEventResponses(events, c.resolve)))
}

// ListPast retrieves public past events
// @Summary List past events
// @Description Returns public past events, most recent first
// @Tags events
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.EventResponse} "Past events"
// @Failure 503 {object} dto.ErrorResponse "Service not ready"
// @Router /events/past [get]
func (c *EventController) ListPast(ctx *gin.Context) {
	events, err := c.eventService.ListPast(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEventResponses(events, c.resolve)))
}

// Get retrieves one event, drafts included
// @Summary Get event
// @Description Returns an event by ID regardless of visibility. Admin only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Event"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /events/{id} [get]
func (c *EventController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	event, err := c.eventService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewEventResponse(*event, c.resolve)))
}

// Create adds an event
// @Summary Add event
// @Description Creates an event, optionally published immediately. Photo order is preserved. Admin only.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.APIResponse{data=dto.IDResponse} "Created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /events [post]
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	event := &models.Event{
		Name:             req.Name,
		Date:             req.Date,
		Description:      req.Description,
		IsPast:           req.IsPast,
		Outcomes:         req.Outcomes,
		RegistrationLink: req.RegistrationLink,
		Photos:           req.Photos,
		Poster:           req.Poster,
	}
	id, err := c.eventService.Create(ctx.Request.Context(), event, req.Publish)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.IDResponse{ID: id}))
}

// Update rewrites an event
// @Summary Update event
// @Description Rewrites an event's fields, including the photo sequence, without changing visibility. Admin only.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.UpdateEventRequest true "Event details"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Updated"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /events/{id} [put]
func (c *EventController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	event := &models.Event{
		ID:               id,
		Name:             req.Name,
		Date:             req.Date,
		Description:      req.Description,
		IsPast:           req.IsPast,
		Outcomes:         req.Outcomes,
		RegistrationLink: req.RegistrationLink,
		Photos:           req.Photos,
		Poster:           req.Poster,
	}
	if err := c.eventService.Update(ctx.Request.Context(), event); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Event updated"}))
}

// Publish makes an event public
// @Summary Publish event
// @Description Makes a draft event publicly visible. Admin only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Published"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /events/{id}/publish [post]
func (c *EventController) Publish(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.eventService.Publish(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Event published"}))
}

// Delete removes an event
// @Summary Delete event
// @Description Removes an event together with its photos and poster. Admin only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /events/{id} [delete]
func (c *EventController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.eventService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Event deleted"}))
}

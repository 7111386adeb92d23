package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/app/models/dto"
	"github.com/aaryan/councilhub/internal/app/services"
	"github.com/aaryan/councilhub/internal/middleware"
)

// AnnouncementController handles announcement endpoints
type AnnouncementController struct {
	announcementService *services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService *services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// ListPublic retrieves public announcements
// @Summary List announcements
// @Description Returns public announcements, newest first, optionally filtered by category
// @Tags announcements
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} dto.APIResponse{data=[]models.Announcement} "Announcements"
// @Failure 503 {object} dto.ErrorResponse "Service not ready"
// @Router /announcements [get]
func (c *AnnouncementController) ListPublic(ctx *gin.Context) {
	var (
		announcements []models.Announcement
		err           error
	)
	if category := ctx.Query("category"); category != "" {
		announcements, err = c.announcementService.ListPublicByCategory(ctx.Request.Context(), category)
	} else {
		announcements, err = c.announcementService.ListPublic(ctx.Request.Context())
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(announcements))
}

// Get retrieves one announcement, drafts included
// @Summary Get announcement
// @Description Returns an announcement by ID regardless of visibility. Admin only.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.APIResponse{data=models.Announcement} "Announcement"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /announcements/{id} [get]
func (c *AnnouncementController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	announcement, err := c.announcementService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(announcement))
}

// Post creates an announcement
// @Summary Post announcement
// @Description Creates an announcement stamped with the current time, optionally published immediately. Admin only.
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PostAnnouncementRequest true "Announcement details"
// @Success 201 {object} dto.APIResponse{data=dto.IDResponse} "Created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /announcements [post]
func (c *AnnouncementController) Post(ctx *gin.Context) {
	var req dto.PostAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.announcementService.Post(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.IDResponse{ID: id}))
}

// Update rewrites an announcement
// @Summary Update announcement
// @Description Rewrites an announcement's fields, keeping the original posting time and visibility. Admin only.
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Param request body dto.UpdateAnnouncementRequest true "Announcement details"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Updated"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /announcements/{id} [put]
func (c *AnnouncementController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	announcement := &models.Announcement{
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	}
	if err := c.announcementService.Update(ctx.Request.Context(), announcement); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Announcement updated"}))
}

// Publish makes an announcement public
// @Summary Publish announcement
// @Description Makes a draft announcement publicly visible. Admin only.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Published"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /announcements/{id}/publish [post]
func (c *AnnouncementController) Publish(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.announcementService.Publish(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Announcement published"}))
}

// Delete removes an announcement
// @Summary Delete announcement
// @Description Removes an announcement permanently. Admin only.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /announcements/{id} [delete]
func (c *AnnouncementController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.announcementService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Announcement deleted"}))
}

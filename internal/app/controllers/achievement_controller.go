package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/app/models/dto"
	"github.com/aaryan/councilhub/internal/app/services"
	"github.com/aaryan/councilhub/internal/middleware"
)

// AchievementController handles achievement endpoints
type AchievementController struct {
	achievementService *services.AchievementService
}

// NewAchievementController creates a new AchievementController
func NewAchievementController(achievementService *services.AchievementService) *AchievementController {
	return &AchievementController{
		achievementService: achievementService,
	}
}

// ListPublic retrieves public achievements
// @Summary List achievements
// @Description Returns public achievements, most recent first, optionally filtered by category
// @Tags achievements
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} dto.APIResponse{data=[]models.Achievement} "Achievements"
// @Failure 503 {object} dto.ErrorResponse "Service not ready"
// @Router /achievements [get]
func (c *AchievementController) ListPublic(ctx *gin.Context) {
	var (
		achievements []models.Achievement
		err          error
	)
	if category := ctx.Query("category"); category != "" {
		achievements, err = c.achievementService.ListPublicByCategory(ctx.Request.Context(), category)
	} else {
		achievements, err = c.achievementService.ListPublic(ctx.Request.Context())
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(achievements))
}

// Get retrieves one achievement, drafts included
// @Summary Get achievement
// @Description Returns an achievement by ID regardless of visibility. Admin only.
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Achievement ID"
// @Success 200 {object} dto.APIResponse{data=models.Achievement} "Achievement"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /achievements/{id} [get]
func (c *AchievementController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	achievement, err := c.achievementService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(achievement))
}

// Create adds an achievement
// @Summary Add achievement
// @Description Creates an achievement, optionally published immediately. Admin only.
// @Tags achievements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAchievementRequest true "Achievement details"
// @Success 201 {object} dto.APIResponse{data=dto.IDResponse} "Created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /achievements [post]
func (c *AchievementController) Create(ctx *gin.Context) {
	var req dto.CreateAchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	achievement := &models.Achievement{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
		Recipients:  req.Recipients,
	}
	id, err := c.achievementService.Create(ctx.Request.Context(), achievement, req.Publish)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.IDResponse{ID: id}))
}

// Update rewrites an achievement
// @Summary Update achievement
// @Description Rewrites an achievement's fields without changing visibility. Admin only.
// @Tags achievements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Achievement ID"
// @Param request body dto.UpdateAchievementRequest true "Achievement details"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Updated"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /achievements/{id} [put]
func (c *AchievementController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateAchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	achievement := &models.Achievement{
		ID:          id,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
		Recipients:  req.Recipients,
	}
	if err := c.achievementService.Update(ctx.Request.Context(), achievement); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Achievement updated"}))
}

// Publish makes an achievement public
// @Summary Publish achievement
// @Description Makes a draft achievement publicly visible. Admin only.
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Achievement ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Published"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /achievements/{id}/publish [post]
func (c *AchievementController) Publish(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.achievementService.Publish(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Achievement published"}))
}

// Delete removes an achievement
// @Summary Delete achievement
// @Description Removes an achievement permanently. Admin only.
// @Tags achievements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Achievement ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /achievements/{id} [delete]
func (c *AchievementController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.achievementService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Achievement deleted"}))
}

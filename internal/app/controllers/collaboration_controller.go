package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/app/models/dto"
	"github.com/aaryan/councilhub/internal/app/services"
	"github.com/aaryan/councilhub/internal/middleware"
)

// CollaborationController handles industry collaboration endpoints
type CollaborationController struct {
	collaborationService *services.CollaborationService
}

// NewCollaborationController creates a new CollaborationController
func NewCollaborationController(collaborationService *services.CollaborationService) *CollaborationController {
	return &CollaborationController{
		collaborationService: collaborationService,
	}
}

// ListPublic retrieves public collaborations
// @Summary List collaborations
// @Description Returns public industry collaborations
// @Tags collaborations
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Collaboration} "Collaborations"
// @Failure 503 {object} dto.ErrorResponse "Service not ready"
// @Router /collaborations [get]
func (c *CollaborationController) ListPublic(ctx *gin.Context) {
	collaborations, err := c.collaborationService.ListPublic(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(collaborations))
}

// Get retrieves one collaboration, drafts included
// @Summary Get collaboration
// @Description Returns a collaboration by ID regardless of visibility. Admin only.
// @Tags collaborations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Collaboration ID"
// @Success 200 {object} dto.APIResponse{data=models.Collaboration} "Collaboration"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /collaborations/{id} [get]
func (c *CollaborationController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	collaboration, err := c.collaborationService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(collaboration))
}

// Create adds a collaboration
// @Summary Add collaboration
// @Description Creates a collaboration listing, optionally published immediately. Admin only.
// @Tags collaborations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCollaborationRequest true "Collaboration details"
// @Success 201 {object} dto.APIResponse{data=dto.IDResponse} "Created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /collaborations [post]
func (c *CollaborationController) Create(ctx *gin.Context) {
	var req dto.CreateCollaborationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	collaboration := &models.Collaboration{
		CompanyName:           req.CompanyName,
		ProblemStatement:      req.ProblemStatement,
		InternshipOpportunity: req.InternshipOpportunity,
		ContactInfo:           req.ContactInfo,
	}
	id, err := c.collaborationService.Create(ctx.Request.Context(), collaboration, req.Publish)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.IDResponse{ID: id}))
}

// Update rewrites a collaboration
// @Summary Update collaboration
// @Description Rewrites a collaboration's fields without changing visibility. Admin only.
// @Tags collaborations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Collaboration ID"
// @Param request body dto.UpdateCollaborationRequest true "Collaboration details"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Updated"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /collaborations/{id} [put]
func (c *CollaborationController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCollaborationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	collaboration := &models.Collaboration{
		ID:                    id,
		CompanyName:           req.CompanyName,
		ProblemStatement:      req.ProblemStatement,
		InternshipOpportunity: req.InternshipOpportunity,
		ContactInfo:           req.ContactInfo,
	}
	if err := c.collaborationService.Update(ctx.Request.Context(), collaboration); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Collaboration updated"}))
}

// Publish makes a collaboration public
// @Summary Publish collaboration
// @Description Makes a draft collaboration publicly visible. Admin only.
// @Tags collaborations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Collaboration ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Published"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /collaborations/{id}/publish [post]
func (c *CollaborationController) Publish(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.collaborationService.Publish(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Collaboration published"}))
}

// Delete removes a collaboration
// @Summary Delete collaboration
// @Description Removes a collaboration permanently. Admin only.
// @Tags collaborations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Collaboration ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /collaborations/{id} [delete]
func (c *CollaborationController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.collaborationService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Collaboration deleted"}))
}

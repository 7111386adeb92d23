package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaryan/councilhub/internal/app/models/dto"
	"github.com/aaryan/councilhub/internal/app/services"
	"github.com/aaryan/councilhub/internal/middleware"
)

// ProjectController handles student project endpoints
type ProjectController struct {
	projectService *services.ProjectService
	authService    *services.AuthService
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService *services.ProjectService, authService *services.AuthService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		authService:    authService,
	}
}

// ListPublic retrieves published projects
// @Summary List public projects
// @Description Returns published projects, newest first
// @Tags projects
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Project} "Projects"
// @Failure 503 {object} dto.ErrorResponse "Service not ready"
// @Router /projects [get]
func (c *ProjectController) ListPublic(ctx *gin.Context) {
	projects, err := c.projectService.ListPublic(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(projects))
}

// ListMine retrieves the caller's own submissions
// @Summary List own projects
// @Description Returns every project the caller submitted, drafts included
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Project} "Own projects"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /projects/mine [get]
func (c *ProjectController) ListMine(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	projects, err := c.projectService.ListMine(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(projects))
}

// Get retrieves one project, drafts included
// @Summary Get project
// @Description Returns a project by ID regardless of visibility. Admin only.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=models.Project} "Project"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /projects/{id} [get]
func (c *ProjectController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	project, err := c.projectService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(project))
}

// Submit creates a draft project owned by the caller
// @Summary Submit project
// @Description Creates a draft project owned by the caller, pending admin review
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitProjectRequest true "Project details"
// @Success 201 {object} dto.APIResponse{data=dto.IDResponse} "Submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /projects [post]
func (c *ProjectController) Submit(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	var req dto.SubmitProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.projectService.Submit(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.IDResponse{ID: id}))
}

// Update rewrites a project
// @Summary Update project
// @Description Rewrites a project's fields. Only the submitter or an admin may edit.
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body dto.UpdateProjectRequest true "Project details"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Updated"
// @Failure 403 {object} dto.ErrorResponse "Not the submitter"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /projects/{id} [put]
func (c *ProjectController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	userID, _ := middleware.GetUserID(ctx)
	caller, err := c.authService.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.projectService.Update(ctx.Request.Context(), id, caller, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Project updated"}))
}

// Publish makes a project public
// @Summary Publish project
// @Description Publishes a project after review. Admin only.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Published"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /projects/{id}/publish [post]
func (c *ProjectController) Publish(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.projectService.Publish(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Project published"}))
}

// Delete removes a project
// @Summary Delete project
// @Description Removes a project permanently. Admin only.
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /projects/{id} [delete]
func (c *ProjectController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.projectService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Project deleted"}))
}

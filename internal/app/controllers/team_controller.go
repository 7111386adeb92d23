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

// TeamController handles team member endpoints
type TeamController struct {
	teamService *services.TeamService
	blobs       blobstore.Store
}

// NewTeamController creates a new TeamController
func NewTeamController(teamService *services.TeamService, blobs blobstore.Store) *TeamController {
	return &TeamController{
		teamService: teamService,
		blobs:       blobs,
	}
}

func (c *TeamController) resolve(ref blobstore.Ref) string {
	return c.blobs.URL(ref)
}

// ListPublic retrieves public team members
// @Summary List team members
// @Description Returns public team members ordered by role priority. Optional role and department filters.
// @Tags team
// @Produce json
// @Param role query string false "Filter by role"
// @Param department query string false "Filter by department"
// @Success 200 {object} dto.APIResponse{data=[]dto.TeamMemberResponse} "Team members"
// @Failure 503 {object} dto.ErrorResponse "Service not ready"
// @Router /team [get]
func (c *TeamController) ListPublic(ctx *gin.Context) {
	var (
		members []models.TeamMember
		err     error
	)
	switch {
	case ctx.Query("role") != "":
		members, err = c.teamService.ListPublicByRole(ctx.Request.Context(), ctx.Query("role"))
	case ctx.Query("department") != "":
		members, err = c.teamService.ListPublicByDepartment(ctx.Request.Context(), ctx.Query("department"))
	default:
		members, err = c.teamService.ListPublic(ctx.Request.Context())
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewTeamMemberResponses(members, c.resolve)))
}

// Get retrieves one team member, drafts included
// @Summary Get team member
// @Description Returns a team member by ID regardless of visibility. Admin only.
// @Tags team
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team member ID"
// @Success 200 {object} dto.APIResponse{data=dto.TeamMemberResponse} "Team member"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /team/{id} [get]
func (c *TeamController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	member, err := c.teamService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewTeamMemberResponse(*member, c.resolve)))
}

// Create adds a team member
// @Summary Add team member
// @Description Creates a team member, optionally published immediately. Admin only.
// @Tags team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeamMemberRequest true "Team member details"
// @Success 201 {object} dto.APIResponse{data=dto.IDResponse} "Created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /team [post]
func (c *TeamController) Create(ctx *gin.Context) {
	var req dto.CreateTeamMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	member := &models.TeamMember{
		Name:       req.Name,
		Role:       req.Role,
		Department: req.Department,
		Photo:      req.Photo,
	}
	id, err := c.teamService.Create(ctx.Request.Context(), member, req.Publish)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.IDResponse{ID: id}))
}

// Update rewrites a team member
// @Summary Update team member
// @Description Rewrites a team member's fields without changing visibility. Admin only.
// @Tags team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team member ID"
// @Param request body dto.UpdateTeamMemberRequest true "Team member details"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Updated"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /team/{id} [put]
func (c *TeamController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTeamMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	member := &models.TeamMember{
		ID:         id,
		Name:       req.Name,
		Role:       req.Role,
		Department: req.Department,
		Photo:      req.Photo,
	}
	if err := c.teamService.Update(ctx.Request.Context(), member); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Team member updated"}))
}

// Publish makes a team member public
// @Summary Publish team member
// @Description Makes a draft team member publicly visible. Admin only.
// @Tags team
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team member ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Published"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /team/{id}/publish [post]
func (c *TeamController) Publish(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.teamService.Publish(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Team member published"}))
}

// Delete removes a team member
// @Summary Delete team member
// @Description Removes a team member and their stored photo. Admin only.
// @Tags team
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team member ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /team/{id} [delete]
func (c *TeamController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.teamService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Team member deleted"}))
}

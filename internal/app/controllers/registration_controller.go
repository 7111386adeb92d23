package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaryan/councilhub/internal/app/models/dto"
	"github.com/aaryan/councilhub/internal/app/services"
	"github.com/aaryan/councilhub/internal/middleware"
)

// RegistrationController handles the membership registration flow
type RegistrationController struct {
	registrationService *services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService *services.RegistrationService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
	}
}

// Submit creates the caller's registration
// @Summary Submit registration
// @Description Submits a membership registration in pending state. Each caller may hold one registration.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitRegistrationRequest true "Registration details"
// @Success 201 {object} dto.APIResponse{data=dto.IDResponse} "Submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Registration already submitted"
// @Router /registrations [post]
func (c *RegistrationController) Submit(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)

	var req dto.SubmitRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	id, err := c.registrationService.Submit(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.IDResponse{ID: id}))
}

// MyRegistration retrieves the caller's registration
// @Summary Get own registration
// @Description Returns the caller's registration with its review status, 404 if none submitted
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Registration} "Registration"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "No registration submitted"
// @Router /registrations/me [get]
func (c *RegistrationController) MyRegistration(ctx *gin.Context) {
	userID, _ := middleware.GetUserID(ctx)
	registration, err := c.registrationService.MyRegistration(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(registration))
}

// ListAll retrieves every registration
// @Summary List registrations
// @Description Returns every submitted registration for review, newest first. Admin only.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Registration} "Registrations"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /registrations [get]
func (c *RegistrationController) ListAll(ctx *gin.Context) {
	registrations, err := c.registrationService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(registrations))
}

// UpdateStatus moves a registration through review
// @Summary Update registration status
// @Description Sets a registration's review status. Admin only.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Param request body dto.UpdateRegistrationStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /registrations/{id}/status [put]
func (c *RegistrationController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateRegistrationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.registrationService.UpdateStatus(ctx.Request.Context(), id, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Registration status updated"}))
}

// Delete removes a registration
// @Summary Delete registration
// @Description Removes a registration permanently. Admin only.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Registration ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /registrations/{id} [delete]
func (c *RegistrationController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.registrationService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Registration deleted"}))
}

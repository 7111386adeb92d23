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

// GalleryController handles gallery endpoints
type GalleryController struct {
	galleryService *services.GalleryService
	blobs          blobstore.Store
}

// NewGalleryController creates a new GalleryController
func NewGalleryController(galleryService *services.GalleryService, blobs blobstore.Store) *GalleryController {
	return &GalleryController{
		galleryService: galleryService,
		blobs:          blobs,
	}
}

func (c *GalleryController) resolve(ref blobstore.Ref) string {
	return c.blobs.URL(ref)
}

// ListPublic retrieves public gallery images
// @Summary List gallery images
// @Description Returns public gallery images, optionally filtered by category
// @Tags gallery
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} dto.APIResponse{data=[]dto.GalleryImageResponse} "Gallery images"
// @Failure 503 {object} dto.ErrorResponse "Service not ready"
// @Router /gallery [get]
func (c *GalleryController) ListPublic(ctx *gin.Context) {
	var (
		images []models.GalleryImage
		err    error
	)
	if category := ctx.Query("category"); category != "" {
		images, err = c.galleryService.ListPublicByCategory(ctx.Request.Context(), category)
	} else {
		images, err = c.galleryService.ListPublic(ctx.Request.Context())
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewGalleryImageResponses(images, c.resolve)))
}

// Get retrieves one gallery image, drafts included
// @Summary Get gallery image
// @Description Returns a gallery image by ID regardless of visibility. Admin only.
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gallery image ID"
// @Success 200 {object} dto.APIResponse{data=dto.GalleryImageResponse} "Gallery image"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /gallery/{id} [get]
func (c *GalleryController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	image, err := c.galleryService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewGalleryImageResponse(*image, c.resolve)))
}

// Upload adds a gallery image
// @Summary Add gallery image
// @Description Creates a gallery entry referencing an uploaded image, optionally published immediately. Admin only.
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UploadGalleryImageRequest true "Gallery entry details"
// @Success 201 {object} dto.APIResponse{data=dto.IDResponse} "Created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Router /gallery [post]
func (c *GalleryController) Upload(ctx *gin.Context) {
	var req dto.UploadGalleryImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	image := &models.GalleryImage{
		Category: req.Category,
		Image:    req.Image,
		Caption:  req.Caption,
	}
	id, err := c.galleryService.Create(ctx.Request.Context(), image, req.Publish)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.IDResponse{ID: id}))
}

// Update rewrites a gallery entry
// @Summary Update gallery image
// @Description Rewrites a gallery entry's fields without changing visibility. Admin only.
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gallery image ID"
// @Param request body dto.UploadGalleryImageRequest true "Gallery entry details"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Updated"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /gallery/{id} [put]
func (c *GalleryController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.UploadGalleryImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	image := &models.GalleryImage{
		ID:       id,
		Category: req.Category,
		Image:    req.Image,
		Caption:  req.Caption,
	}
	if err := c.galleryService.Update(ctx.Request.Context(), image); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Gallery image updated"}))
}

// Publish makes a gallery image public
// @Summary Publish gallery image
// @Description Makes a draft gallery entry publicly visible. Admin only.
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gallery image ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Published"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /gallery/{id}/publish [post]
func (c *GalleryController) Publish(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.galleryService.Publish(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Gallery image published"}))
}

// Delete removes a gallery image
// @Summary Delete gallery image
// @Description Removes a gallery entry and its stored image. Admin only.
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gallery image ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /gallery/{id} [delete]
func (c *GalleryController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.galleryService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Gallery image deleted"}))
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaryan/councilhub/internal/app/models/dto"
	"github.com/aaryan/councilhub/internal/middleware"
	"github.com/aaryan/councilhub/internal/pkg/blobstore"
	"github.com/aaryan/councilhub/internal/pkg/logger"
)

// maxUploadSize caps attachment uploads at 10 MiB
const maxUploadSize = 10 << 20

// UploadController handles attachment uploads. Content is stored first and
// referenced from entities afterwards, so an abandoned upload never leaves a
// dangling entity field.
type UploadController struct {
	blobs blobstore.Store
}

// NewUploadController creates a new UploadController
func NewUploadController(blobs blobstore.Store) *UploadController {
	return &UploadController{
		blobs: blobs,
	}
}

// Upload stores an attachment and returns its ref and URL
// @Summary Upload attachment
// @Description Stores an image or document and returns the ref to embed in a content entity
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload (max 10 MiB)"
// @Success 201 {object} dto.APIResponse{data=dto.BlobResponse} "Stored"
// @Failure 400 {object} dto.ErrorResponse "Missing or oversized file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /uploads [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File is required").WithField("file")))
		return
	}
	if fileHeader.Size > maxUploadSize {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File exceeds the 10 MiB limit").WithField("file")))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	ref, err := c.blobs.Put(ctx.Request.Context(), file, fileHeader.Size, blobstore.PutOptions{
		Filename: fileHeader.Filename,
		Progress: func(percent float64) {
			logger.Debug().Str("filename", fileHeader.Filename).Float64("percent", percent).Msg("Upload progress")
		},
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.BlobResponse{
		Ref: ref,
		URL: c.blobs.URL(ref),
	}))
}

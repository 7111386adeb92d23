package services

import (
	"context"

	"github.com/aaryan/councilhub/internal/app/content"
	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/app/repositories"
	"github.com/aaryan/councilhub/internal/pkg/blobstore"
	"github.com/aaryan/councilhub/internal/pkg/querycache"
)

// GalleryService handles gallery image content
type GalleryService struct {
	repo      *repositories.GalleryRepository
	cache     *querycache.Cache
	lifecycle *content.Lifecycle[models.GalleryImage]
}

// NewGalleryService creates a new gallery service
func NewGalleryService(repo *repositories.GalleryRepository, cache *querycache.Cache, blobs blobstore.Store) *GalleryService {
	desc := content.Descriptor[models.GalleryImage]{
		Type: content.TypeGallery,
		Blobs: func(g *models.GalleryImage) []blobstore.Ref {
			return []blobstore.Ref{g.Image}
		},
	}
	return &GalleryService{
		repo:      repo,
		cache:     cache,
		lifecycle: content.NewLifecycle(desc, repo, cache, blobs),
	}
}

// ListPublic retrieves all public gallery images
func (s *GalleryService) ListPublic(ctx context.Context) ([]models.GalleryImage, error) {
	return querycache.Get(ctx, s.cache, content.PublicKey(content.TypeGallery), querycache.ListRead(),
		func(ctx context.Context) ([]models.GalleryImage, error) {
			return s.repo.GetAllPublic(ctx)
		})
}

// ListPublicByCategory retrieves public gallery images in one category
func (s *GalleryService) ListPublicByCategory(ctx context.Context, category string) ([]models.GalleryImage, error) {
	return querycache.Get(ctx, s.cache, content.CategoryKey(content.TypeGallery, category), querycache.ListRead(),
		func(ctx context.Context) ([]models.GalleryImage, error) {
			return s.repo.GetPublicByCategory(ctx, category)
		})
}

// Get loads a gallery image regardless of visibility
func (s *GalleryService) Get(ctx context.Context, id int64) (*models.GalleryImage, error) {
	return s.lifecycle.GetByID(ctx, id)
}

// Create adds a gallery image, optionally publishing in the same transaction
func (s *GalleryService) Create(ctx context.Context, image *models.GalleryImage, publish bool) (int64, error) {
	return s.lifecycle.Create(ctx, image, publish)
}

// Update rewrites a gallery image's editable fields
func (s *GalleryService) Update(ctx context.Context, image *models.GalleryImage) error {
	return s.lifecycle.Update(ctx, image)
}

// Publish makes a gallery image public
func (s *GalleryService) Publish(ctx context.Context, id int64) error {
	return s.lifecycle.Publish(ctx, id)
}

// Delete removes a gallery image and its stored blob
func (s *GalleryService) Delete(ctx context.Context, id int64) error {
	return s.lifecycle.Delete(ctx, id)
}

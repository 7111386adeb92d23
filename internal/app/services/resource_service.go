package services

import (
	"context"

	"github.com/aaryan/councilhub/internal/app/content"
	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/app/repositories"
	"github.com/aaryan/councilhub/internal/pkg/querycache"
)

// ResourceService handles learning resource content
type ResourceService struct {
	repo      *repositories.ResourceRepository
	cache     *querycache.Cache
	lifecycle *content.Lifecycle[models.Resource]
}

// NewResourceService creates a new resource service
func NewResourceService(repo *repositories.ResourceRepository, cache *querycache.Cache) *ResourceService {
	desc := content.Descriptor[models.Resource]{
		Type: content.TypeResources,
	}
	return &ResourceService{
		repo:      repo,
		cache:     cache,
		lifecycle: content.NewLifecycle(desc, repo, cache, nil),
	}
}

// ListPublic retrieves all public resources
func (s *ResourceService) ListPublic(ctx context.Context) ([]models.Resource, error) {
	return querycache.Get(ctx, s.cache, content.PublicKey(content.TypeResources), querycache.ListRead(),
		func(ctx context.Context) ([]models.Resource, error) {
			return s.repo.GetAllPublic(ctx)
		})
}

// ListPublicByCategory retrieves public resources in one category
func (s *ResourceService) ListPublicByCategory(ctx context.Context, category string) ([]models.Resource, error) {
	return querycache.Get(ctx, s.cache, content.CategoryKey(content.TypeResources, category), querycache.ListRead(),
		func(ctx context.Context) ([]models.Resource, error) {
			return s.repo.GetPublicByCategory(ctx, category)
		})
}

// Get loads a resource regardless of visibility
func (s *ResourceService) Get(ctx context.Context, id int64) (*models.Resource, error) {
	return s.lifecycle.GetByID(ctx, id)
}

// Create adds a resource, optionally publishing in the same transaction
func (s *ResourceService) Create(ctx context.Context, resource *models.Resource, publish bool) (int64, error) {
	return s.lifecycle.Create(ctx, resource, publish)
}

// Update rewrites a resource's editable fields
func (s *ResourceService) Update(ctx context.Context, resource *models.Resource) error {
	return s.lifecycle.Update(ctx, resource)
}

// Publish makes a resource public
func (s *ResourceService) Publish(ctx context.Context, id int64) error {
	return s.lifecycle.Publish(ctx, id)
}

// Delete removes a resource permanently
func (s *ResourceService) Delete(ctx context.Context, id int64) error {
	return s.lifecycle.Delete(ctx, id)
}

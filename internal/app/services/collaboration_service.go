package services

import (
	"context"

	"github.com/aaryan/councilhub/internal/app/content"
	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/app/repositories"
	"github.com/aaryan/councilhub/internal/pkg/querycache"
)

// CollaborationService handles industry collaboration listings
type CollaborationService struct {
	repo      *repositories.CollaborationRepository
	cache     *querycache.Cache
	lifecycle *content.Lifecycle[models.Collaboration]
}

// NewCollaborationService creates a new collaboration service
func NewCollaborationService(repo *repositories.CollaborationRepository, cache *querycache.Cache) *CollaborationService {
	desc := content.Descriptor[models.Collaboration]{
		Type: content.TypeCollaborations,
	}
	return &CollaborationService{
		repo:      repo,
		cache:     cache,
		lifecycle: content.NewLifecycle(desc, repo, cache, nil),
	}
}

// ListPublic retrieves all public collaborations
func (s *CollaborationService) ListPublic(ctx context.Context) ([]models.Collaboration, error) {
	return querycache.Get(ctx, s.cache, content.PublicKey(content.TypeCollaborations), querycache.ListRead(),
		func(ctx context.Context) ([]models.Collaboration, error) {
			return s.repo.GetAllPublic(ctx)
		})
}

// Get loads a collaboration regardless of visibility
func (s *CollaborationService) Get(ctx context.Context, id int64) (*models.Collaboration, error) {
	return s.lifecycle.GetByID(ctx, id)
}

// Create adds a collaboration, optionally publishing in the same transaction
func (s *CollaborationService) Create(ctx context.Context, collaboration *models.Collaboration, publish bool) (int64, error) {
	return s.lifecycle.Create(ctx, collaboration, publish)
}

// Update rewrites a collaboration's editable fields
func (s *CollaborationService) Update(ctx context.Context, collaboration *models.Collaboration) error {
	return s.lifecycle.Update(ctx, collaboration)
}

// Publish makes a collaboration public
func (s *CollaborationService) Publish(ctx context.Context, id int64) error {
	return s.lifecycle.Publish(ctx, id)
}

// Delete removes a collaboration permanently
func (s *CollaborationService) Delete(ctx context.Context, id int64) error {
	return s.lifecycle.Delete(ctx, id)
}

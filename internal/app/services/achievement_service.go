package services

import (
	"context"

	"github.com/aaryan/councilhub/internal/app/content"
	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/app/repositories"
	"github.com/aaryan/councilhub/internal/pkg/querycache"
)

// AchievementService handles achievement content
type AchievementService struct {
	repo      *repositories.AchievementRepository
	cache     *querycache.Cache
	lifecycle *content.Lifecycle[models.Achievement]
}

// NewAchievementService creates a new achievement service
func NewAchievementService(repo *repositories.AchievementRepository, cache *querycache.Cache) *AchievementService {
	desc := content.Descriptor[models.Achievement]{
		Type: content.TypeAchievements,
	}
	return &AchievementService{
		repo:      repo,
		cache:     cache,
		lifecycle: content.NewLifecycle(desc, repo, cache, nil),
	}
}

// ListPublic retrieves all public achievements, most recent first
func (s *AchievementService) ListPublic(ctx context.Context) ([]models.Achievement, error) {
	return querycache.Get(ctx, s.cache, content.PublicKey(content.TypeAchievements), querycache.ListRead(),
		func(ctx context.Context) ([]models.Achievement, error) {
			return s.repo.GetAllPublic(ctx)
		})
}

// ListPublicByCategory retrieves public achievements in one category
func (s *AchievementService) ListPublicByCategory(ctx context.Context, category string) ([]models.Achievement, error) {
	return querycache.Get(ctx, s.cache, content.CategoryKey(content.TypeAchievements, category), querycache.ListRead(),
		func(ctx context.Context) ([]models.Achievement, error) {
			return s.repo.GetPublicByCategory(ctx, category)
		})
}

// Get loads an achievement regardless of visibility
func (s *AchievementService) Get(ctx context.Context, id int64) (*models.Achievement, error) {
	return s.lifecycle.GetByID(ctx, id)
}

// Create adds an achievement, optionally publishing in the same transaction
func (s *AchievementService) Create(ctx context.Context, achievement *models.Achievement, publish bool) (int64, error) {
	return s.lifecycle.Create(ctx, achievement, publish)
}

// Update rewrites an achievement's editable fields
func (s *AchievementService) Update(ctx context.Context, achievement *models.Achievement) error {
	return s.lifecycle.Update(ctx, achievement)
}

// Publish makes an achievement public
func (s *AchievementService) Publish(ctx context.Context, id int64) error {
	return s.lifecycle.Publish(ctx, id)
}

// Delete removes an achievement permanently
func (s *AchievementService) Delete(ctx context.Context, id int64) error {
	return s.lifecycle.Delete(ctx, id)
}

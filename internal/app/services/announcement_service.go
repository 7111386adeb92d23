package services

import (
	"context"
	"time"

	"github.com/aaryan/councilhub/internal/app/content"
	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/app/models/dto"
	"github.com/aaryan/councilhub/internal/app/repositories"
	"github.com/aaryan/councilhub/internal/pkg/querycache"
)

// AnnouncementService handles announcement content. Posting time is set once
// at creation and survives edits.
type AnnouncementService struct {
	repo      *repositories.AnnouncementRepository
	cache     *querycache.Cache
	lifecycle *content.Lifecycle[models.Announcement]
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(repo *repositories.AnnouncementRepository, cache *querycache.Cache) *AnnouncementService {
	desc := content.Descriptor[models.Announcement]{
		Type: content.TypeAnnouncements,
	}
	return &AnnouncementService{
		repo:      repo,
		cache:     cache,
		lifecycle: content.NewLifecycle(desc, repo, cache, nil),
	}
}

// ListPublic retrieves all public announcements, newest first
func (s *AnnouncementService) ListPublic(ctx context.Context) ([]models.Announcement, error) {
	return querycache.Get(ctx, s.cache, content.PublicKey(content.TypeAnnouncements), querycache.ListRead(),
		func(ctx context.Context) ([]models.Announcement, error) {
			return s.repo.GetAllPublic(ctx)
		})
}

// ListPublicByCategory retrieves public announcements in one category
func (s *AnnouncementService) ListPublicByCategory(ctx context.Context, category string) ([]models.Announcement, error) {
	return querycache.Get(ctx, s.cache, content.CategoryKey(content.TypeAnnouncements, category), querycache.ListRead(),
		func(ctx context.Context) ([]models.Announcement, error) {
			return s.repo.GetPublicByCategory(ctx, category)
		})
}

// Get loads an announcement regardless of visibility
func (s *AnnouncementService) Get(ctx context.Context, id int64) (*models.Announcement, error) {
	return s.lifecycle.GetByID(ctx, id)
}

// Post creates an announcement stamped with the current time, optionally
// publishing in the same transaction
func (s *AnnouncementService) Post(ctx context.Context, req *dto.PostAnnouncementRequest) (int64, error) {
	announcement := &models.Announcement{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		PostedAt: time.Now().UnixNano(),
	}
	return s.lifecycle.Create(ctx, announcement, req.Publish)
}

// Update rewrites an announcement's editable fields
func (s *AnnouncementService) Update(ctx context.Context, announcement *models.Announcement) error {
	return s.lifecycle.Update(ctx, announcement)
}

// Publish makes an announcement public
func (s *AnnouncementService) Publish(ctx context.Context, id int64) error {
	return s.lifecycle.Publish(ctx, id)
}

// Delete removes an announcement permanently
func (s *AnnouncementService) Delete(ctx context.Context, id int64) error {
	return s.lifecycle.Delete(ctx, id)
}

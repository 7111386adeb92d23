package services

import (
	"context"
	"fmt"

	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/app/models/dto"
	"github.com/aaryan/councilhub/internal/app/repositories"
	"github.com/aaryan/councilhub/internal/pkg/querycache"
)

// ProfileService handles the per-caller profile singleton. Reads are cached
// without retries: a missing profile is a normal state for new users, not a
// transient failure worth retrying.
type ProfileService struct {
	userRepo *repositories.UserRepository
	cache    *querycache.Cache
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo *repositories.UserRepository, cache *querycache.Cache) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		cache:    cache,
	}
}

func profileKey(userID int64) querycache.Key {
	return querycache.Key(fmt.Sprintf("profiles:%d", userID))
}

// GetProfile retrieves the caller's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	return querycache.Get(ctx, s.cache, profileKey(userID), querycache.SingletonRead(),
		func(ctx context.Context) (*models.UserProfile, error) {
			return s.userRepo.GetProfile(ctx, userID)
		})
}

// SaveProfile inserts or replaces the caller's profile
func (s *ProfileService) SaveProfile(ctx context.Context, userID int64, req *dto.SaveProfileRequest) (*models.UserProfile, error) {
	profile := &models.UserProfile{
		UserID: userID,
		Name:   req.Name,
		Branch: req.Branch,
		Year:   req.Year,
		Skills: req.Skills,
	}
	if err := s.userRepo.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("error saving profile: %w", err)
	}

	s.cache.InvalidateKey(profileKey(userID))
	return profile, nil
}

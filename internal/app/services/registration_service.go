package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/app/models/dto"
	"github.com/aaryan/councilhub/internal/app/repositories"
	"github.com/aaryan/councilhub/internal/pkg/logger"
	"github.com/aaryan/councilhub/internal/pkg/querycache"
)

// RegistrationService handles the membership registration flow: one pending
// registration per caller, reviewed by admins.
type RegistrationService struct {
	repo  *repositories.RegistrationRepository
	cache *querycache.Cache
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(repo *repositories.RegistrationRepository, cache *querycache.Cache) *RegistrationService {
	return &RegistrationService{
		repo:  repo,
		cache: cache,
	}
}

func myRegistrationKey(userID int64) querycache.Key {
	return querycache.Key(fmt.Sprintf("registrations:mine:%d", userID))
}

const allRegistrationsKey = querycache.Key("registrations:all")

// Submit creates a pending registration for the caller. A caller who already
// holds one gets ErrAlreadyRegistered.
func (s *RegistrationService) Submit(ctx context.Context, userID int64, req *dto.SubmitRegistrationRequest) (int64, error) {
	registration := &models.Registration{
		Name:         req.Name,
		Branch:       req.Branch,
		Year:         req.Year,
		Skills:       req.Skills,
		InterestArea: req.InterestArea,
		Status:       models.RegistrationPending,
		SubmittedBy:  userID,
		SubmittedAt:  time.Now().UnixNano(),
	}
	id, err := s.repo.Insert(ctx, registration)
	if err != nil {
		return 0, err
	}

	s.cache.Invalidate(scopeRegistrations)
	logger.Info().Int64("registrationID", id).Int64("userID", userID).Msg("Registration submitted")
	return id, nil
}

// MyRegistration retrieves the caller's registration. A caller who never
// registered gets ErrRegistrationNotFound; that outcome is normal and the
// read is not retried.
func (s *RegistrationService) MyRegistration(ctx context.Context, userID int64) (*models.Registration, error) {
	return querycache.Get(ctx, s.cache, myRegistrationKey(userID), querycache.SingletonRead(),
		func(ctx context.Context) (*models.Registration, error) {
			return s.repo.GetBySubmitter(ctx, userID)
		})
}

// ListAll retrieves every registration for admin review, newest first
func (s *RegistrationService) ListAll(ctx context.Context) ([]models.Registration, error) {
	return querycache.Get(ctx, s.cache, allRegistrationsKey, querycache.ListRead(),
		func(ctx context.Context) ([]models.Registration, error) {
			return s.repo.GetAll(ctx)
		})
}

// UpdateStatus moves a registration through review
func (s *RegistrationService) UpdateStatus(ctx context.Context, id int64, status string) error {
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.cache.Invalidate(scopeRegistrations)
	logger.Info().Int64("registrationID", id).Str("status", status).Msg("Registration status updated")
	return nil
}

// Delete removes a registration permanently
func (s *RegistrationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(scopeRegistrations)
	return nil
}

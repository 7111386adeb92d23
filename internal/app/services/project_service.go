package services

import (
	"context"
	"time"

	"github.com/aaryan/councilhub/internal/app/content"
	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/app/models/dto"
	"github.com/aaryan/councilhub/internal/app/repositories"
	"github.com/aaryan/councilhub/internal/pkg/apperrors"
	"github.com/aaryan/councilhub/internal/pkg/querycache"
)

// ProjectService handles student project submissions. Projects are the one
// content type with per-caller ownership: any authenticated user may submit,
// edits require owner or admin, and publication is admin review.
type ProjectService struct {
	repo      *repositories.ProjectRepository
	store     content.Store[models.Project]
	cache     *querycache.Cache
	lifecycle *content.Lifecycle[models.Project]
}

// NewProjectService creates a new project service
func NewProjectService(repo *repositories.ProjectRepository, cache *querycache.Cache) *ProjectService {
	return newProjectService(repo, repo, cache)
}

func newProjectService(repo *repositories.ProjectRepository, store content.Store[models.Project], cache *querycache.Cache) *ProjectService {
	desc := content.Descriptor[models.Project]{
		Type: content.TypeProjects,
	}
	return &ProjectService{
		repo:      repo,
		store:     store,
		cache:     cache,
		lifecycle: content.NewLifecycle(desc, store, cache, nil),
	}
}

// ListPublic retrieves all published projects, newest first
func (s *ProjectService) ListPublic(ctx context.Context) ([]models.Project, error) {
	return querycache.Get(ctx, s.cache, content.PublicKey(content.TypeProjects), querycache.ListRead(),
		func(ctx context.Context) ([]models.Project, error) {
			return s.repo.GetAllPublic(ctx)
		})
}

// ListMine retrieves the caller's own submissions, drafts included
func (s *ProjectService) ListMine(ctx context.Context, userID int64) ([]models.Project, error) {
	return querycache.Get(ctx, s.cache, content.OwnerKey(content.TypeProjects, userID), querycache.ListRead(),
		func(ctx context.Context) ([]models.Project, error) {
			return s.repo.GetBySubmitter(ctx, userID)
		})
}

// Submit creates a draft project owned by the caller
func (s *ProjectService) Submit(ctx context.Context, userID int64, req *dto.SubmitProjectRequest) (int64, error) {
	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		TechUsed:    req.TechUsed,
		TeamMembers: req.TeamMembers,
		DemoLink:    req.DemoLink,
		SubmittedBy: userID,
		SubmittedAt: time.Now().UnixNano(),
	}
	return s.lifecycle.Create(ctx, project, false)
}

// Update rewrites a project's editable fields. Only the submitter or an
// admin may edit; ownership and submission time never change.
func (s *ProjectService) Update(ctx context.Context, id int64, caller *models.User, req *dto.UpdateProjectRequest) error {
	project, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project.SubmittedBy != caller.ID && !caller.IsAdmin() {
		return apperrors.ErrNotOwner
	}

	project.Title = req.Title
	project.Description = req.Description
	project.TechUsed = req.TechUsed
	project.TeamMembers = req.TeamMembers
	project.DemoLink = req.DemoLink
	return s.lifecycle.Update(ctx, project)
}

// Get loads a project regardless of visibility
func (s *ProjectService) Get(ctx context.Context, id int64) (*models.Project, error) {
	return s.lifecycle.GetByID(ctx, id)
}

// Publish makes a project public after admin review
func (s *ProjectService) Publish(ctx context.Context, id int64) error {
	return s.lifecycle.Publish(ctx, id)
}

// Delete removes a project permanently
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return s.lifecycle.Delete(ctx, id)
}

package services

import (
	"context"
	"sort"

	"github.com/aaryan/councilhub/internal/app/content"
	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/app/repositories"
	"github.com/aaryan/councilhub/internal/pkg/blobstore"
	"github.com/aaryan/councilhub/internal/pkg/querycache"
)

// TeamService handles team member content. Public listings are ordered by
// the fixed role priority.
type TeamService struct {
	repo      *repositories.TeamMemberRepository
	cache     *querycache.Cache
	lifecycle *content.Lifecycle[models.TeamMember]
}

// NewTeamService creates a new team service
func NewTeamService(repo *repositories.TeamMemberRepository, cache *querycache.Cache, blobs blobstore.Store) *TeamService {
	desc := content.Descriptor[models.TeamMember]{
		Type: content.TypeTeamMembers,
		Blobs: func(m *models.TeamMember) []blobstore.Ref {
			if m.Photo == nil {
				return nil
			}
			return []blobstore.Ref{*m.Photo}
		},
	}
	return &TeamService{
		repo:      repo,
		cache:     cache,
		lifecycle: content.NewLifecycle(desc, repo, cache, blobs),
	}
}

// rolePriority maps known roles to their display rank. Unknown roles sort
// after every known one.
func rolePriority(role string) int {
	for i, r := range models.TeamRoleOrder {
		if r == role {
			return i
		}
	}
	return len(models.TeamRoleOrder)
}

func sortByRolePriority(members []models.TeamMember) {
	sort.SliceStable(members, func(i, j int) bool {
		return rolePriority(members[i].Role) < rolePriority(members[j].Role)
	})
}

// ListPublic retrieves public team members ordered by role priority
func (s *TeamService) ListPublic(ctx context.Context) ([]models.TeamMember, error) {
	return querycache.Get(ctx, s.cache, content.PublicKey(content.TypeTeamMembers), querycache.ListRead(),
		func(ctx context.Context) ([]models.TeamMember, error) {
			members, err := s.repo.GetAllPublic(ctx)
			if err != nil {
				return nil, err
			}
			sortByRolePriority(members)
			return members, nil
		})
}

// ListPublicByRole retrieves public team members holding one role
func (s *TeamService) ListPublicByRole(ctx context.Context, role string) ([]models.TeamMember, error) {
	return querycache.Get(ctx, s.cache, content.SubsetKey(content.TypeTeamMembers, "role:"+role), querycache.ListRead(),
		func(ctx context.Context) ([]models.TeamMember, error) {
			return s.repo.GetPublicByRole(ctx, role)
		})
}

// ListPublicByDepartment retrieves public team members of one department,
// ordered by role priority
func (s *TeamService) ListPublicByDepartment(ctx context.Context, department string) ([]models.TeamMember, error) {
	return querycache.Get(ctx, s.cache, content.SubsetKey(content.TypeTeamMembers, "department:"+department), querycache.ListRead(),
		func(ctx context.Context) ([]models.TeamMember, error) {
			members, err := s.repo.GetPublicByDepartment(ctx, department)
			if err != nil {
				return nil, err
			}
			sortByRolePriority(members)
			return members, nil
		})
}

// Get loads a team member regardless of visibility
func (s *TeamService) Get(ctx context.Context, id int64) (*models.TeamMember, error) {
	return s.lifecycle.GetByID(ctx, id)
}

// Create adds a team member, optionally publishing in the same transaction
func (s *TeamService) Create(ctx context.Context, member *models.TeamMember, publish bool) (int64, error) {
	return s.lifecycle.Create(ctx, member, publish)
}

// Update rewrites a team member's editable fields
func (s *TeamService) Update(ctx context.Context, member *models.TeamMember) error {
	return s.lifecycle.Update(ctx, member)
}

// Publish makes a team member public
func (s *TeamService) Publish(ctx context.Context, id int64) error {
	return s.lifecycle.Publish(ctx, id)
}

// Delete removes a team member and their photo
func (s *TeamService) Delete(ctx context.Context, id int64) error {
	return s.lifecycle.Delete(ctx, id)
}

package services

import (
	"github.com/aaryan/councilhub/internal/app/content"
	"github.com/aaryan/councilhub/internal/app/repositories"
	"github.com/aaryan/councilhub/internal/pkg/auth"
	"github.com/aaryan/councilhub/internal/pkg/blobstore"
	"github.com/aaryan/councilhub/internal/pkg/querycache"
)

// Cache scopes outside the content types. Registered alongside the content
// scopes so every keyed read has an owner.
const (
	scopeProfiles      = "profiles"
	scopeRegistrations = "registrations"
)

// ServiceContainer holds all services
type ServiceContainer struct {
	AuthService          *AuthService
	ProfileService       *ProfileService
	TeamService          *TeamService
	EventService         *EventService
	GalleryService       *GalleryService
	ProjectService       *ProjectService
	AchievementService   *AchievementService
	AnnouncementService  *AnnouncementService
	CollaborationService *CollaborationService
	ResourceService      *ResourceService
	RegistrationService  *RegistrationService
}

// NewServiceContainer wires every service over the shared repositories, read
// cache and blob store, and registers all cache invalidation scopes.
func NewServiceContainer(
	repos *repositories.Repositories,
	cache *querycache.Cache,
	blobs blobstore.Store,
	jwtService *auth.JWTService,
) *ServiceContainer {
	content.RegisterScopes(cache)
	cache.RegisterScope(scopeProfiles, "profiles:")
	cache.RegisterScope(scopeRegistrations, "registrations:")

	return &ServiceContainer{
		AuthService:          NewAuthService(repos.UserRepository, jwtService),
		ProfileService:       NewProfileService(repos.UserRepository, cache),
		TeamService:          NewTeamService(repos.TeamMemberRepository, cache, blobs),
		EventService:         NewEventService(repos.EventRepository, cache, blobs),
		GalleryService:       NewGalleryService(repos.GalleryRepository, cache, blobs),
		ProjectService:       NewProjectService(repos.ProjectRepository, cache),
		AchievementService:   NewAchievementService(repos.AchievementRepository, cache),
		AnnouncementService:  NewAnnouncementService(repos.AnnouncementRepository, cache),
		CollaborationService: NewCollaborationService(repos.CollaborationRepository, cache),
		ResourceService:      NewResourceService(repos.ResourceRepository, cache),
		RegistrationService:  NewRegistrationService(repos.RegistrationRepository, cache),
	}
}

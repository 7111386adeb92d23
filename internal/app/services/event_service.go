package services

import (
	"context"

	"github.com/aaryan/councilhub/internal/app/content"
	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/app/repositories"
	"github.com/aaryan/councilhub/internal/pkg/blobstore"
	"github.com/aaryan/councilhub/internal/pkg/querycache"
)

// EventService handles event content. Public reads are split into the
// upcoming and past listings; both live under the events cache scope so any
// event mutation refreshes both.
type EventService struct {
	repo      *repositories.EventRepository
	cache     *querycache.Cache
	lifecycle *content.Lifecycle[models.Event]
}

// NewEventService creates a new event service
func NewEventService(repo *repositories.EventRepository, cache *querycache.Cache, blobs blobstore.Store) *EventService {
	return newEventService(repo, repo, cache, blobs)
}

func newEventService(repo *repositories.EventRepository, store content.Store[models.Event], cache *querycache.Cache, blobs blobstore.Store) *EventService {
	desc := content.Descriptor[models.Event]{
		Type: content.TypeEvents,
		Blobs: func(e *models.Event) []blobstore.Ref {
			refs := make([]blobstore.Ref, 0, len(e.Photos)+1)
			refs = append(refs, e.Photos...)
			if e.Poster != nil {
				refs = append(refs, *e.Poster)
			}
			return refs
		},
	}
	return &EventService{
		repo:      repo,
		cache:     cache,
		lifecycle: content.NewLifecycle(desc, store, cache, blobs),
	}
}

// normalizePhotos keeps the photos column non-null: an omitted photo list is
// an empty sequence, not SQL NULL.
func normalizePhotos(event *models.Event) {
	if event.Photos == nil {
		event.Photos = []blobstore.Ref{}
	}
}

// ListUpcoming retrieves public upcoming events, soonest first
func (s *EventService) ListUpcoming(ctx context.Context) ([]models.Event, error) {
	return querycache.Get(ctx, s.cache, content.SubsetKey(content.TypeEvents, "upcoming"), querycache.ListRead(),
		func(ctx context.Context) ([]models.Event, error) {
			return s.repo.GetPublicUpcoming(ctx)
		})
}

// ListPast retrieves public past events, most recent first
func (s *EventService) ListPast(ctx context.Context) ([]models.Event, error) {
	return querycache.Get(ctx, s.cache, content.SubsetKey(content.TypeEvents, "past"), querycache.ListRead(),
		func(ctx context.Context) ([]models.Event, error) {
			return s.repo.GetPublicPast(ctx)
		})
}

// Get loads an event regardless of visibility
func (s *EventService) Get(ctx context.Context, id int64) (*models.Event, error) {
	return s.lifecycle.GetByID(ctx, id)
}

// Create adds an event, optionally publishing in the same transaction
func (s *EventService) Create(ctx context.Context, event *models.Event, publish bool) (int64, error) {
	normalizePhotos(event)
	return s.lifecycle.Create(ctx, event, publish)
}

// Update rewrites an event's editable fields, including the photo order
func (s *EventService) Update(ctx context.Context, event *models.Event) error {
	normalizePhotos(event)
	return s.lifecycle.Update(ctx, event)
}

// Publish makes an event public
func (s *EventService) Publish(ctx context.Context, id int64) error {
	return s.lifecycle.Publish(ctx, id)
}

// Delete removes an event together with its photos and poster
func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.lifecycle.Delete(ctx, id)
}

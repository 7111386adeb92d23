package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/app/models/dto"
	"github.com/aaryan/councilhub/internal/pkg/apperrors"
	"github.com/aaryan/councilhub/internal/pkg/querycache"
)

// stubStore satisfies the content store contract for service tests.
type stubStore[T any] struct {
	byID              map[int64]*T
	inserted          *T
	insertedPublished *T
	updated           *T
	publishedID       int64
	deletedID         int64
}

func (s *stubStore[T]) Insert(ctx context.Context, e *T) (int64, error) {
	s.inserted = e
	return 1, nil
}

func (s *stubStore[T]) InsertPublished(ctx context.Context, e *T) (int64, error) {
	s.insertedPublished = e
	return 1, nil
}

func (s *stubStore[T]) Update(ctx context.Context, e *T) error {
	s.updated = e
	return nil
}

func (s *stubStore[T]) SetPublic(ctx context.Context, id int64) error {
	s.publishedID = id
	return nil
}

func (s *stubStore[T]) Delete(ctx context.Context, id int64) error {
	s.deletedID = id
	return nil
}

func (s *stubStore[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	e, ok := s.byID[id]
	if !ok {
		return nil, apperrors.ErrContentNotFound
	}
	return e, nil
}

func storedProject() *models.Project {
	return &models.Project{
		ID:          10,
		Title:       "Smart irrigation",
		Description: "Moisture-driven valves",
		TechUsed:    "Go, LoRa",
		TeamMembers: "A, B",
		SubmittedBy: 7,
		SubmittedAt: 1234,
	}
}

func updateProjectRequest() *dto.UpdateProjectRequest {
	return &dto.UpdateProjectRequest{
		Title:       "Smart irrigation v2",
		Description: "Now with forecasts",
		TechUsed:    "Go, LoRa, OpenMeteo",
		TeamMembers: "A, B, C",
	}
}

func TestProjectUpdateByOwner(t *testing.T) {
	store := &stubStore[models.Project]{byID: map[int64]*models.Project{10: storedProject()}}
	svc := newProjectService(nil, store, querycache.New(nil))

	owner := &models.User{ID: 7, Role: models.RoleUser}
	require.NoError(t, svc.Update(context.Background(), 10, owner, updateProjectRequest()))

	require.NotNil(t, store.updated)
	assert.Equal(t, "Smart irrigation v2", store.updated.Title)
	// Ownership and submission time are immutable on edit.
	assert.Equal(t, int64(7), store.updated.SubmittedBy)
	assert.Equal(t, int64(1234), store.updated.SubmittedAt)
}

func TestProjectUpdateByAdmin(t *testing.T) {
	store := &stubStore[models.Project]{byID: map[int64]*models.Project{10: storedProject()}}
	svc := newProjectService(nil, store, querycache.New(nil))

	admin := &models.User{ID: 99, Role: models.RoleAdmin}
	require.NoError(t, svc.Update(context.Background(), 10, admin, updateProjectRequest()))
	assert.NotNil(t, store.updated)
}

func TestProjectUpdateByStrangerRejected(t *testing.T) {
	store := &stubStore[models.Project]{byID: map[int64]*models.Project{10: storedProject()}}
	svc := newProjectService(nil, store, querycache.New(nil))

	stranger := &models.User{ID: 99, Role: models.RoleUser}
	err := svc.Update(context.Background(), 10, stranger, updateProjectRequest())
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	assert.Nil(t, store.updated, "a rejected edit must not reach the store")
}

func TestProjectUpdateMissingProject(t *testing.T) {
	store := &stubStore[models.Project]{byID: map[int64]*models.Project{}}
	svc := newProjectService(nil, store, querycache.New(nil))

	err := svc.Update(context.Background(), 404, &models.User{ID: 7}, updateProjectRequest())
	assert.ErrorIs(t, err, apperrors.ErrContentNotFound)
}

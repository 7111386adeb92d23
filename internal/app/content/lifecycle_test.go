package content

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaryan/councilhub/internal/pkg/apperrors"
	"github.com/aaryan/councilhub/internal/pkg/blobstore"
	"github.com/aaryan/councilhub/internal/pkg/querycache"
)

type testEntity struct {
	ID     int64
	Name   string
	Photo  blobstore.Ref
	Public bool
}

// fakeStore records which persistence operations ran.
type fakeStore struct {
	inserted          *testEntity
	insertedPublished *testEntity
	updated           *testEntity
	publishedID       int64
	deletedID         int64
	byID              map[int64]*testEntity
	err               error
}

func (s *fakeStore) Insert(ctx context.Context, e *testEntity) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.inserted = e
	return 1, nil
}

func (s *fakeStore) InsertPublished(ctx context.Context, e *testEntity) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.insertedPublished = e
	e.Public = true
	return 2, nil
}

func (s *fakeStore) Update(ctx context.Context, e *testEntity) error {
	if s.err != nil {
		return s.err
	}
	s.updated = e
	return nil
}

func (s *fakeStore) SetPublic(ctx context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	s.publishedID = id
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	s.deletedID = id
	return nil
}

func (s *fakeStore) GetByID(ctx context.Context, id int64) (*testEntity, error) {
	e, ok := s.byID[id]
	if !ok {
		return nil, apperrors.ErrContentNotFound
	}
	return e, nil
}

// fakeBlobs records deleted refs.
type fakeBlobs struct {
	deleted   []blobstore.Ref
	deleteErr error
}

func (b *fakeBlobs) Put(ctx context.Context, r io.Reader, size int64, opts blobstore.PutOptions) (blobstore.Ref, error) {
	return "", errors.New("not implemented")
}

func (b *fakeBlobs) Delete(ctx context.Context, ref blobstore.Ref) error {
	b.deleted = append(b.deleted, ref)
	return b.deleteErr
}

func (b *fakeBlobs) URL(ref blobstore.Ref) string { return string(ref) }

func newTestCache(t *testing.T) *querycache.Cache {
	t.Helper()
	c := querycache.New(nil)
	RegisterScopes(c)
	return c
}

// primeKey loads a dummy value into the cache so invalidation is observable.
func primeKey(t *testing.T, c *querycache.Cache, key querycache.Key) {
	t.Helper()
	_, err := querycache.Get(context.Background(), c, key, querycache.SingletonRead(), func(ctx context.Context) (string, error) {
		return "cached", nil
	})
	require.NoError(t, err)
}

func testDescriptor() Descriptor[testEntity] {
	return Descriptor[testEntity]{
		Type: TypeTeamMembers,
		Blobs: func(e *testEntity) []blobstore.Ref {
			if e.Photo == "" {
				return nil
			}
			return []blobstore.Ref{e.Photo}
		},
	}
}

func TestCreateDraft(t *testing.T) {
	store := &fakeStore{}
	cache := newTestCache(t)
	primeKey(t, cache, PublicKey(TypeTeamMembers))

	lc := NewLifecycle(testDescriptor(), store, cache, nil)

	e := &testEntity{Name: "draft"}
	id, err := lc.Create(context.Background(), e, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Same(t, e, store.inserted)
	assert.Nil(t, store.insertedPublished, "a draft create must not publish")
	assert.False(t, e.Public)
	assert.Equal(t, 0, cache.Len(), "create must invalidate the type's cached reads")
}

func TestCreateAndPublish(t *testing.T) {
	store := &fakeStore{}
	cache := newTestCache(t)
	lc := NewLifecycle(testDescriptor(), store, cache, nil)

	e := &testEntity{Name: "live"}
	id, err := lc.Create(context.Background(), e, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)
	assert.Same(t, e, store.insertedPublished)
	assert.Nil(t, store.inserted, "combined create must use the transactional path")
	assert.True(t, e.Public)
}

func TestCreateErrorLeavesCacheIntact(t *testing.T) {
	store := &fakeStore{err: errors.New("insert failed")}
	cache := newTestCache(t)
	primeKey(t, cache, PublicKey(TypeTeamMembers))

	lc := NewLifecycle(testDescriptor(), store, cache, nil)

	_, err := lc.Create(context.Background(), &testEntity{}, false)
	require.Error(t, err)
	assert.Equal(t, 1, cache.Len())
}

func TestUpdateInvalidatesScope(t *testing.T) {
	store := &fakeStore{}
	cache := newTestCache(t)
	primeKey(t, cache, SubsetKey(TypeTeamMembers, "role:President"))
	primeKey(t, cache, PublicKey(TypeTeamMembers))

	lc := NewLifecycle(testDescriptor(), store, cache, nil)

	e := &testEntity{ID: 3, Name: "edited"}
	require.NoError(t, lc.Update(context.Background(), e))
	assert.Same(t, e, store.updated)
	assert.Equal(t, 0, cache.Len(), "every keyed variant of the type must be dropped")
}

func TestUpdateNotFoundPassesThrough(t *testing.T) {
	store := &fakeStore{err: apperrors.ErrContentNotFound}
	lc := NewLifecycle(testDescriptor(), store, newTestCache(t), nil)

	err := lc.Update(context.Background(), &testEntity{ID: 99})
	assert.ErrorIs(t, err, apperrors.ErrContentNotFound)
}

func TestPublish(t *testing.T) {
	store := &fakeStore{}
	cache := newTestCache(t)
	primeKey(t, cache, PublicKey(TypeTeamMembers))

	lc := NewLifecycle(testDescriptor(), store, cache, nil)

	require.NoError(t, lc.Publish(context.Background(), 7))
	assert.Equal(t, int64(7), store.publishedID)
	assert.Equal(t, 0, cache.Len())
}

func TestDeleteCleansUpAttachments(t *testing.T) {
	store := &fakeStore{byID: map[int64]*testEntity{
		5: {ID: 5, Photo: "team/abc.jpg"},
	}}
	blobs := &fakeBlobs{}
	cache := newTestCache(t)
	primeKey(t, cache, PublicKey(TypeTeamMembers))

	lc := NewLifecycle(testDescriptor(), store, cache, blobs)

	require.NoError(t, lc.Delete(context.Background(), 5))
	assert.Equal(t, int64(5), store.deletedID)
	assert.Equal(t, []blobstore.Ref{"team/abc.jpg"}, blobs.deleted)
	assert.Equal(t, 0, cache.Len())
}

func TestDeleteBlobFailureIsNotFatal(t *testing.T) {
	store := &fakeStore{byID: map[int64]*testEntity{
		5: {ID: 5, Photo: "team/abc.jpg"},
	}}
	blobs := &fakeBlobs{deleteErr: errors.New("object store down")}
	lc := NewLifecycle(testDescriptor(), store, newTestCache(t), blobs)

	require.NoError(t, lc.Delete(context.Background(), 5))
	assert.Equal(t, int64(5), store.deletedID)
}

func TestDeleteMissingEntity(t *testing.T) {
	store := &fakeStore{byID: map[int64]*testEntity{}}
	lc := NewLifecycle(testDescriptor(), store, newTestCache(t), &fakeBlobs{})

	err := lc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrContentNotFound)
}

func TestDeleteWithoutBlobStoreSkipsLoad(t *testing.T) {
	store := &fakeStore{}
	desc := Descriptor[testEntity]{Type: TypeResources}
	lc := NewLifecycle(desc, store, newTestCache(t), nil)

	require.NoError(t, lc.Delete(context.Background(), 9))
	assert.Equal(t, int64(9), store.deletedID)
}

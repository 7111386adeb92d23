package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/pkg/blobstore"
	"github.com/aaryan/councilhub/internal/pkg/querycache"
)

func TestEventCreateNormalizesNilPhotos(t *testing.T) {
	store := &stubStore[models.Event]{}
	svc := newEventService(nil, store, querycache.New(nil), nil)

	event := &models.Event{Name: "Hack night", Date: 1234, Description: "d"}
	_, err := svc.Create(context.Background(), event, false)
	require.NoError(t, err)

	require.NotNil(t, store.inserted)
	assert.NotNil(t, store.inserted.Photos, "an omitted photo list must persist as an empty sequence")
	assert.Empty(t, store.inserted.Photos)
}

func TestEventCreateKeepsPhotoOrder(t *testing.T) {
	store := &stubStore[models.Event]{}
	svc := newEventService(nil, store, querycache.New(nil), nil)

	photos := []blobstore.Ref{"a.jpg", "b.jpg", "c.jpg"}
	event := &models.Event{Name: "Expo", Date: 1234, Description: "d", Photos: photos}
	_, err := svc.Create(context.Background(), event, true)
	require.NoError(t, err)

	require.NotNil(t, store.insertedPublished)
	assert.Equal(t, photos, store.insertedPublished.Photos)
}

func TestEventUpdateNormalizesNilPhotos(t *testing.T) {
	store := &stubStore[models.Event]{}
	svc := newEventService(nil, store, querycache.New(nil), nil)

	event := &models.Event{ID: 3, Name: "Hack night", Date: 1234, Description: "d"}
	require.NoError(t, svc.Update(context.Background(), event))

	require.NotNil(t, store.updated)
	assert.NotNil(t, store.updated.Photos)
	assert.Empty(t, store.updated.Photos)
}

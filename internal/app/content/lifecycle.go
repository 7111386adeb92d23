package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/aaryan/councilhub/internal/pkg/apperrors"
	"github.com/aaryan/councilhub/internal/pkg/blobstore"
	"github.com/aaryan/councilhub/internal/pkg/logger"
	"github.com/aaryan/councilhub/internal/pkg/querycache"
)

// Store is the persistence contract one content type's repository fulfills.
// Insert creates a draft; InsertPublished creates and publishes in a single
// transaction; SetPublic flips visibility and nothing else; Update writes the
// full field set except visibility.
type Store[T any] interface {
	Insert(ctx context.Context, entity *T) (int64, error)
	InsertPublished(ctx context.Context, entity *T) (int64, error)
	Update(ctx context.Context, entity *T) error
	SetPublic(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*T, error)
}

// Lifecycle runs the shared draft/publish workflow for one content type and
// keeps the read cache consistent: every mutation invalidates all of the
// type's keyed read variants.
type Lifecycle[T any] struct {
	desc  Descriptor[T]
	store Store[T]
	cache *querycache.Cache
	blobs blobstore.Store
}

// NewLifecycle wires a lifecycle for one content type. blobs may be nil for
// types without attachments.
func NewLifecycle[T any](desc Descriptor[T], store Store[T], cache *querycache.Cache, blobs blobstore.Store) *Lifecycle[T] {
	return &Lifecycle[T]{
		desc:  desc,
		store: store,
		cache: cache,
		blobs: blobs,
	}
}

// Create inserts the entity. With publish set, creation and publication
// happen in one transaction, so no observable draft window exists. Without
// it, the entity stays a draft until an explicit Publish.
func (l *Lifecycle[T]) Create(ctx context.Context, entity *T, publish bool) (int64, error) {
	var (
		id  int64
		err error
	)
	if publish {
		id, err = l.store.InsertPublished(ctx, entity)
	} else {
		id, err = l.store.Insert(ctx, entity)
	}
	if err != nil {
		return 0, fmt.Errorf("error creating %s entry: %w", l.desc.Type, err)
	}

	l.cache.Invalidate(l.desc.Type.Scope())
	return id, nil
}

// Update writes the full editable field set. Visibility is untouched:
// repositories never reference is_public in their update statements.
func (l *Lifecycle[T]) Update(ctx context.Context, entity *T) error {
	if err := l.store.Update(ctx, entity); err != nil {
		if errors.Is(err, apperrors.ErrContentNotFound) {
			return err
		}
		return fmt.Errorf("error updating %s entry: %w", l.desc.Type, err)
	}

	l.cache.Invalidate(l.desc.Type.Scope())
	return nil
}

// Publish makes the entity public. The operation touches only the visibility
// flag and is idempotent in effect.
func (l *Lifecycle[T]) Publish(ctx context.Context, id int64) error {
	if err := l.store.SetPublic(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrContentNotFound) {
			return err
		}
		return fmt.Errorf("error publishing %s entry %d: %w", l.desc.Type, id, err)
	}

	l.cache.Invalidate(l.desc.Type.Scope())
	return nil
}

// Delete removes the entity permanently, then cleans up its attachments.
// Blob cleanup is best effort: the row is already gone, a leaked object only
// costs storage.
func (l *Lifecycle[T]) Delete(ctx context.Context, id int64) error {
	var refs []blobstore.Ref
	if l.desc.Blobs != nil {
		entity, err := l.store.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrContentNotFound) {
				return err
			}
			return fmt.Errorf("error loading %s entry %d: %w", l.desc.Type, id, err)
		}
		refs = l.desc.Blobs(entity)
	}

	if err := l.store.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrContentNotFound) {
			return err
		}
		return fmt.Errorf("error deleting %s entry %d: %w", l.desc.Type, id, err)
	}

	if l.blobs != nil {
		for _, ref := range refs {
			if err := l.blobs.Delete(ctx, ref); err != nil {
				logger.Warn().Err(err).Str("ref", string(ref)).Msg("Failed to delete attachment for removed entry")
			}
		}
	}

	l.cache.Invalidate(l.desc.Type.Scope())
	return nil
}

// GetByID loads one entity regardless of visibility. Callers enforce access.
func (l *Lifecycle[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	return l.store.GetByID(ctx, id)
}

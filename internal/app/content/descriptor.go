// Package content implements the lifecycle shared by every content type:
// created as a draft, optionally made public by a one-way publish, updated
// without visibility changes, hard-deleted. One generic workflow driven by a
// per-type descriptor replaces eight hand-duplicated mutation stacks.
package content

import (
	"fmt"

	"github.com/aaryan/councilhub/internal/pkg/blobstore"
	"github.com/aaryan/councilhub/internal/pkg/querycache"
)

// Type names a content type. The type name doubles as the cache scope: every
// cached read of a type lives under "<type>:" keys, and any mutation of the
// type drops them all.
type Type string

const (
	TypeTeamMembers    Type = "team"
	TypeEvents         Type = "events"
	TypeGallery        Type = "gallery"
	TypeProjects       Type = "projects"
	TypeAchievements   Type = "achievements"
	TypeAnnouncements  Type = "announcements"
	TypeCollaborations Type = "collaborations"
	TypeResources      Type = "resources"
)

// AllTypes lists every content type, for scope registration.
var AllTypes = []Type{
	TypeTeamMembers,
	TypeEvents,
	TypeGallery,
	TypeProjects,
	TypeAchievements,
	TypeAnnouncements,
	TypeCollaborations,
	TypeResources,
}

// Scope is the invalidation scope name for a type.
func (t Type) Scope() string {
	return string(t)
}

// RegisterScopes declares every content type's key prefix with the cache so
// that mutations invalidate all keyed read variants of the type at once.
func RegisterScopes(c *querycache.Cache) {
	for _, t := range AllTypes {
		c.RegisterScope(t.Scope(), string(t)+":")
	}
}

// PublicKey is the cache key for a type's public list read.
func PublicKey(t Type) querycache.Key {
	return querycache.Key(string(t) + ":public")
}

// CategoryKey is the cache key for a category-filtered read.
func CategoryKey(t Type, category string) querycache.Key {
	return querycache.Key(string(t) + ":category:" + category)
}

// SubsetKey is the cache key for a named read variant, e.g. events "upcoming"
// and "past", or team "role:<r>".
func SubsetKey(t Type, name string) querycache.Key {
	return querycache.Key(string(t) + ":" + name)
}

// OwnerKey is the cache key for a caller-owned subset read.
func OwnerKey(t Type, userID int64) querycache.Key {
	return querycache.Key(fmt.Sprintf("%s:mine:%d", t, userID))
}

// Descriptor describes one content type to the generic lifecycle.
type Descriptor[T any] struct {
	// Type names the entity and its cache scope.
	Type Type
	// Blobs extracts the entity's attachment refs, cleaned up on delete.
	// Nil for types without attachments.
	Blobs func(*T) []blobstore.Ref
}

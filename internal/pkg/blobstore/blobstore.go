// Package blobstore stores entity attachments (photos, posters, gallery
// images) as opaque references. Entities carry refs, never raw bytes; a ref is
// resolved to a directly fetchable URL for display. Refs are immutable:
// replacing an attachment means storing new content under a new ref.
package blobstore

import (
	"context"
	"io"
	"strings"
)

// Ref is an opaque reference to stored binary content. It is either an object
// key inside the configured store, or an absolute URL for externally hosted
// content.
type Ref string

// IsExternal reports whether the ref points at externally hosted content.
func (r Ref) IsExternal() bool {
	return strings.Contains(string(r), "://")
}

// FromURL constructs a ref for content that is already hosted elsewhere.
// Such refs resolve to their own URL and are never deleted by the store.
func FromURL(rawURL string) Ref {
	return Ref(rawURL)
}

// PutOptions carry optional metadata for an upload.
type PutOptions struct {
	// Filename is the original client filename, used to derive the content
	// type and extension.
	Filename string
	// Progress, when set, receives fractional upload progress in [0,100].
	Progress func(percent float64)
}

// Store is the blob storage backend.
type Store interface {
	// Put stores size bytes read from r and returns the new ref.
	Put(ctx context.Context, r io.Reader, size int64, opts PutOptions) (Ref, error)

	// Delete removes the content behind ref. External refs and missing
	// objects are ignored.
	Delete(ctx context.Context, ref Ref) error

	// URL resolves a ref to a directly fetchable URL.
	URL(ref Ref) string
}

// progressReader reports fractional progress while the backend drains the
// upload body.
type progressReader struct {
	r        io.Reader
	total    int64
	read     int64
	progress func(percent float64)
}

func newProgressReader(r io.Reader, size int64, progress func(percent float64)) io.Reader {
	if progress == nil || size <= 0 {
		return r
	}
	return &progressReader{r: r, total: size, progress: progress}
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	if n > 0 {
		p.read += int64(n)
		pct := float64(p.read) / float64(p.total) * 100
		if pct > 100 {
			pct = 100
		}
		p.progress(pct)
	}
	return n, err
}

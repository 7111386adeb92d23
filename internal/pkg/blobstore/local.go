package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/aaryan/councilhub/internal/pkg/logger"
)

// LocalStore saves blobs on the local filesystem. It serves development
// setups without an object store; the directory is exposed by the HTTP server
// under /uploads.
type LocalStore struct {
	basePath string
	baseURL  string
}

// NewLocalStore creates the storage directory if needed.
func NewLocalStore(basePath, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local blob storage directory ensured")

	return &LocalStore{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// Put writes the content to a uniquely named file and returns its ref.
func (s *LocalStore) Put(_ context.Context, r io.Reader, size int64, opts PutOptions) (Ref, error) {
	ext := strings.ToLower(filepath.Ext(opts.Filename))
	name := uuid.New().String() + ext
	dstPath := filepath.Join(s.basePath, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, newProgressReader(r, size, opts.Progress)); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save blob content: %w", err)
	}

	return Ref(name), nil
}

// Delete removes the file behind ref. Missing files and external refs are
// treated as already deleted.
func (s *LocalStore) Delete(_ context.Context, ref Ref) error {
	if ref == "" || ref.IsExternal() {
		return nil
	}

	name := filepath.Base(string(ref))
	if name == "" || name == "." || name == "/" {
		return fmt.Errorf("invalid blob ref: %s", ref)
	}

	path := filepath.Join(s.basePath, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Warn().Str("path", path).Msg("Blob to delete does not exist")
		return nil
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

// URL resolves a ref to the statically served file URL.
func (s *LocalStore) URL(ref Ref) string {
	if ref == "" {
		return ""
	}
	if ref.IsExternal() {
		return string(ref)
	}
	return s.baseURL + "/" + string(ref)
}

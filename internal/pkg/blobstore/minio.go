package blobstore

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/aaryan/councilhub/internal/pkg/logger"
)

// MinioStore stores blobs in a MinIO (or any S3-compatible) bucket.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// MinioConfig holds connection settings for the object store.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the externally reachable base URL of the endpoint,
	// e.g. "http://localhost:9000".
	PublicURL string
}

// NewMinioStore connects to the object store and ensures the bucket exists.
func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info().Str("bucket", cfg.Bucket).Msg("Created blob bucket")
	}

	return &MinioStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

// Put uploads the content and returns its ref (the object key).
func (s *MinioStore) Put(ctx context.Context, r io.Reader, size int64, opts PutOptions) (Ref, error) {
	ext := strings.ToLower(filepath.Ext(opts.Filename))
	if ext == "" {
		ext = ".bin"
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now()
	objectName := fmt.Sprintf("media/%d/%02d/%s%s", now.Year(), now.Month(), uuid.New().String(), ext)

	body := newProgressReader(r, size, opts.Progress)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, body, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": opts.Filename,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return Ref(objectName), nil
}

// Delete removes the object behind ref. External refs are left alone.
func (s *MinioStore) Delete(ctx context.Context, ref Ref) error {
	if ref == "" || ref.IsExternal() {
		return nil
	}

	err := s.client.RemoveObject(ctx, s.bucket, string(ref), minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object %s: %w", ref, err)
	}
	return nil
}

// URL resolves a ref to its directly fetchable URL.
func (s *MinioStore) URL(ref Ref) string {
	if ref == "" {
		return ""
	}
	if ref.IsExternal() {
		return string(ref)
	}
	return s.publicURL + "/" + s.bucket + "/" + string(ref)
}

// File: internal/filestorage/service.go
package filestorage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"

	"worklink_app/internal/config"
)

// Service uploads binary blobs to the object store and returns their public
// URLs. Paths are timestamp-based per upload, not content-addressed, so a
// retry with the same path overwrites the same object (idempotent).
type Service struct {
	bucket     *storage.BucketHandle
	bucketName string
	logger     *zap.Logger
}

// NewService creates a new file storage service. bucket may be nil when the
// storage bucket is not configured; uploads then fail cleanly.
func NewService(cfg *config.Config, bucket *storage.BucketHandle, logger *zap.Logger) *Service {
	return &Service{
		bucket:     bucket,
		bucketName: cfg.FirebaseStorageBucket,
		logger:     logger.Named("filestorage"),
	}
}

// BuildPath constructs the object path for an upload: one folder per kind
// ("avatars", "listings"), keyed by owner and upload timestamp.
func (s *Service) BuildPath(kind, ownerID, filename string) string {
	ext := path.Ext(filename)
	return fmt.Sprintf("%s/%s/%d%s", kind, ownerID, time.Now().UnixMilli(), ext)
}

// Upload writes the blob to objectPath and returns its public URL.
func (s *Service) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	cleanPath := path.Clean(objectPath)
	if strings.HasPrefix(cleanPath, "..") || strings.HasPrefix(cleanPath, "/") {
		s.logger.Error("Invalid object path", zap.String("path", objectPath))
		return "", fmt.Errorf("invalid object path")
	}
	if s.bucket == nil {
		return "", fmt.Errorf("object storage is not configured")
	}

	w := s.bucket.Object(cleanPath).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		s.logger.Error("Failed to write object", zap.String("path", cleanPath), zap.Error(err))
		return "", fmt.Errorf("failed to upload %s: %w", cleanPath, err)
	}
	if err := w.Close(); err != nil {
		s.logger.Error("Failed to finalize object upload", zap.String("path", cleanPath), zap.Error(err))
		return "", fmt.Errorf("failed to finalize upload of %s: %w", cleanPath, err)
	}

	url := s.PublicURL(cleanPath)
	s.logger.Info("Object uploaded", zap.String("path", cleanPath), zap.String("url", url))
	return url, nil
}

// PublicURL returns the public download URL for an object path.
func (s *Service) PublicURL(objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, objectPath)
}

// Delete removes an object. Missing objects are not an error.
func (s *Service) Delete(ctx context.Context, objectPath string) error {
	if s.bucket == nil {
		return fmt.Errorf("object storage is not configured")
	}
	err := s.bucket.Object(path.Clean(objectPath)).Delete(ctx)
	if err != nil && err != storage.ErrObjectNotExist {
		s.logger.Error("Failed to delete object", zap.String("path", objectPath), zap.Error(err))
		return fmt.Errorf("failed to delete %s: %w", objectPath, err)
	}
	return nil
}

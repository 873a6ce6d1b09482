package bundle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"qa-preview/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ErrBucketNotFound is returned when the configured bucket does not exist.
var ErrBucketNotFound = errors.New("bucket not found")

// Service downloads a published build into the local site root.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	root   string
	logger *zap.Logger
}

// NewService creates a new bundle service writing into root.
func NewService(client storage.Client, cfg storage.Config, root string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		root:   root,
		logger: logger,
	}
}

// Download copies every object under the prefix into the root directory,
// keeping the key path relative to the prefix. Keys that would land outside
// the root are skipped. It returns the number of files written.
func (s *Service) Download(ctx context.Context) (int, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return 0, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return 0, fmt.Errorf("%s: %w", s.bucket, ErrBucketNotFound)
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create root %s: %w", s.root, err)
	}

	written := 0
	opts := minio.ListObjectsOptions{Prefix: s.prefix, Recursive: true}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return written, fmt.Errorf("failed to list %s/%s: %w", s.bucket, s.prefix, obj.Err)
		}

		rel := strings.TrimPrefix(obj.Key, s.prefix)
		if rel == "" || strings.HasSuffix(rel, "/") {
			continue
		}

		target, ok := s.target(rel)
		if !ok {
			s.logger.Warn("Skipping object outside site root", zap.String("key", obj.Key))
			continue
		}

		if err := s.fetch(ctx, obj.Key, target); err != nil {
			return written, err
		}
		written++
		s.logger.Debug("Fetched object", zap.String("key", obj.Key), zap.String("file", target))
	}

	return written, nil
}

func (s *Service) target(rel string) (string, bool) {
	for _, seg := range strings.Split(strings.ReplaceAll(rel, `\`, "/"), "/") {
		if seg == ".." {
			return "", false
		}
	}
	return filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(rel, "/"))), true
}

func (s *Service) fetch(ctx context.Context, key, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", key, err)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer obj.Close()

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}

	if _, err := io.Copy(f, obj); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return f.Close()
}

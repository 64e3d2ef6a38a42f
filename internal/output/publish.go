package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ObjectStore is the storage surface a Publisher needs.
// Implemented by internal/platform/s3.Client.
type ObjectStore interface {
	EnsureBucket(ctx context.Context, bucket string) error
	PutObject(ctx context.Context, bucket, key string, data []byte, contentType string) error
}

// Publisher uploads a rendered record to a bucket.
type Publisher struct {
	Store  ObjectStore
	Bucket string
	Key    string
}

// Publish ensures the bucket exists and writes data to Key.
func (p *Publisher) Publish(ctx context.Context, data []byte, f Format) error {
	if p.Bucket == "" || p.Key == "" {
		return fmt.Errorf("publish target incomplete: bucket %q, key %q", p.Bucket, p.Key)
	}
	if err := p.Store.EnsureBucket(ctx, p.Bucket); err != nil {
		return fmt.Errorf("failed to prepare bucket: %w", err)
	}
	if err := p.Store.PutObject(ctx, p.Bucket, p.Key, data, f.ContentType()); err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}
	return nil
}

// String returns the s3:// URL of the target.
func (p *Publisher) String() string {
	return fmt.Sprintf("s3://%s/%s", p.Bucket, p.Key)
}

// WriteFile writes data to path with owner-only permissions, creating
// parent directories. The file holds credentials.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

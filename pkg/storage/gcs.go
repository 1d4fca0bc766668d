package storage

import (
	"context"
	"fmt"
	"time"

	gcstorage "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/truemindlabs-dev/synora/pkg/cache"
	"github.com/truemindlabs-dev/synora/pkg/errors"
	"github.com/truemindlabs-dev/synora/pkg/observability"
)

// ============================================================================
// Google Cloud Storage backend
// ============================================================================

// GCS stores artifacts as objects in a Cloud Storage bucket.
type GCS struct {
	client *gcstorage.Client
	bucket string
}

var _ Backend = (*GCS)(nil)

func newGCS(ctx context.Context, cfg Config) (*GCS, error) {
	if cfg.GCSBucket == "" {
		return nil, errors.New(errors.ErrCodeStorage, "gcs: bucket not configured")
	}
	var opts []option.ClientOption
	if cfg.GCSCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GCSCredentialsFile))
	}
	client, err := gcstorage.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "gcs: create client failed")
	}
	return &GCS{client: client, bucket: cfg.GCSBucket}, nil
}

// Name implements Backend.
func (g *GCS) Name() string { return "gcs" }

// Save implements Backend. Transient upload failures are retried with
// backoff before the error is surfaced.
func (g *GCS) Save(ctx context.Context, key string, data []byte) (string, error) {
	start := time.Now()
	obj := g.client.Bucket(g.bucket).Object(objectName(key))
	err := cache.RetryWithBackoff(ctx, func() error {
		w := obj.NewWriter(ctx)
		w.ContentType = "image/png"
		if _, werr := w.Write(data); werr != nil {
			w.Close()
			return cache.Retryable(werr)
		}
		if cerr := w.Close(); cerr != nil {
			return cache.Retryable(cerr)
		}
		return nil
	})
	if err != nil {
		observability.Storage().OnError(ctx, "gcs", "save", key, err)
		return "", wrapStorage("gcs", err, "save", key)
	}
	observability.Storage().OnSave(ctx, "gcs", key, len(data), time.Since(start))
	return g.URL(key), nil
}

// Delete implements Backend.
func (g *GCS) Delete(ctx context.Context, key string) error {
	err := g.client.Bucket(g.bucket).Object(objectName(key)).Delete(ctx)
	if err != nil && err != gcstorage.ErrObjectNotExist {
		observability.Storage().OnError(ctx, "gcs", "delete", key, err)
		return wrapStorage("gcs", err, "delete", key)
	}
	observability.Storage().OnDelete(ctx, "gcs", key)
	return nil
}

// URL implements Backend.
func (g *GCS) URL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", g.bucket, objectName(key))
}

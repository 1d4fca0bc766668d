// Package storage persists rendered PNG artifacts and hands out public
// URLs for them. Three interchangeable backends are provided: the local
// filesystem (served back by the API), Amazon S3, and Google Cloud
// Storage.
//
// Backends are selected by configuration and injected explicitly; nothing
// in this package holds global state. Keys are opaque identifiers without
// extension: every backend stores `<key>.png`.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/truemindlabs-dev/synora/pkg/errors"
)

// Backend stores PNG artifacts under string keys.
type Backend interface {
	// Save writes data under key and returns the public URL.
	Save(ctx context.Context, key string, data []byte) (string, error)

	// Delete removes the artifact. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// URL returns the public URL for a key without touching the backend.
	URL(key string) string

	// Name identifies the backend in logs and metrics.
	Name() string
}

// Config selects and parameterizes a backend.
type Config struct {
	// Backend is one of "local", "s3", "gcs". Unknown values fall back to
	// local.
	Backend string

	// Local
	Dir     string
	BaseURL string

	// S3
	S3Bucket    string
	S3Region    string
	S3AccessKey string
	S3SecretKey string

	// GCS
	GCSBucket          string
	GCSCredentialsFile string
}

// New builds the configured backend. Cloud backends validate their
// configuration and establish clients eagerly so misconfiguration fails at
// startup, not on the first upload.
func New(ctx context.Context, cfg Config) (Backend, error) {
	switch strings.ToLower(cfg.Backend) {
	case "s3":
		return newS3(ctx, cfg)
	case "gcs":
		return newGCS(ctx, cfg)
	default:
		return newLocal(cfg)
	}
}

// objectName maps a key to its stored object name.
func objectName(key string) string {
	return fmt.Sprintf("%s.png", key)
}

func wrapStorage(backend string, err error, op, key string) error {
	return errors.Wrap(errors.ErrCodeStorage, err, "%s: %s %q failed", backend, op, key)
}

package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/truemindlabs-dev/synora/pkg/errors"
	"github.com/truemindlabs-dev/synora/pkg/observability"
)

// ============================================================================
// Local filesystem backend
// ============================================================================

// Local stores artifacts as files under a directory. URLs point at the
// API's image route, which serves the files back.
type Local struct {
	dir     string
	baseURL string
}

var _ Backend = (*Local)(nil)

func newLocal(cfg Config) (*Local, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "./storage/images"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "local: create dir %q failed", dir)
	}
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "http://localhost:8000/api/image"
	}
	return &Local{dir: dir, baseURL: baseURL}, nil
}

// Name implements Backend.
func (l *Local) Name() string { return "local" }

// Save implements Backend.
func (l *Local) Save(ctx context.Context, key string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", wrapStorage("local", err, "save", key)
	}
	start := time.Now()
	path := l.Path(key)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		observability.Storage().OnError(ctx, "local", "save", key, err)
		return "", wrapStorage("local", err, "save", key)
	}
	observability.Storage().OnSave(ctx, "local", key, len(data), time.Since(start))
	return l.URL(key), nil
}

// Delete implements Backend.
func (l *Local) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return wrapStorage("local", err, "delete", key)
	}
	err := os.Remove(l.Path(key))
	if err != nil && !os.IsNotExist(err) {
		observability.Storage().OnError(ctx, "local", "delete", key, err)
		return wrapStorage("local", err, "delete", key)
	}
	observability.Storage().OnDelete(ctx, "local", key)
	return nil
}

// URL implements Backend.
func (l *Local) URL(key string) string {
	return l.baseURL + "/" + key
}

// Path returns the filesystem location for a key. The API uses it to
// serve stored images directly.
func (l *Local) Path(key string) string {
	return filepath.Join(l.dir, objectName(key))
}

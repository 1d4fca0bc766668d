// Package cache provides the caching layer shared by the CLI and the API
// server: a byte-oriented Cache interface with file, Redis, and null
// implementations, and a Keyer that derives stable cache keys from
// generation parameters.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte blobs with optional expiry. Implementations must
// be safe for concurrent use.
type Cache interface {
	// Get returns the cached data and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means no expiration; a
	// negative ttl means the entry is already expired and evicts any
	// previous value for the key.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ImageKeyOpts are the generation parameters that affect rendered output.
// Two requests with equal opts and equal prompts produce identical images,
// so they share a cache entry.
type ImageKeyOpts struct {
	Style  string
	Width  int
	Height int
	Seed   *int64
}

// Keyer generates cache keys. Implementations must be deterministic: the
// same inputs always yield the same key.
type Keyer interface {
	// ImageKey returns the key for a rendered PNG artifact.
	ImageKey(prompt string, opts ImageKeyOpts) string

	// PaletteKey returns the key for a prompt's resolved palette.
	PaletteKey(prompt string) string
}

// DefaultKeyer hashes parameters into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ImageKey generates a key for a rendered artifact. The prompt and every
// rendering option participate in the hash.
func (k *DefaultKeyer) ImageKey(prompt string, opts ImageKeyOpts) string {
	return hashKey("image", prompt, opts.Style, opts.Width, opts.Height, opts.Seed)
}

// PaletteKey generates a key for a resolved palette.
func (k *DefaultKeyer) PaletteKey(prompt string) string {
	return hashKey("palette", prompt)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)

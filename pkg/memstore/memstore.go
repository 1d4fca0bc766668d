// Package memstore is a namespaced key/value store scoped per user. The
// API exposes it so clients can persist small JSON documents (preferences,
// generation presets, session notes) alongside their images.
//
// Keys are scoped as `user::namespace::key`, so two users can never see
// each other's entries and a user can partition their own data into
// namespaces. Two backends are provided: an in-process store for
// development and single-node deployments, and Redis for shared state.
package memstore

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/truemindlabs-dev/synora/pkg/errors"
)

// DefaultNamespace is used when a request does not name one.
const DefaultNamespace = "default"

// MaxKeyLen bounds user-supplied keys.
const MaxKeyLen = 500

// Entry is one stored value together with its ownership and timestamps.
type Entry struct {
	Key       string          `json:"key"`
	Namespace string          `json:"namespace"`
	UserID    string          `json:"user_id"`
	Email     string          `json:"email,omitempty"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Store persists entries. Implementations must keep users isolated from
// each other.
type Store interface {
	// Put upserts an entry. CreatedAt survives overwrites; UpdatedAt is
	// refreshed. The stored entry is returned.
	Put(ctx context.Context, e Entry) (Entry, error)

	// Get returns the entry or ErrCodeKeyNotFound.
	Get(ctx context.Context, userID, namespace, key string) (Entry, error)

	// List returns all entries of a user within a namespace.
	List(ctx context.Context, userID, namespace string) ([]Entry, error)

	// Delete removes the entry or returns ErrCodeKeyNotFound.
	Delete(ctx context.Context, userID, namespace, key string) error

	// Count returns the number of entries a user holds across all
	// namespaces.
	Count(ctx context.Context, userID string) (int, error)

	// Close releases backend resources.
	Close() error
}

// Config selects and parameterizes a backend.
type Config struct {
	// Backend is "memory" or "redis". Unknown values fall back to memory.
	Backend  string
	RedisURL string
}

// New builds the configured store.
func New(ctx context.Context, cfg Config) (Store, error) {
	if strings.EqualFold(cfg.Backend, "redis") {
		return NewRedis(ctx, cfg.RedisURL)
	}
	return NewMemory(), nil
}

// ValidateKey rejects empty, oversized, or separator-bearing keys.
func ValidateKey(key string) error {
	if key == "" {
		return errors.New(errors.ErrCodeInvalidInput, "key must not be empty")
	}
	if len(key) > MaxKeyLen {
		return errors.New(errors.ErrCodeInvalidInput, "key exceeds %d characters", MaxKeyLen)
	}
	if strings.Contains(key, "::") {
		return errors.New(errors.ErrCodeInvalidInput, "key must not contain %q", "::")
	}
	return nil
}

// scopedKey builds the storage key. Namespace defaults when empty.
func scopedKey(userID, namespace, key string) string {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return userID + "::" + namespace + "::" + key
}

// scopedPrefix is the key prefix shared by a user's namespace.
func scopedPrefix(userID, namespace string) string {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return userID + "::" + namespace + "::"
}

// userPrefix is the key prefix shared by everything a user owns.
func userPrefix(userID string) string {
	return userID + "::"
}

func notFound(namespace, key string) error {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return errors.New(errors.ErrCodeKeyNotFound, "key %q not found in namespace %q", key, namespace)
}

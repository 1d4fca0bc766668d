package memstore

import (
	"context"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ============================================================================
// In-process backend
// ============================================================================

// Memory keeps entries in process memory. Contents are lost on restart,
// which is acceptable for development and tests.
type Memory struct {
	items *gocache.Cache
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-process store. Entries never expire.
func NewMemory() *Memory {
	return &Memory{items: gocache.New(gocache.NoExpiration, 0)}
}

// Put implements Store.
func (m *Memory) Put(ctx context.Context, e Entry) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	if e.Namespace == "" {
		e.Namespace = DefaultNamespace
	}
	now := time.Now().UTC()
	sk := scopedKey(e.UserID, e.Namespace, e.Key)
	if prev, ok := m.items.Get(sk); ok {
		e.CreatedAt = prev.(Entry).CreatedAt
	} else {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
	m.items.Set(sk, e, gocache.NoExpiration)
	return e, nil
}

// Get implements Store.
func (m *Memory) Get(ctx context.Context, userID, namespace, key string) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	v, ok := m.items.Get(scopedKey(userID, namespace, key))
	if !ok {
		return Entry{}, notFound(namespace, key)
	}
	return v.(Entry), nil
}

// List implements Store.
func (m *Memory) List(ctx context.Context, userID, namespace string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prefix := scopedPrefix(userID, namespace)
	var out []Entry
	for sk, item := range m.items.Items() {
		if strings.HasPrefix(sk, prefix) {
			out = append(out, item.Object.(Entry))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Delete implements Store.
func (m *Memory) Delete(ctx context.Context, userID, namespace, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sk := scopedKey(userID, namespace, key)
	if _, ok := m.items.Get(sk); !ok {
		return notFound(namespace, key)
	}
	m.items.Delete(sk)
	return nil
}

// Count implements Store.
func (m *Memory) Count(ctx context.Context, userID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	prefix := userPrefix(userID)
	n := 0
	for sk := range m.items.Items() {
		if strings.HasPrefix(sk, prefix) {
			n++
		}
	}
	return n, nil
}

// Close implements Store.
func (m *Memory) Close() error { return nil }

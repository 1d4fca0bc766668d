package memstore

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/truemindlabs-dev/synora/pkg/errors"
)

// ============================================================================
// Redis backend
// ============================================================================

// keyPrefix separates this store's keys from other uses of the same Redis
// instance, such as the image cache.
const keyPrefix = "memstore:"

// Redis keeps entries in a Redis instance so multiple API nodes share
// state. Entries are stored as JSON without expiry.
type Redis struct {
	client *redis.Client
}

var _ Store = (*Redis)(nil)

// NewRedis connects to the given Redis URL and verifies the connection.
func NewRedis(ctx context.Context, url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid redis url")
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(errors.ErrCodeDatabase, err, "redis ping failed")
	}
	return &Redis{client: client}, nil
}

// Put implements Store.
func (r *Redis) Put(ctx context.Context, e Entry) (Entry, error) {
	if e.Namespace == "" {
		e.Namespace = DefaultNamespace
	}
	now := time.Now().UTC()
	sk := keyPrefix + scopedKey(e.UserID, e.Namespace, e.Key)

	prev, err := r.load(ctx, sk)
	switch {
	case err == nil:
		e.CreatedAt = prev.CreatedAt
	case errors.GetCode(err) == errors.ErrCodeKeyNotFound:
		e.CreatedAt = now
	default:
		return Entry{}, err
	}
	e.UpdatedAt = now

	data, err := json.Marshal(e)
	if err != nil {
		return Entry{}, errors.Wrap(errors.ErrCodeInternal, err, "marshal entry failed")
	}
	if err := r.client.Set(ctx, sk, data, 0).Err(); err != nil {
		return Entry{}, errors.Wrap(errors.ErrCodeDatabase, err, "redis set failed")
	}
	return e, nil
}

// Get implements Store.
func (r *Redis) Get(ctx context.Context, userID, namespace, key string) (Entry, error) {
	e, err := r.load(ctx, keyPrefix+scopedKey(userID, namespace, key))
	if errors.GetCode(err) == errors.ErrCodeKeyNotFound {
		return Entry{}, notFound(namespace, key)
	}
	return e, err
}

// List implements Store.
func (r *Redis) List(ctx context.Context, userID, namespace string) ([]Entry, error) {
	keys, err := r.scan(ctx, keyPrefix+scopedPrefix(userID, namespace)+"*")
	if err != nil {
		return nil, err
	}
	var out []Entry
	for _, sk := range keys {
		e, err := r.load(ctx, sk)
		if errors.GetCode(err) == errors.ErrCodeKeyNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Delete implements Store.
func (r *Redis) Delete(ctx context.Context, userID, namespace, key string) error {
	n, err := r.client.Del(ctx, keyPrefix+scopedKey(userID, namespace, key)).Result()
	if err != nil {
		return errors.Wrap(errors.ErrCodeDatabase, err, "redis del failed")
	}
	if n == 0 {
		return notFound(namespace, key)
	}
	return nil
}

// Count implements Store.
func (r *Redis) Count(ctx context.Context, userID string) (int, error) {
	keys, err := r.scan(ctx, keyPrefix+userPrefix(userID)+"*")
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

// Close implements Store.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) load(ctx context.Context, sk string) (Entry, error) {
	data, err := r.client.Get(ctx, sk).Bytes()
	if err == redis.Nil {
		return Entry{}, errors.New(errors.ErrCodeKeyNotFound, "key %q not found", sk)
	}
	if err != nil {
		return Entry{}, errors.Wrap(errors.ErrCodeDatabase, err, "redis get failed")
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return Entry{}, errors.Wrap(errors.ErrCodeInternal, err, "unmarshal entry failed")
	}
	return e, nil
}

func (r *Redis) scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		batch, next, err := r.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeDatabase, err, "redis scan failed")
		}
		keys = append(keys, batch...)
		if next == 0 {
			return keys, nil
		}
		cursor = next
	}
}

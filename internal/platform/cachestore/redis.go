package cachestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"powerwidget/internal/feature/prices/usecase"
)

// redisEnvelope is the JSON blob stored per key. The write time travels with
// the payload so that freshness is decided by the caller-supplied clock, not
// by a Redis TTL.
type redisEnvelope struct {
	WrittenAt time.Time       `json:"written_at"`
	Payload   json.RawMessage `json:"payload"`
}

// RedisStore implements the CacheStore port on top of a Redis client.
type RedisStore struct {
	rdb       *redis.Client
	namespace string
}

var _ usecase.CacheStore = (*RedisStore)(nil)

// NewRedisStore creates a RedisStore. If namespace is empty, "powerwidget" is used.
func NewRedisStore(rdb *redis.Client, namespace string) *RedisStore {
	if namespace == "" {
		namespace = "powerwidget"
	}
	return &RedisStore{rdb: rdb, namespace: namespace}
}

func (s *RedisStore) storeKey(key string) string {
	return fmt.Sprintf("%s:%s", s.namespace, key)
}

func (s *RedisStore) envelope(ctx context.Context, key string) (redisEnvelope, error) {
	var env redisEnvelope
	b, err := s.rdb.Get(ctx, s.storeKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return env, ErrNotFound
		}
		return env, err
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return env, fmt.Errorf("decode cache envelope: %w", err)
	}
	return env, nil
}

// Exists reports whether an entry is stored under key.
func (s *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.rdb.Exists(ctx, s.storeKey(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AgeOf returns how long ago the entry under key was written.
func (s *RedisStore) AgeOf(ctx context.Context, key string, now time.Time) (time.Duration, error) {
	env, err := s.envelope(ctx, key)
	if err != nil {
		return 0, err
	}
	return now.Sub(env.WrittenAt), nil
}

// Read returns the blob stored under key.
func (s *RedisStore) Read(ctx context.Context, key string) ([]byte, error) {
	env, err := s.envelope(ctx, key)
	if err != nil {
		return nil, err
	}
	return env.Payload, nil
}

// Write replaces the entry under key wholesale. No TTL is set: staleness is the
// cache's decision, and a stale entry is simply superseded by the next write.
func (s *RedisStore) Write(ctx context.Context, key string, payload []byte, now time.Time) error {
	b, err := json.Marshal(redisEnvelope{WrittenAt: now, Payload: payload})
	if err != nil {
		return fmt.Errorf("encode cache envelope: %w", err)
	}
	return s.rdb.Set(ctx, s.storeKey(key), b, 0).Err()
}

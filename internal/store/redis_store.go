package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
)

// DefaultRedisKey is the hash that holds all items when no key is configured.
const DefaultRedisKey = "reqsign:store"

// RedisStore keeps items as fields of one Redis hash.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedisStore returns a RedisStore using hash key; an empty key means DefaultRedisKey.
func NewRedisStore(client redis.UniversalClient, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

// HasItem reports whether key is present.
func (s *RedisStore) HasItem(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.HExists(ctx, s.key, key).Result()
	if err != nil {
		return false, errors.Wrap(rserrors.Mark(err, rserrors.ErrStoreRead), "redis hexists")
	}
	return ok, nil
}

// GetItem returns the value stored under key.
func (s *RedisStore) GetItem(ctx context.Context, key string) (string, error) {
	v, err := s.client.HGet(ctx, s.key, key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("%w: %q", rserrors.ErrItemNotFound, key)
	}
	if err != nil {
		return "", errors.Wrap(rserrors.Mark(err, rserrors.ErrStoreRead), "redis hget")
	}
	return v, nil
}

// SetItem stores value under key.
func (s *RedisStore) SetItem(ctx context.Context, key, value string) error {
	if err := s.client.HSet(ctx, s.key, key, value).Err(); err != nil {
		return errors.Wrap(rserrors.Mark(err, rserrors.ErrStoreWrite), "redis hset")
	}
	return nil
}

// SetItems stores all pairs with a single HSET, which Redis applies atomically.
func (s *RedisStore) SetItems(ctx context.Context, pairs map[string]string) error {
	if len(pairs) == 0 {
		return nil
	}
	values := make([]any, 0, 2*len(pairs))
	for k, v := range pairs {
		values = append(values, k, v)
	}
	if err := s.client.HSet(ctx, s.key, values...).Err(); err != nil {
		return errors.Wrap(rserrors.Mark(err, rserrors.ErrStoreWrite), "redis hset")
	}
	return nil
}

// DeleteItem removes key.
func (s *RedisStore) DeleteItem(ctx context.Context, key string) error {
	if err := s.client.HDel(ctx, s.key, key).Err(); err != nil {
		return errors.Wrap(rserrors.Mark(err, rserrors.ErrStoreWrite), "redis hdel")
	}
	return nil
}

// Keys returns every field of the hash, sorted.
func (s *RedisStore) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.client.HKeys(ctx, s.key).Result()
	if err != nil {
		return nil, errors.Wrap(rserrors.Mark(err, rserrors.ErrStoreRead), "redis hkeys")
	}
	sort.Strings(keys)
	return keys, nil
}

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return errors.Wrap(s.client.Ping(ctx).Err(), "redis ping")
}

// Compile-time assertion that RedisStore implements domain.Store.
var _ domain.Store = (*RedisStore)(nil)

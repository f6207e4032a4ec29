package store_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
	"reqsign/internal/store"
)

func newRedisStore(t *testing.T) (*store.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return store.NewRedisStore(client, "test:store"), mr
}

func TestRedisStore_Contract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) domain.Store {
		s, _ := newRedisStore(t)
		return s
	})
}

func TestRedisStore_UsesOneHash(t *testing.T) {
	s, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetItems(ctx, map[string]string{"pubkey": "P", "privkey": "K"}))
	assert.Equal(t, "P", mr.HGet("test:store", "pubkey"))
	assert.Equal(t, "K", mr.HGet("test:store", "privkey"))
	require.NoError(t, s.Ping(ctx))
}

func TestRedisStore_SetItemsEmptyIsNoop(t *testing.T) {
	s, mr := newRedisStore(t)
	require.NoError(t, s.SetItems(context.Background(), nil))
	assert.False(t, mr.Exists("test:store"))
}

func TestRedisStore_ServerDown(t *testing.T) {
	s, mr := newRedisStore(t)
	mr.Close()
	ctx := context.Background()

	_, err := s.GetItem(ctx, "uid")
	require.ErrorIs(t, err, rserrors.ErrStoreRead)

	err = s.SetItem(ctx, "uid", "U1")
	require.ErrorIs(t, err, rserrors.ErrStoreWrite)
}

func TestNewRedisStore_DefaultKey(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = client.Close() }()

	s := store.NewRedisStore(client, "")
	require.NoError(t, s.SetItem(context.Background(), "a", "b"))
	assert.Equal(t, "b", mr.HGet(store.DefaultRedisKey, "a"))
}

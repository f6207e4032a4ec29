package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
	"reqsign/internal/store"
)

// runStoreContract exercises the domain.Store contract against a fresh store.
func runStoreContract(t *testing.T, newStore func(t *testing.T) domain.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("absent key", func(t *testing.T) {
		s := newStore(t)

		ok, err := s.HasItem(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = s.GetItem(ctx, "missing")
		require.ErrorIs(t, err, rserrors.ErrItemNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStore(t)

		require.NoError(t, s.SetItem(ctx, "uid", "U1"))
		ok, err := s.HasItem(ctx, "uid")
		require.NoError(t, err)
		assert.True(t, ok)

		v, err := s.GetItem(ctx, "uid")
		require.NoError(t, err)
		assert.Equal(t, "U1", v)

		require.NoError(t, s.SetItem(ctx, "uid", "U2"))
		v, err = s.GetItem(ctx, "uid")
		require.NoError(t, err)
		assert.Equal(t, "U2", v)
	})

	t.Run("empty value is present", func(t *testing.T) {
		s := newStore(t)

		require.NoError(t, s.SetItem(ctx, "blank", ""))
		ok, err := s.HasItem(ctx, "blank")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("set items", func(t *testing.T) {
		s := newStore(t)

		require.NoError(t, s.SetItems(ctx, map[string]string{
			domain.StoreKeyPublicKey:  "pub",
			domain.StoreKeyPrivateKey: "priv",
		}))
		for k, want := range map[string]string{"pubkey": "pub", "privkey": "priv"} {
			got, err := s.GetItem(ctx, k)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("keys sorted", func(t *testing.T) {
		s := newStore(t)
		l, ok := s.(store.Lister)
		require.True(t, ok, "%T does not list keys", s)

		keys, err := l.Keys(ctx)
		require.NoError(t, err)
		assert.Empty(t, keys)

		require.NoError(t, s.SetItems(ctx, map[string]string{"uid": "u", "pubkey": "p", "a": "1"}))
		keys, err = l.Keys(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "pubkey", "uid"}, keys)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)

		require.NoError(t, s.SetItem(ctx, "k", "v"))
		require.NoError(t, s.DeleteItem(ctx, "k"))
		require.NoError(t, s.DeleteItem(ctx, "k"))

		ok, err := s.HasItem(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
)

// newFastSealedStore lowers the scrypt cost so tests stay quick.
func newFastSealedStore(inner domain.Store, passphrase string) *SealedStore {
	s := NewSealedStore(inner, passphrase)
	s.n = 1 << 10
	return s
}

func TestSealedStore_SealsPrivateKeyOnly(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore(nil)
	s := newFastSealedStore(inner, "Correct-Horse-1!")

	require.NoError(t, s.SetItems(ctx, map[string]string{
		domain.StoreKeyPrivateKey: "00ff",
		domain.StoreKeyPublicKey:  "pub",
	}))

	raw, err := inner.GetItem(ctx, domain.StoreKeyPrivateKey)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(raw, "sealed:"))
	assert.NotContains(t, raw, "00ff")

	raw, err = inner.GetItem(ctx, domain.StoreKeyPublicKey)
	require.NoError(t, err)
	assert.Equal(t, "pub", raw)

	got, err := s.GetItem(ctx, domain.StoreKeyPrivateKey)
	require.NoError(t, err)
	assert.Equal(t, "00ff", got)
}

func TestSealedStore_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore(nil)

	require.NoError(t, newFastSealedStore(inner, "right").SetItem(ctx, domain.StoreKeyPrivateKey, "00ff"))

	_, err := newFastSealedStore(inner, "wrong").GetItem(ctx, domain.StoreKeyPrivateKey)
	require.ErrorIs(t, err, rserrors.ErrStoreRead)
}

func TestSealedStore_PlainLegacyValue(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore(map[string]string{domain.StoreKeyPrivateKey: "abcd"})

	got, err := newFastSealedStore(inner, "pass").GetItem(ctx, domain.StoreKeyPrivateKey)
	require.NoError(t, err)
	assert.Equal(t, "abcd", got)
}

func TestSealedStore_PassThrough(t *testing.T) {
	ctx := context.Background()
	s := newFastSealedStore(NewMemoryStore(nil), "pass")

	require.NoError(t, s.SetItem(ctx, "uid", "U1"))
	ok, err := s.HasItem(ctx, "uid")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.DeleteItem(ctx, "uid"))
	_, err = s.GetItem(ctx, "uid")
	require.ErrorIs(t, err, rserrors.ErrItemNotFound)
}

func TestSealedStore_Keys(t *testing.T) {
	ctx := context.Background()
	s := newFastSealedStore(NewMemoryStore(map[string]string{"uid": "u", "pubkey": "p"}), "Correct-Horse-1!")

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"pubkey", "uid"}, keys)

	// Embedding only the interface hides the inner Keys method.
	opaque := newFastSealedStore(struct{ domain.Store }{NewMemoryStore(nil)}, "Correct-Horse-1!")
	_, err = opaque.Keys(ctx)
	require.ErrorIs(t, err, rserrors.ErrStoreRead)
}

package keys_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqsign/internal/crypto"
	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
	"reqsign/internal/services/keys"
	"reqsign/internal/store"
)

// failingStore rejects every write.
type failingStore struct{ *store.MemoryStore }

func (failingStore) SetItem(context.Context, string, string) error {
	return fmt.Errorf("%w: disk full", rserrors.ErrStoreWrite)
}

func (failingStore) SetItems(context.Context, map[string]string) error {
	return fmt.Errorf("%w: disk full", rserrors.ErrStoreWrite)
}

func TestGenerate_StoreWriteFails(t *testing.T) {
	ctx := context.Background()
	s := failingStore{store.NewMemoryStore(map[string]string{
		domain.StoreKeyPublicKey:  "OLD",
		domain.StoreKeyPrivateKey: "OLDPRIV",
	})}

	pub, err := keys.New(s).Generate(ctx)
	require.ErrorIs(t, err, rserrors.ErrStoreWrite)
	assert.Empty(t, pub)

	for k, want := range map[string]string{
		domain.StoreKeyPublicKey:  "OLD",
		domain.StoreKeyPrivateKey: "OLDPRIV",
	} {
		got, err := s.GetItem(ctx, k)
		require.NoError(t, err)
		assert.Equal(t, want, got, k)
	}
}

func TestGenerate_PersistsPair(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore(nil)
	svc := keys.New(s)

	pubB64, err := svc.Generate(ctx)
	require.NoError(t, err)

	stored, err := s.GetItem(ctx, domain.StoreKeyPublicKey)
	require.NoError(t, err)
	assert.Equal(t, pubB64, stored)

	privHex, err := s.GetItem(ctx, domain.StoreKeyPrivateKey)
	require.NoError(t, err)
	assert.Len(t, privHex, 64)

	seed, err := crypto.DecodeSeedHex(privHex)
	require.NoError(t, err)
	pub := crypto.PublicFromSeed(seed)
	assert.Equal(t, pubB64, crypto.B64(pub.Slice()))
	assert.Len(t, pubB64, 44)
}

func TestGenerate_ReplacesPair(t *testing.T) {
	ctx := context.Background()
	svc := keys.New(store.NewMemoryStore(nil))

	first, err := svc.Generate(ctx)
	require.NoError(t, err)
	second, err := svc.Generate(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	cur, err := svc.PublicKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, cur)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	svc := keys.New(store.NewMemoryStore(nil))

	pubB64, err := svc.Generate(ctx)
	require.NoError(t, err)

	kp, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, pubB64, crypto.B64(kp.Public.Slice()))
}

func TestLoad_Missing(t *testing.T) {
	_, err := keys.New(store.NewMemoryStore(nil)).Load(context.Background())
	assert.ErrorIs(t, err, rserrors.ErrMissingKey)

	_, err = keys.New(store.NewMemoryStore(nil)).PublicKey(context.Background())
	assert.ErrorIs(t, err, rserrors.ErrMissingKey)
}

func TestLoad_Mismatch(t *testing.T) {
	ctx := context.Background()
	_, otherPub, err := crypto.GenerateEd25519()
	require.NoError(t, err)
	seed, _, err := crypto.GenerateEd25519()
	require.NoError(t, err)

	s := store.NewMemoryStore(map[string]string{
		domain.StoreKeyPrivateKey: crypto.Hex(seed.Slice()),
		domain.StoreKeyPublicKey:  crypto.B64(otherPub.Slice()),
	})
	_, err = keys.New(s).Load(ctx)
	assert.ErrorIs(t, err, rserrors.ErrKeyMismatch)
}

func TestLoad_PrivateOnly(t *testing.T) {
	ctx := context.Background()
	seed, pub, err := crypto.GenerateEd25519()
	require.NoError(t, err)

	s := store.NewMemoryStore(map[string]string{domain.StoreKeyPrivateKey: crypto.Hex(seed.Slice())})
	kp, err := keys.New(s).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, pub, kp.Public)
}

func TestLoad_BadHex(t *testing.T) {
	s := store.NewMemoryStore(map[string]string{domain.StoreKeyPrivateKey: "zz"})
	_, err := keys.New(s).Load(context.Background())
	assert.ErrorIs(t, err, rserrors.ErrInvalidEncoding)
}

func TestFingerprint(t *testing.T) {
	ctx := context.Background()
	svc := keys.New(store.NewMemoryStore(nil))
	_, err := svc.Generate(ctx)
	require.NoError(t, err)

	fp, err := svc.Fingerprint(ctx)
	require.NoError(t, err)
	assert.Len(t, fp.String(), 20)
}

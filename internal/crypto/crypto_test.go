package crypto_test

import (
	"crypto/ed25519"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqsign/internal/crypto"
	rserrors "reqsign/internal/errors"
)

func TestSignVerify_RoundTrip(t *testing.T) {
	messages := [][]byte{
		nil,
		[]byte(""),
		[]byte("1234567890XY"),
		{0xab, 0xbc, 0xcd, 0xde},
		[]byte("héllo wörld"),
	}

	for i := 0; i < 8; i++ {
		seed, pub, err := crypto.GenerateEd25519()
		require.NoError(t, err)

		for _, m := range messages {
			sig := crypto.SignEd25519(seed, m)
			assert.Len(t, sig, ed25519.SignatureSize)
			assert.True(t, crypto.VerifyEd25519(pub, m, sig), "round trip for %q", m)
		}
	}
}

func TestSign_Deterministic(t *testing.T) {
	seed, _, err := crypto.GenerateEd25519()
	require.NoError(t, err)

	msg := []byte("1234567890XY")
	assert.Equal(t, crypto.SignEd25519(seed, msg), crypto.SignEd25519(seed, msg))
}

func TestSign_MatchesStdlibForSeed(t *testing.T) {
	// RFC 8032 test vector 1.
	seedHex := "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	wantPub := "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	wantSig := "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e06522490155" +
		"5fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"

	seed, err := crypto.DecodeSeedHex(seedHex)
	require.NoError(t, err)

	pub := crypto.PublicFromSeed(seed)
	assert.Equal(t, wantPub, hex.EncodeToString(pub[:]))
	assert.Equal(t, wantSig, hex.EncodeToString(crypto.SignEd25519(seed, nil)))
}

func TestVerify_RejectsTampering(t *testing.T) {
	seed, pub, err := crypto.GenerateEd25519()
	require.NoError(t, err)
	_, otherPub, err := crypto.GenerateEd25519()
	require.NoError(t, err)

	sig := crypto.SignEd25519(seed, []byte("abc"))
	assert.False(t, crypto.VerifyEd25519(pub, []byte("abd"), sig))
	assert.False(t, crypto.VerifyEd25519(otherPub, []byte("abc"), sig))
}

func TestDecodeSeedHex(t *testing.T) {
	seed, pub, err := crypto.GenerateEd25519()
	require.NoError(t, err)

	t.Run("seed form", func(t *testing.T) {
		got, err := crypto.DecodeSeedHex(crypto.Hex(seed[:]))
		require.NoError(t, err)
		assert.Equal(t, seed, got)
	})

	t.Run("expanded form", func(t *testing.T) {
		got, err := crypto.DecodeSeedHex(crypto.Hex(append(seed[:], pub[:]...)))
		require.NoError(t, err)
		assert.Equal(t, seed, got)
	})

	t.Run("bad hex", func(t *testing.T) {
		_, err := crypto.DecodeSeedHex("zz")
		require.ErrorIs(t, err, rserrors.ErrInvalidEncoding)
	})

	t.Run("bad length", func(t *testing.T) {
		_, err := crypto.DecodeSeedHex("abcd")
		require.ErrorIs(t, err, rserrors.ErrInvalidEncoding)
	})
}

func TestDecodePublicB64(t *testing.T) {
	_, pub, err := crypto.GenerateEd25519()
	require.NoError(t, err)

	got, err := crypto.DecodePublicB64(crypto.B64(pub[:]))
	require.NoError(t, err)
	assert.Equal(t, pub, got)

	_, err = crypto.DecodePublicB64("AAAA")
	require.ErrorIs(t, err, rserrors.ErrInvalidEncoding)

	_, err = crypto.DecodePublicB64("not base64!")
	require.ErrorIs(t, err, rserrors.ErrInvalidEncoding)
}

func TestRandomUint64_Bounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v, err := crypto.RandomUint64(10, 13)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, uint64(10))
		assert.Less(t, v, uint64(13))
	}

	_, err := crypto.RandomUint64(5, 5)
	require.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	fp := crypto.Fingerprint([]byte("key"))
	assert.Len(t, fp, 20)
	assert.Equal(t, fp, crypto.Fingerprint([]byte("key")))
	assert.NotEqual(t, fp, crypto.Fingerprint([]byte("other")))
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	crypto.Wipe(b)
	assert.Equal(t, []byte{0, 0, 0}, b)
}

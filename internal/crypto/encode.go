package crypto

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// DecodeB64 decodes standard base64, with or without padding.
func DecodeB64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		b, err = base64.RawStdEncoding.DecodeString(s)
	}
	if err != nil {
		return nil, rserrors.Mark(err, rserrors.ErrInvalidEncoding)
	}
	return b, nil
}

// Hex returns the lowercase hex encoding of b.
func Hex(b []byte) string { return hex.EncodeToString(b) }

// DecodePublicB64 decodes a base64 Ed25519 public key.
func DecodePublicB64(s string) (pub domain.Ed25519Public, err error) {
	b, err := DecodeB64(s)
	if err != nil {
		return pub, err
	}
	if len(b) != ed25519.PublicKeySize {
		return pub, fmt.Errorf("%w: public key: want %d bytes, got %d",
			rserrors.ErrInvalidEncoding, ed25519.PublicKeySize, len(b))
	}
	copy(pub[:], b)
	return pub, nil
}

// DecodeSeedHex decodes a hex private key. Both the 32-byte seed and the
// 64-byte expanded form (seed followed by public key) are accepted.
func DecodeSeedHex(s string) (seed domain.Ed25519Seed, err error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return seed, rserrors.Mark(err, rserrors.ErrInvalidEncoding)
	}
	defer Wipe(b)
	switch len(b) {
	case ed25519.SeedSize, ed25519.PrivateKeySize:
		copy(seed[:], b[:ed25519.SeedSize])
		return seed, nil
	default:
		return seed, fmt.Errorf("%w: private key: want %d or %d bytes, got %d",
			rserrors.ErrInvalidEncoding, ed25519.SeedSize, ed25519.PrivateKeySize, len(b))
	}
}

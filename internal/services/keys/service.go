package keys

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"reqsign/internal/crypto"
	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
)

// Service manages the signing key pair using a backing store.
type Service struct {
	store domain.Store
}

// New returns a key service backed by the given store.
func New(s domain.Store) *Service { return &Service{store: s} }

// Generate creates a fresh Ed25519 key pair, replaces any stored pair, and
// returns the base64 public key. The private key is never returned or logged.
func (s *Service) Generate(ctx context.Context) (string, error) {
	seed, pub, err := crypto.GenerateEd25519()
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(seed[:])

	pubB64 := crypto.B64(pub.Slice())
	if err := s.store.SetItems(ctx, map[string]string{
		domain.StoreKeyPublicKey:  pubB64,
		domain.StoreKeyPrivateKey: crypto.Hex(seed.Slice()),
	}); err != nil {
		return "", err
	}

	zerolog.Ctx(ctx).Debug().
		Str("fingerprint", crypto.Fingerprint(pub.Slice())).
		Msg("generated signing key pair")
	return pubB64, nil
}

// PublicKey returns the stored base64 public key.
func (s *Service) PublicKey(ctx context.Context) (string, error) {
	v, err := s.store.GetItem(ctx, domain.StoreKeyPublicKey)
	if errors.Is(err, rserrors.ErrItemNotFound) {
		return "", fmt.Errorf("%w: no public key, run keygen first", rserrors.ErrMissingKey)
	}
	return v, err
}

// Load decodes the stored private seed and derives its public key.
// When a public key is also stored it must match the derived one.
func (s *Service) Load(ctx context.Context) (domain.KeyPair, error) {
	raw, err := s.store.GetItem(ctx, domain.StoreKeyPrivateKey)
	if errors.Is(err, rserrors.ErrItemNotFound) {
		return domain.KeyPair{}, rserrors.ErrMissingKey
	}
	if err != nil {
		return domain.KeyPair{}, err
	}
	seed, err := crypto.DecodeSeedHex(raw)
	if err != nil {
		return domain.KeyPair{}, err
	}
	kp := domain.KeyPair{Public: crypto.PublicFromSeed(seed), Private: seed}

	stored, err := s.store.GetItem(ctx, domain.StoreKeyPublicKey)
	switch {
	case errors.Is(err, rserrors.ErrItemNotFound):
		return kp, nil
	case err != nil:
		return domain.KeyPair{}, err
	}
	pub, err := crypto.DecodePublicB64(stored)
	if err != nil {
		return domain.KeyPair{}, err
	}
	if pub != kp.Public {
		crypto.Wipe(kp.Private[:])
		return domain.KeyPair{}, rserrors.ErrKeyMismatch
	}
	return kp, nil
}

// Fingerprint returns a short fingerprint of the stored public key.
func (s *Service) Fingerprint(ctx context.Context) (domain.Fingerprint, error) {
	v, err := s.PublicKey(ctx)
	if err != nil {
		return "", err
	}
	pub, err := crypto.DecodePublicB64(v)
	if err != nil {
		return "", err
	}
	return domain.Fingerprint(crypto.Fingerprint(pub.Slice())), nil
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)

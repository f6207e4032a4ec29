package idempotency

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"reqsign/internal/crypto"
	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
)

// Service manages the idempotency key using a backing store.
type Service struct {
	store domain.Store
	rand  func(lo, hi uint64) (uint64, error)
}

// New returns an idempotency service backed by the given store.
func New(s domain.Store) *Service {
	return &Service{store: s, rand: crypto.RandomUint64}
}

// Draw returns a fresh random key without storing it.
func (s *Service) Draw() (domain.IdempotencyKey, error) {
	n, err := s.rand(domain.IdempotencyKeyMin, domain.IdempotencyKeyMax)
	if err != nil {
		return 0, fmt.Errorf("drawing idempotency key: %w", err)
	}
	return domain.IdempotencyKey(n), nil
}

// Generate draws a fresh key, stores it, and returns it.
func (s *Service) Generate(ctx context.Context) (domain.IdempotencyKey, error) {
	k, err := s.Draw()
	if err != nil {
		return 0, err
	}
	if err := s.Save(ctx, k); err != nil {
		return 0, err
	}
	zerolog.Ctx(ctx).Debug().Msg("generated idempotency key")
	return k, nil
}

// Save stores k as the current key.
func (s *Service) Save(ctx context.Context, k domain.IdempotencyKey) error {
	return s.store.SetItem(ctx, domain.StoreKeyIdempotencyKey, k.String())
}

// Current returns the stored key. The stored text must be the canonical
// decimal form of an in-range key, so the signed digits are exactly the
// stored ones.
func (s *Service) Current(ctx context.Context) (domain.IdempotencyKey, error) {
	raw, err := s.store.GetItem(ctx, domain.StoreKeyIdempotencyKey)
	if errors.Is(err, rserrors.ErrItemNotFound) {
		return 0, rserrors.ErrMissingIdempotencyKey
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: stored idempotency key %q is not a number", rserrors.ErrStoreRead, raw)
	}
	k := domain.IdempotencyKey(n)
	if k.String() != raw || !k.Valid() {
		return 0, fmt.Errorf("%w: stored idempotency key %q is not a ten-digit key", rserrors.ErrStoreRead, raw)
	}
	return k, nil
}

// Compile-time assertion that Service implements domain.IdempotencyService.
var _ domain.IdempotencyService = (*Service)(nil)

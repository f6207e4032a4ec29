package store

import (
	"context"
	"fmt"

	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
)

// SealedStore encrypts the values of selected keys before they reach the
// wrapped store, and decrypts them on read. Other keys pass through.
//
// A sealed key that holds a plain (unsealed) value is returned as-is, so an
// existing store can be switched to sealing without a migration step; the
// next write seals it.
type SealedStore struct {
	inner      domain.Store
	passphrase string
	sealed     map[string]bool
	n, r, p    int
}

// NewSealedStore wraps inner. keys lists the keys to seal; when empty only the
// private key is sealed.
func NewSealedStore(inner domain.Store, passphrase string, keys ...string) *SealedStore {
	if len(keys) == 0 {
		keys = []string{domain.StoreKeyPrivateKey}
	}
	sealed := make(map[string]bool, len(keys))
	for _, k := range keys {
		sealed[k] = true
	}
	n, r, p := scryptParamsDefault()
	return &SealedStore{inner: inner, passphrase: passphrase, sealed: sealed, n: n, r: r, p: p}
}

// HasItem reports whether key is present.
func (s *SealedStore) HasItem(ctx context.Context, key string) (bool, error) {
	return s.inner.HasItem(ctx, key)
}

// GetItem returns the value under key, opening it when the key is sealed.
func (s *SealedStore) GetItem(ctx context.Context, key string) (string, error) {
	v, err := s.inner.GetItem(ctx, key)
	if err != nil {
		return "", err
	}
	if !s.sealed[key] || !isSealed(v) {
		return v, nil
	}
	pt, err := open(s.passphrase, v)
	if err != nil {
		return "", fmt.Errorf("%w: opening %q: %w", rserrors.ErrStoreRead, key, err)
	}
	return string(pt), nil
}

// SetItem stores value under key, sealing it when required.
func (s *SealedStore) SetItem(ctx context.Context, key, value string) error {
	return s.SetItems(ctx, map[string]string{key: value})
}

// SetItems seals what needs sealing, then writes all pairs in one call.
func (s *SealedStore) SetItems(ctx context.Context, pairs map[string]string) error {
	out := make(map[string]string, len(pairs))
	for k, v := range pairs {
		if !s.sealed[k] {
			out[k] = v
			continue
		}
		sv, err := seal(s.passphrase, []byte(v), s.n, s.r, s.p)
		if err != nil {
			return fmt.Errorf("%w: sealing %q: %w", rserrors.ErrStoreWrite, k, err)
		}
		out[k] = sv
	}
	return s.inner.SetItems(ctx, out)
}

// DeleteItem removes key.
func (s *SealedStore) DeleteItem(ctx context.Context, key string) error {
	return s.inner.DeleteItem(ctx, key)
}

// Keys lists the wrapped store's keys.
func (s *SealedStore) Keys(ctx context.Context) ([]string, error) {
	l, ok := s.inner.(Lister)
	if !ok {
		return nil, fmt.Errorf("%w: %T cannot list keys", rserrors.ErrStoreRead, s.inner)
	}
	return l.Keys(ctx)
}

// Compile-time assertion that SealedStore implements domain.Store.
var _ domain.Store = (*SealedStore)(nil)

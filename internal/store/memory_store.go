package store

import (
	"context"
	"fmt"
	"sync"

	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
)

// MemoryStore keeps items in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStore returns an empty MemoryStore, optionally seeded with items.
func NewMemoryStore(seed map[string]string) *MemoryStore {
	items := make(map[string]string, len(seed))
	for k, v := range seed {
		items[k] = v
	}
	return &MemoryStore{items: items}
}

// HasItem reports whether key is present.
func (s *MemoryStore) HasItem(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, rserrors.Mark(err, rserrors.ErrStoreRead)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[key]
	return ok, nil
}

// GetItem returns the value stored under key.
func (s *MemoryStore) GetItem(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", rserrors.Mark(err, rserrors.ErrStoreRead)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", rserrors.ErrItemNotFound, key)
	}
	return v, nil
}

// SetItem stores value under key.
func (s *MemoryStore) SetItem(ctx context.Context, key, value string) error {
	return s.SetItems(ctx, map[string]string{key: value})
}

// SetItems stores all pairs under one lock.
func (s *MemoryStore) SetItems(ctx context.Context, pairs map[string]string) error {
	if err := ctx.Err(); err != nil {
		return rserrors.Mark(err, rserrors.ErrStoreWrite)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range pairs {
		s.items[k] = v
	}
	return nil
}

// Keys returns every stored key, sorted.
func (s *MemoryStore) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, rserrors.Mark(err, rserrors.ErrStoreRead)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.items), nil
}

// DeleteItem removes key.
func (s *MemoryStore) DeleteItem(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return rserrors.Mark(err, rserrors.ErrStoreWrite)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// Compile-time assertion that MemoryStore implements domain.Store.
var _ domain.Store = (*MemoryStore)(nil)

package interfaces

import "context"

// Store is the persistent string key/value mapping reqsign keeps its state in.
//
// Operations are atomic per key. SetItems writes all pairs or none.
// GetItem returns errors.ErrItemNotFound for an absent key.
type Store interface {
	HasItem(ctx context.Context, key string) (bool, error)
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	SetItems(ctx context.Context, items map[string]string) error
	DeleteItem(ctx context.Context, key string) error
}

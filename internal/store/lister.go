package store

import (
	"context"
	"sort"
)

// Lister is implemented by stores that can enumerate their keys.
type Lister interface {
	Keys(ctx context.Context) ([]string, error)
}

func sortedKeys(items map[string]string) []string {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var (
	_ Lister = (*FileStore)(nil)
	_ Lister = (*MemoryStore)(nil)
	_ Lister = (*RedisStore)(nil)
	_ Lister = (*SealedStore)(nil)
)

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"reqsign/internal/domain"
	rserrors "reqsign/internal/errors"
	"reqsign/internal/flock"
)

const (
	storeFilename = "store.json"
	lockFilename  = "store.lock"

	filePerm = 0o600
	dirPerm  = 0o700

	// DefaultLockTimeout bounds how long a write waits for another process.
	DefaultLockTimeout = 5 * time.Second
	lockRetryInterval  = 25 * time.Millisecond
)

// FileStore persists items as a single JSON object in dir/store.json.
type FileStore struct {
	dir         string
	lockTimeout time.Duration
	mu          sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir, lockTimeout: DefaultLockTimeout}
}

// SetLockTimeout changes how long a write waits for the file lock. Non-positive
// values are ignored.
func (s *FileStore) SetLockTimeout(d time.Duration) {
	if d > 0 {
		s.lockTimeout = d
	}
}

// Path returns the location of the backing JSON document.
func (s *FileStore) Path() string { return filepath.Join(s.dir, storeFilename) }

// HasItem reports whether key is present.
func (s *FileStore) HasItem(ctx context.Context, key string) (bool, error) {
	items, err := s.snapshot(ctx)
	if err != nil {
		return false, err
	}
	_, ok := items[key]
	return ok, nil
}

// GetItem returns the value stored under key.
func (s *FileStore) GetItem(ctx context.Context, key string) (string, error) {
	items, err := s.snapshot(ctx)
	if err != nil {
		return "", err
	}
	v, ok := items[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", rserrors.ErrItemNotFound, key)
	}
	return v, nil
}

// SetItem stores value under key.
func (s *FileStore) SetItem(ctx context.Context, key, value string) error {
	return s.update(ctx, func(items map[string]string) {
		items[key] = value
	})
}

// SetItems stores all pairs in one file replacement.
func (s *FileStore) SetItems(ctx context.Context, pairs map[string]string) error {
	return s.update(ctx, func(items map[string]string) {
		for k, v := range pairs {
			items[k] = v
		}
	})
}

// DeleteItem removes key. Deleting an absent key is not an error.
func (s *FileStore) DeleteItem(ctx context.Context, key string) error {
	return s.update(ctx, func(items map[string]string) {
		delete(items, key)
	})
}

// Keys returns every stored key, sorted.
func (s *FileStore) Keys(ctx context.Context) ([]string, error) {
	items, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return sortedKeys(items), nil
}

func (s *FileStore) snapshot(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, rserrors.Mark(err, rserrors.ErrStoreRead)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return nil, rserrors.Mark(err, rserrors.ErrStoreRead)
	}
	return items, nil
}

// update runs a read-modify-write cycle under the process mutex and the file lock.
func (s *FileStore) update(ctx context.Context, mutate func(map[string]string)) error {
	if err := ctx.Err(); err != nil {
		return rserrors.Mark(err, rserrors.ErrStoreWrite)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return rserrors.Mark(err, rserrors.ErrStoreWrite)
	}
	lock, err := s.acquireLock(ctx)
	if err != nil {
		return rserrors.Mark(err, rserrors.ErrStoreWrite)
	}
	defer s.releaseLock(lock)

	items, err := s.load()
	if err != nil {
		return rserrors.Mark(err, rserrors.ErrStoreRead)
	}
	mutate(items)
	if err := writeJSON(s.Path(), items, filePerm); err != nil {
		return rserrors.Mark(err, rserrors.ErrStoreWrite)
	}
	return nil
}

func (s *FileStore) load() (map[string]string, error) {
	items := map[string]string{}
	if err := readJSON(s.Path(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *FileStore) acquireLock(ctx context.Context) (*os.File, error) {
	f, err := os.OpenFile(filepath.Join(s.dir, lockFilename), os.O_CREATE|os.O_RDWR, filePerm)
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}

	deadline := time.Now().Add(s.lockTimeout)
	for {
		if err := flock.Exclusive(f.Fd()); err == nil {
			return f, nil
		}
		if time.Now().After(deadline) {
			_ = f.Close()
			return nil, rserrors.ErrLockTimeout
		}
		select {
		case <-ctx.Done():
			_ = f.Close()
			return nil, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}
}

func (s *FileStore) releaseLock(f *os.File) {
	_ = flock.Unlock(f.Fd())
	_ = f.Close()
}

// Compile-time assertion that FileStore implements domain.Store.
var _ domain.Store = (*FileStore)(nil)

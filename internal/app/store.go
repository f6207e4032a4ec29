package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/redis/go-redis/v9"

	"reqsign/internal/config"
	"reqsign/internal/domain"
	"reqsign/internal/errors"
	"reqsign/internal/store"
)

// OpenStore builds the store selected by cfg. The closer releases backend
// connections and is never nil.
func OpenStore(ctx context.Context, home string, cfg config.StoreConfig) (domain.Store, io.Closer, error) {
	var (
		s      domain.Store
		closer io.Closer = nopCloser{}
	)

	switch cfg.Backend {
	case config.BackendFile, "":
		if err := os.MkdirAll(home, 0o700); err != nil {
			return nil, nil, errors.Mark(err, errors.ErrStoreWrite)
		}
		fs := store.NewFileStore(home)
		fs.SetLockTimeout(cfg.LockTimeout)
		s = fs
	case config.BackendMemory:
		s = store.NewMemoryStore(nil)
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rs := store.NewRedisStore(client, cfg.Redis.Key)
		if err := rs.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		s, closer = rs, client
	default:
		return nil, nil, fmt.Errorf("%w: unknown backend %q", errors.ErrConfigInvalidStore, cfg.Backend)
	}

	if cfg.Passphrase != "" {
		s = store.NewSealedStore(s, cfg.Passphrase, cfg.SealedKeys...)
	}
	return s, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

package config

import (
	"net"
	"strings"

	"github.com/rs/zerolog"

	"reqsign/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values and
// returns the first failure, wrapping one of the ErrConfig* sentinels.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}
	if err := validateStoreConfig(&cfg.Store); err != nil {
		return err
	}
	if err := validateSigningConfig(&cfg.Signing); err != nil {
		return err
	}
	if err := validateLogConfig(&cfg.Log); err != nil {
		return err
	}
	return validateVerifierConfig(&cfg.Verifier)
}

func validateStoreConfig(cfg *StoreConfig) error {
	switch cfg.Backend {
	case BackendFile, BackendMemory:
	case BackendRedis:
		if cfg.Redis.Addr == "" {
			return errors.Wrap(errors.ErrConfigInvalidStore, "store.redis.addr must not be empty")
		}
		if cfg.Redis.DB < 0 {
			return errors.Wrapf(errors.ErrConfigInvalidStore, "store.redis.db must not be negative, got %d", cfg.Redis.DB)
		}
	default:
		return errors.Wrapf(errors.ErrConfigInvalidStore,
			"store.backend must be one of file, memory, redis, got %q", cfg.Backend)
	}
	if cfg.LockTimeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidStore,
			"store.lock_timeout must be positive, got %s", cfg.LockTimeout)
	}
	return nil
}

func validateSigningConfig(cfg *SigningConfig) error {
	switch strings.ToLower(cfg.IdempotencyPolicy) {
	case "session", "per-request":
	default:
		return errors.Wrapf(errors.ErrConfigInvalidSigning,
			"signing.idempotency_policy must be session or per-request, got %q", cfg.IdempotencyPolicy)
	}
	if strings.TrimSpace(cfg.SignatureHeader) == "" {
		return errors.Wrap(errors.ErrConfigInvalidSigning, "signing.signature_header must not be empty")
	}
	if strings.TrimSpace(cfg.IdempotencyHeader) == "" {
		return errors.Wrap(errors.ErrConfigInvalidSigning, "signing.idempotency_header must not be empty")
	}
	if cfg.Timeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidSigning, "signing.timeout must be positive, got %s", cfg.Timeout)
	}
	return nil
}

func validateLogConfig(cfg *LogConfig) error {
	if cfg.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Level)); err != nil {
			return errors.Wrapf(errors.ErrConfigInvalidLog, "log.level %q is not a level", cfg.Level)
		}
	}
	if cfg.MaxSizeMB < 0 || cfg.MaxBackups < 0 || cfg.MaxAgeDays < 0 {
		return errors.Wrap(errors.ErrConfigInvalidLog, "log rotation values must not be negative")
	}
	return nil
}

func validateVerifierConfig(cfg *VerifierConfig) error {
	if _, _, err := net.SplitHostPort(cfg.Listen); err != nil {
		return errors.Wrapf(errors.ErrConfigInvalidVerifier,
			"verifier.listen must be host:port, got %q", cfg.Listen)
	}
	if cfg.ReadTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.ShutdownTimeout <= 0 {
		return errors.Wrap(errors.ErrConfigInvalidVerifier, "verifier timeouts must be positive")
	}
	if cfg.MaxBodyBytes <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidVerifier,
			"verifier.max_body_bytes must be positive, got %d", cfg.MaxBodyBytes)
	}
	return nil
}

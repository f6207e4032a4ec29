// Package config provides layered configuration for reqsign.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (REQSIGN_* prefix, "." replaced by "_")
//  3. The config file (--config, or <home>/config.yaml)
//  4. Built-in defaults
//
// This package may import internal/errors but MUST NOT import other internal
// packages, so every layer above it can depend on it.
package config

import "time"

// Config is the root configuration structure.
type Config struct {
	// Home is the state directory holding store.json and the default config file.
	Home string `yaml:"home" mapstructure:"home"`

	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
	Signing  SigningConfig  `yaml:"signing" mapstructure:"signing"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
	Verifier VerifierConfig `yaml:"verifier" mapstructure:"verifier"`
}

// Store backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// StoreConfig selects and configures the key-value store.
type StoreConfig struct {
	// Backend is one of "file", "memory" or "redis".
	Backend string `yaml:"backend" mapstructure:"backend"`

	// LockTimeout bounds how long the file store waits for its lock.
	LockTimeout time.Duration `yaml:"lock_timeout" mapstructure:"lock_timeout"`

	Redis RedisConfig `yaml:"redis" mapstructure:"redis"`

	// SealedKeys are encrypted at rest when Passphrase is set.
	SealedKeys []string `yaml:"sealed_keys" mapstructure:"sealed_keys"`

	// Passphrase is read from REQSIGN_STORE_PASSPHRASE or --passphrase only.
	Passphrase string `yaml:"-" mapstructure:"passphrase"`
}

// RedisConfig configures the redis store backend.
type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Password string `yaml:"-" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
	// Key is the hash holding all items.
	Key string `yaml:"key" mapstructure:"key"`
}

// SigningConfig holds defaults for signing and transport.
type SigningConfig struct {
	// SignatureHeader carries the base64 signature on outgoing requests.
	SignatureHeader string `yaml:"signature_header" mapstructure:"signature_header"`

	// IdempotencyHeader carries the idempotency key when one is signed.
	IdempotencyHeader string `yaml:"idempotency_header" mapstructure:"idempotency_header"`

	// IdempotencyPolicy is "session" or "per-request".
	IdempotencyPolicy string `yaml:"idempotency_policy" mapstructure:"idempotency_policy"`

	// IncludeIdempotencyKey is the default for sign and send.
	IncludeIdempotencyKey bool `yaml:"include_idempotency_key" mapstructure:"include_idempotency_key"`

	// Fields is the default comma-separated field list.
	Fields string `yaml:"fields" mapstructure:"fields"`

	// CaptureFields are copied from JSON responses into the store.
	CaptureFields []string `yaml:"capture_fields" mapstructure:"capture_fields"`

	// Timeout bounds one signed HTTP exchange.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`
	File       string `yaml:"file" mapstructure:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
}

// VerifierConfig configures the verification HTTP service.
type VerifierConfig struct {
	Listen          string        `yaml:"listen" mapstructure:"listen"`
	ReadTimeout     time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	// MaxBodyBytes caps verification request bodies.
	MaxBodyBytes int64 `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
}

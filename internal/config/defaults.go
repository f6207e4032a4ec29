package config

import "time"

// Default values shared by DefaultConfig and the viper defaults.
const (
	DefaultBackend           = BackendFile
	DefaultLockTimeout       = 5 * time.Second
	DefaultRedisAddr         = "localhost:6379"
	DefaultRedisKey          = "reqsign:store"
	DefaultSignatureHeader   = "X-Signature"
	DefaultIdempotencyHeader = "Idempotency-Key"
	DefaultIdempotencyPolicy = "session"
	DefaultSigningTimeout    = 30 * time.Second
	DefaultLogLevel          = "info"
	DefaultVerifierListen    = "127.0.0.1:8088"
	DefaultReadTimeout       = 10 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultShutdownTimeout   = 5 * time.Second
	DefaultMaxBodyBytes      = 1 << 20
)

// DefaultConfig returns a Config holding the built-in defaults. Home is left
// empty and resolved by ResolveHome.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:     DefaultBackend,
			LockTimeout: DefaultLockTimeout,
			Redis: RedisConfig{
				Addr: DefaultRedisAddr,
				Key:  DefaultRedisKey,
			},
			SealedKeys: []string{"privkey"},
		},
		Signing: SigningConfig{
			SignatureHeader:       DefaultSignatureHeader,
			IdempotencyHeader:     DefaultIdempotencyHeader,
			IdempotencyPolicy:     DefaultIdempotencyPolicy,
			IncludeIdempotencyKey: true,
			CaptureFields:         []string{"uid", "transactionKey"},
			Timeout:               DefaultSigningTimeout,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Verifier: VerifierConfig{
			Listen:          DefaultVerifierListen,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			MaxBodyBytes:    DefaultMaxBodyBytes,
		},
	}
}

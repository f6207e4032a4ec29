package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"reqsign/internal/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "REQSIGN"

// Options locates the config file.
type Options struct {
	// Home overrides the home directory.
	Home string
	// File is an explicit config file; it must exist when set.
	File string
}

// newViperInstance creates a viper with defaults and REQSIGN_ env binding.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults mirrors DefaultConfig. Every key must be registered here for
// AutomaticEnv to see it during Unmarshal.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("home", "")

	v.SetDefault("store.backend", d.Store.Backend)
	v.SetDefault("store.lock_timeout", d.Store.LockTimeout.String())
	v.SetDefault("store.redis.addr", d.Store.Redis.Addr)
	v.SetDefault("store.redis.password", "")
	v.SetDefault("store.redis.db", d.Store.Redis.DB)
	v.SetDefault("store.redis.key", d.Store.Redis.Key)
	v.SetDefault("store.sealed_keys", d.Store.SealedKeys)
	v.SetDefault("store.passphrase", "")

	v.SetDefault("signing.signature_header", d.Signing.SignatureHeader)
	v.SetDefault("signing.idempotency_header", d.Signing.IdempotencyHeader)
	v.SetDefault("signing.idempotency_policy", d.Signing.IdempotencyPolicy)
	v.SetDefault("signing.include_idempotency_key", d.Signing.IncludeIdempotencyKey)
	v.SetDefault("signing.fields", d.Signing.Fields)
	v.SetDefault("signing.capture_fields", d.Signing.CaptureFields)
	v.SetDefault("signing.timeout", d.Signing.Timeout.String())

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 0)
	v.SetDefault("log.max_backups", 0)
	v.SetDefault("log.max_age_days", 0)
	v.SetDefault("log.compress", false)

	v.SetDefault("verifier.listen", d.Verifier.Listen)
	v.SetDefault("verifier.read_timeout", d.Verifier.ReadTimeout.String())
	v.SetDefault("verifier.write_timeout", d.Verifier.WriteTimeout.String())
	v.SetDefault("verifier.shutdown_timeout", d.Verifier.ShutdownTimeout.String())
	v.SetDefault("verifier.max_body_bytes", d.Verifier.MaxBodyBytes)
}

func isConfigNotFoundError(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return stderrors.As(err, &notFound)
}

func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	)
}

// Load reads configuration from defaults, the config file and the environment.
// A missing default config file is not an error; a missing explicit one is.
func Load(ctx context.Context, opts Options) (*Config, error) {
	home, err := ResolveHome(opts.Home)
	if err != nil {
		return nil, err
	}

	v := newViperInstance()

	path := opts.File
	if path == "" {
		path = DefaultConfigPath(home)
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if cfg.Home == "" || opts.Home != "" {
		cfg.Home = home
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("file", path).
		Str("home", cfg.Home).
		Str("store.backend", cfg.Store.Backend).
		Str("signing.idempotency_policy", cfg.Signing.IdempotencyPolicy).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// LoadWithOverrides loads configuration and applies non-zero overrides from
// CLI flags. Boolean flags are applied by the caller with Flags().Changed.
func LoadWithOverrides(ctx context.Context, opts Options, overrides *Config) (*Config, error) {
	cfg, err := Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	if overrides != nil {
		applyOverrides(cfg, overrides)
	}
	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}
	return cfg, nil
}

func applyOverrides(cfg, o *Config) {
	if o.Store.Backend != "" {
		cfg.Store.Backend = o.Store.Backend
	}
	if o.Store.Passphrase != "" {
		cfg.Store.Passphrase = o.Store.Passphrase
	}
	if o.Store.Redis.Addr != "" {
		cfg.Store.Redis.Addr = o.Store.Redis.Addr
	}
	if o.Signing.IdempotencyPolicy != "" {
		cfg.Signing.IdempotencyPolicy = o.Signing.IdempotencyPolicy
	}
	if o.Signing.SignatureHeader != "" {
		cfg.Signing.SignatureHeader = o.Signing.SignatureHeader
	}
	if o.Log.Level != "" {
		cfg.Log.Level = o.Log.Level
	}
	if o.Log.File != "" {
		cfg.Log.File = o.Log.File
	}
	if o.Verifier.Listen != "" {
		cfg.Verifier.Listen = o.Verifier.Listen
	}
}

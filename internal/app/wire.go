package app

import (
	"context"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"reqsign/internal/config"
	"reqsign/internal/domain"
	"reqsign/internal/metrics"
	"reqsign/internal/operation"
	"reqsign/internal/services/capture"
	"reqsign/internal/services/idempotency"
	"reqsign/internal/services/keys"
	"reqsign/internal/services/signing"
	"reqsign/internal/transport"
)

// Options holds runtime wiring options that do not come from config.
type Options struct {
	// HTTP is used for signed requests; defaults to a client with the
	// configured signing timeout.
	HTTP *http.Client
	// Store replaces the configured backend, for tests.
	Store domain.Store
}

// Wire bundles the store, services and runner for the CLI.
type Wire struct {
	Config   *config.Config
	Store    domain.Store
	Policy   signing.Policy
	Keys     *keys.Service
	IK       *idempotency.Service
	Signer   *signing.Service
	Capture  *capture.Service
	Runner   *operation.Runner
	Registry *prometheus.Registry
	HTTP     *http.Client
	Logger   zerolog.Logger

	closer io.Closer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(ctx context.Context, cfg *config.Config, opts Options) (*Wire, error) {
	policy, err := signing.ParsePolicy(cfg.Signing.IdempotencyPolicy)
	if err != nil {
		return nil, err
	}

	s, closer := opts.Store, io.Closer(nopCloser{})
	if s == nil {
		s, closer, err = OpenStore(ctx, cfg.Home, cfg.Store)
		if err != nil {
			return nil, err
		}
	}

	httpClient := opts.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Signing.Timeout}
	}

	reg := prometheus.NewRegistry()
	return &Wire{
		Config:   cfg,
		Store:    s,
		Policy:   policy,
		Keys:     keys.New(s),
		IK:       idempotency.New(s),
		Signer:   signing.New(s, policy),
		Capture:  capture.New(s, cfg.Signing.CaptureFields...),
		Runner:   operation.NewRunner(metrics.New(reg)),
		Registry: reg,
		HTTP:     httpClient,
		Logger:   *zerolog.Ctx(ctx),
		closer:   closer,
	}, nil
}

// Env returns an operation environment over the wired store.
func (w *Wire) Env(requests domain.RequestSource, requestID string) operation.Env {
	logger := w.Logger
	return operation.Env{
		Store:         w.Store,
		Requests:      requests,
		RequestID:     requestID,
		Logger:        &logger,
		Policy:        w.Policy,
		CaptureFields: w.Config.Signing.CaptureFields,
		Signer:        w.Signer,
		Capture:       w.Capture,
	}
}

// Run executes op through the wired runner.
func (w *Wire) Run(ctx context.Context, op operation.Operation, env operation.Env) (string, error) {
	return w.Runner.Run(ctx, op, env)
}

// Transport returns an HTTP client that signs with the wired store.
func (w *Wire) Transport() *transport.Client {
	return transport.New(w.Store, transport.Options{
		HTTP:              w.HTTP,
		SignatureHeader:   w.Config.Signing.SignatureHeader,
		IdempotencyHeader: w.Config.Signing.IdempotencyHeader,
		Policy:            w.Policy,
		CaptureFields:     w.Config.Signing.CaptureFields,
	})
}

// Close releases backend connections.
func (w *Wire) Close() error { return w.closer.Close() }

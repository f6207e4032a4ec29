package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"reqsign/internal/metrics"
)

// Config configures a Server.
type Config struct {
	Listen          string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

// Server keeps the verifier's dependencies.
type Server struct {
	Echo     *echo.Echo
	Config   Config
	Registry *prometheus.Registry
	Metrics  *metrics.Recorder
	Logger   zerolog.Logger
}

// NewServer builds a Server with its routes registered.
func NewServer(cfg Config, logger zerolog.Logger) *Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	s := &Server{
		Echo:     e,
		Config:   cfg,
		Registry: reg,
		Metrics:  metrics.New(reg),
		Logger:   logger,
	}
	e.HTTPErrorHandler = s.handleError
	e.Use(requestLogger(logger), bodyLimit(cfg.MaxBodyBytes))

	PostVerifyRoute(s)
	GetHealthzRoute(s)
	GetMetricsRoute(s)
	return s
}

// Start listens on Config.Listen until Shutdown. It returns nil after a
// graceful shutdown.
func (s *Server) Start() error {
	s.Logger.Info().Str("listen", s.Config.Listen).Msg("verifier listening")
	if err := s.Echo.Start(s.Config.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to start echo server")
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Warn().Msg("shutting down verifier")
	if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to shutdown echo server")
	}
	return nil
}

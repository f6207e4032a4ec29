package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// GetHealthzRoute registers GET /healthz.
func GetHealthzRoute(s *Server) *echo.Route {
	return s.Echo.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

// GetMetricsRoute registers GET /metrics.
func GetMetricsRoute(s *Server) *echo.Route {
	h := promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{})
	return s.Echo.GET("/metrics", echo.WrapHandler(h))
}

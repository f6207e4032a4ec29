// Package metrics exposes Prometheus collectors for reqsign operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Recorder records operation outcomes.
type Recorder struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	verifies   *prometheus.CounterVec
}

// New registers the reqsign collectors on reg. A nil reg yields a Recorder
// whose collectors are not registered anywhere.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reqsign",
			Name:      "operations_total",
			Help:      "Operations run, by operation name and result",
		}, []string{"operation", "result"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "reqsign",
			Name:      "operation_duration_seconds",
			Help:      "Operation latency",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"operation"}),
		verifies: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reqsign",
			Name:      "verifications_total",
			Help:      "Signature verifications served, by outcome",
		}, []string{"outcome"}),
	}
}

// ObserveOperation records one run of operation.
func (r *Recorder) ObserveOperation(operation string, d time.Duration, err error) {
	if r == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	r.operations.WithLabelValues(operation, result).Inc()
	r.duration.WithLabelValues(operation).Observe(d.Seconds())
}

// ObserveVerification records a verification outcome: "valid", "invalid" or "rejected".
func (r *Recorder) ObserveVerification(outcome string) {
	if r == nil {
		return
	}
	r.verifies.WithLabelValues(outcome).Inc()
}

package operation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"reqsign/internal/metrics"
)

// Runner executes operations with a per-run ID, structured logging and metrics.
type Runner struct {
	metrics *metrics.Recorder
}

// NewRunner returns a Runner recording to m. m may be nil.
func NewRunner(m *metrics.Recorder) *Runner { return &Runner{metrics: m} }

// Run executes op against env. The context passed to op carries a logger
// tagged with the run ID and operation name.
func (r *Runner) Run(ctx context.Context, op Operation, env Env) (string, error) {
	base := env.Logger
	if base == nil {
		base = zerolog.Ctx(ctx)
	}
	runID := uuid.NewString()
	logger := base.With().
		Str("run_id", runID).
		Str("operation", op.Name()).
		Logger()
	ctx = logger.WithContext(ctx)

	start := time.Now()
	out, err := op.Run(ctx, env)
	elapsed := time.Since(start)
	r.metrics.ObserveOperation(op.Name(), elapsed, err)

	if err != nil {
		logger.Debug().Err(err).Dur("elapsed", elapsed).Str("describe", op.Describe()).Msg("operation failed")
		return "", err
	}
	logger.Debug().Dur("elapsed", elapsed).Str("describe", op.Describe()).Msg("operation completed")
	return out, nil
}

package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqsign/internal/metrics"
)

func TestRecorder_ObserveOperation(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.New(reg)

	r.ObserveOperation("sign", 10*time.Millisecond, nil)
	r.ObserveOperation("sign", 5*time.Millisecond, errors.New("boom"))
	r.ObserveOperation("genKeys", time.Millisecond, nil)

	n, err := testutil.GatherAndCount(reg, "reqsign_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = testutil.GatherAndCount(reg, "reqsign_operation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRecorder_ObserveVerification(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.New(reg)

	r.ObserveVerification("valid")
	r.ObserveVerification("valid")
	r.ObserveVerification("invalid")

	n, err := testutil.GatherAndCount(reg, "reqsign_verifications_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRecorder_Nil(t *testing.T) {
	var r *metrics.Recorder
	assert.NotPanics(t, func() {
		r.ObserveOperation("sign", time.Second, nil)
		r.ObserveVerification("valid")
	})
}

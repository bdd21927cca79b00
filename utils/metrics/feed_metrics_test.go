package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedMetrics_RecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewFeedMetrics(reg)

	m.RecordRequest("all_categories", nil)
	m.RecordRequest("all_categories", nil)
	m.RecordRequest("single_category", errors.New("boom"))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestsTotal.WithLabelValues("all_categories", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requestsTotal.WithLabelValues("single_category", "error")))
}

func TestFeedMetrics_RecordInjected(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewFeedMetrics(reg)

	m.RecordInjected("job_match", 4)
	m.RecordInjected("job_match", 0) // no-op
	m.RecordInjected("learning_match", 2)

	assert.Equal(t, float64(4), testutil.ToFloat64(m.injectedItems.WithLabelValues("job_match")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.injectedItems.WithLabelValues("learning_match")))
}

func TestFeedMetrics_ObserveAssembly(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewFeedMetrics(reg)

	m.ObserveAssembly("all_categories", 25*time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "skillbridge_feed_assembly_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestFeedMetrics_RecordEmptyContext(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewFeedMetrics(reg)

	m.RecordEmptyContext()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.emptyContexts))
}

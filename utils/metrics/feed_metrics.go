// Package metrics exposes prometheus collectors for the feed assembly
// pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FeedMetrics collects assembly counters and latency per ordering policy.
type FeedMetrics struct {
	requestsTotal   *prometheus.CounterVec
	injectedItems   *prometheus.CounterVec
	assemblySeconds *prometheus.HistogramVec
	emptyContexts   prometheus.Counter
}

// NewFeedMetrics registers the feed collectors on the given registerer.
// Pass prometheus.DefaultRegisterer in production wiring.
func NewFeedMetrics(reg prometheus.Registerer) *FeedMetrics {
	factory := promauto.With(reg)

	return &FeedMetrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skillbridge_feed_requests_total",
			Help: "Feed assembly requests by ordering policy and outcome.",
		}, []string{"policy", "outcome"}),
		injectedItems: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skillbridge_feed_injected_items_total",
			Help: "Synthetic recommendation items injected, by kind.",
		}, []string{"kind"}),
		assemblySeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "skillbridge_feed_assembly_duration_seconds",
			Help:    "Wall time of the feed assembly pipeline.",
			Buckets: prometheus.DefBuckets,
		}, []string{"policy"}),
		emptyContexts: factory.NewCounter(prometheus.CounterOpts{
			Name: "skillbridge_feed_empty_profile_contexts_total",
			Help: "Requests served with the empty-context sentinel (no personalization).",
		}),
	}
}

func (m *FeedMetrics) RecordRequest(policy string, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.requestsTotal.WithLabelValues(policy, outcome).Inc()
}

func (m *FeedMetrics) RecordInjected(kind string, count int) {
	if m == nil {
		return
	}
	if count > 0 {
		m.injectedItems.WithLabelValues(kind).Add(float64(count))
	}
}

func (m *FeedMetrics) ObserveAssembly(policy string, duration time.Duration) {
	if m == nil {
		return
	}
	m.assemblySeconds.WithLabelValues(policy).Observe(duration.Seconds())
}

func (m *FeedMetrics) RecordEmptyContext() {
	if m == nil {
		return
	}
	m.emptyContexts.Inc()
}

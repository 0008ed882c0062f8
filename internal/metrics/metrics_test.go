package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()
	m.MustRegister(prometheus.NewRegistry())

	m.CacheHit()
	m.CacheHit()
	m.CacheMiss()
	m.BatchOpFailed("sadd:cuisine")
	m.DedupConflict()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.WeatherCacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WeatherCacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BatchOpFailures.WithLabelValues("sadd:cuisine")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DedupConflicts))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.CacheHit()
		m.CacheMiss()
		m.UpstreamError()
		m.BatchOpFailed("x")
		m.DedupConflict()
		m.ReviewSubmitted()
	})
}

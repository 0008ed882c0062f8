package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "restaurant_directory"

// Metrics groups the counters of the data-access core. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	WeatherCacheLookups *prometheus.CounterVec
	WeatherUpstreamErrs prometheus.Counter
	BatchOpFailures     *prometheus.CounterVec
	DedupConflicts      prometheus.Counter
	ReviewsSubmitted    prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		WeatherCacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_cache_lookups_total",
			Help:      "Weather cache lookups by result (hit, miss).",
		}, []string{"result"}),
		WeatherUpstreamErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_upstream_errors_total",
			Help:      "Failed calls to the weather provider.",
		}),
		BatchOpFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_op_failures_total",
			Help:      "Failed sub-writes of best-effort batches by operation.",
		}, []string{"op"}),
		DedupConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dedup_conflicts_total",
			Help:      "Restaurant creations rejected by the dedup filter.",
		}),
		ReviewsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_submitted_total",
			Help:      "Reviews accepted.",
		}),
	}
}

func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		m.WeatherCacheLookups,
		m.WeatherUpstreamErrs,
		m.BatchOpFailures,
		m.DedupConflicts,
		m.ReviewsSubmitted,
	)
}

func (m *Metrics) CacheHit() {
	if m != nil {
		m.WeatherCacheLookups.WithLabelValues("hit").Inc()
	}
}

func (m *Metrics) CacheMiss() {
	if m != nil {
		m.WeatherCacheLookups.WithLabelValues("miss").Inc()
	}
}

func (m *Metrics) UpstreamError() {
	if m != nil {
		m.WeatherUpstreamErrs.Inc()
	}
}

func (m *Metrics) BatchOpFailed(op string) {
	if m != nil {
		m.BatchOpFailures.WithLabelValues(op).Inc()
	}
}

func (m *Metrics) DedupConflict() {
	if m != nil {
		m.DedupConflicts.Inc()
	}
}

func (m *Metrics) ReviewSubmitted() {
	if m != nil {
		m.ReviewsSubmitted.Inc()
	}
}

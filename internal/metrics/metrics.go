package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the service. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Authorization
	AuthzDecisionsTotal *prometheus.CounterVec

	// Query cache
	CacheHitsTotal          *prometheus.CounterVec
	CacheMissesTotal        *prometheus.CounterVec
	CacheInvalidationsTotal *prometheus.CounterVec
	CacheDiscardsTotal      *prometheus.CounterVec

	// Facade mutations
	MutationsTotal *prometheus.CounterVec
}

// New creates and registers all collectors on registry. A nil registry gets
// a fresh one.
func New(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &Metrics{
		registry: registry,
		AuthzDecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goodworks_authz_decisions_total",
				Help: "Authorization decisions by action, result and deny reason",
			},
			[]string{"action", "result", "reason"},
		),
		CacheHitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goodworks_cache_hits_total",
				Help: "Query cache hits by view",
			},
			[]string{"view"},
		),
		CacheMissesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goodworks_cache_misses_total",
				Help: "Query cache misses by view",
			},
			[]string{"view"},
		),
		CacheInvalidationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goodworks_cache_invalidations_total",
				Help: "Query cache invalidations by view prefix",
			},
			[]string{"view"},
		),
		CacheDiscardsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goodworks_cache_discarded_loads_total",
				Help: "Loads whose result was dropped because the view was invalidated while loading",
			},
			[]string{"view"},
		),
		MutationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goodworks_mutations_total",
				Help: "Facade mutations by operation and result",
			},
			[]string{"operation", "result"},
		),
	}

	registry.MustRegister(
		m.AuthzDecisionsTotal,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.CacheInvalidationsTotal,
		m.CacheDiscardsTotal,
		m.MutationsTotal,
	)

	return m
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RecordDecision(action string, allowed bool, reason string) {
	if m == nil {
		return
	}
	result := "deny"
	if allowed {
		result = "allow"
	}
	m.AuthzDecisionsTotal.WithLabelValues(action, result, reason).Inc()
}

func (m *Metrics) RecordCacheHit(view string) {
	if m == nil {
		return
	}
	m.CacheHitsTotal.WithLabelValues(view).Inc()
}

func (m *Metrics) RecordCacheMiss(view string) {
	if m == nil {
		return
	}
	m.CacheMissesTotal.WithLabelValues(view).Inc()
}

func (m *Metrics) RecordInvalidation(view string) {
	if m == nil {
		return
	}
	m.CacheInvalidationsTotal.WithLabelValues(view).Inc()
}

func (m *Metrics) RecordDiscard(view string) {
	if m == nil {
		return
	}
	m.CacheDiscardsTotal.WithLabelValues(view).Inc()
}

func (m *Metrics) RecordMutation(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.MutationsTotal.WithLabelValues(operation, result).Inc()
}

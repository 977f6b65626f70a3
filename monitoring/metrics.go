// Package monitoring collects harness activity counters. Each Metrics value
// owns a private prometheus registry so parallel test environments never
// collide on metric registration.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the harness activity metrics.
type Metrics struct {
	registry *prometheus.Registry

	// Registrations and discovery
	RegistrationsTotal *prometheus.CounterVec
	QueriesTotal       *prometheus.CounterVec

	// Binding lifecycle
	BindsTotal     prometheus.Counter
	BindErrors     *prometheus.CounterVec
	UnbindsTotal   prometheus.Counter
	UnbindErrors   *prometheus.CounterVec
	SessionsActive prometheus.Gauge
}

// NewMetrics creates a metrics collector on its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		RegistrationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "telecomtest_registrations_total",
				Help: "Total number of component registrations",
			},
			[]string{"action"},
		),
		QueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "telecomtest_queries_total",
				Help: "Total number of discovery queries",
			},
			[]string{"action"},
		),
		BindsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "telecomtest_binds_total",
				Help: "Total number of successful binds",
			},
		),
		BindErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "telecomtest_bind_errors_total",
				Help: "Total number of failed binds",
			},
			[]string{"reason"},
		),
		UnbindsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "telecomtest_unbinds_total",
				Help: "Total number of successful unbinds",
			},
		),
		UnbindErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "telecomtest_unbind_errors_total",
				Help: "Total number of failed unbinds",
			},
			[]string{"reason"},
		),
		SessionsActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "telecomtest_sessions_active",
				Help: "Number of live binding sessions",
			},
		),
	}
}

// Registry exposes the underlying registry so tests can Gather the values.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

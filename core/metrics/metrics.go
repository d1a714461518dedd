// Package metrics exposes Prometheus instrumentation for the directory service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "directory_events_total",
		Help: "Webhook events received, by event type and outcome",
	}, []string{"event_type", "outcome"})
	ActionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "directory_actions_total",
		Help: "Mutations applied to the knowledge store, by kind",
	}, []string{"kind"})
	ReconcileDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "directory_reconcile_duration_ms",
		Help:    "Reconciliation duration in milliseconds",
		Buckets: []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})
	AuditFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "directory_audit_failures_total",
		Help: "Reconciliation results the audit recorder failed to persist",
	})
)

func init() {
	prometheus.MustRegister(EventsTotal)
	prometheus.MustRegister(ActionsTotal)
	prometheus.MustRegister(ReconcileDurationMs)
	prometheus.MustRegister(AuditFailuresTotal)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler { return promhttp.Handler() }

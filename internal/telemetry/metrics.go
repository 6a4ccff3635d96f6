// Package telemetry exposes the Prometheus instrumentation served on
// /metrics.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skanos_http_requests_total",
		Help: "Total HTTP requests, labelled by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skanos_http_request_duration_ms",
		Help:    "HTTP request latency in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	}, []string{"route"})

	EventsCaptured = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skanos_events_captured_total",
		Help: "Total events written to the event store, labelled by type.",
	}, []string{"type"})

	PillarRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skanos_pillar_metric_requests_total",
		Help: "Total pillar metric computations, labelled by pillar.",
	}, []string{"pillar"})
)

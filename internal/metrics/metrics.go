// Package metrics exposes Prometheus instrumentation for the API server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Calculations counts financial calculations by trigger and status.
	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calc_calculations_total",
			Help: "Total number of financial calculations performed",
		},
		[]string{"source", "status"},
	)

	// BreakEvenReached counts projections by whether break-even was found
	// within the horizon.
	BreakEvenReached = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calc_projections_total",
			Help: "Total number of projections by break-even outcome",
		},
		[]string{"break_even"},
	)

	// StoreOperations counts repository operations by kind and status.
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calc_store_operations_total",
			Help: "Total number of project store operations",
		},
		[]string{"operation", "status"},
	)

	// RequestDuration observes HTTP request latency per route.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "calc_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)
)

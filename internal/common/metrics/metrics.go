package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TriageRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "triage_runs_total",
			Help: "Total number of triage runs executed",
		},
	)

	TicketsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triage_tickets_scored_total",
			Help: "Total number of tickets scored, by priority tier",
		},
		[]string{"priority"},
	)

	TriageRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "triage_run_duration_seconds",
			Help: "Duration of a full triage run in seconds",
		},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"method", "path"},
	)
)

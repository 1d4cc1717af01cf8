// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MenuRebuilds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "menu_rebuilds_total",
			Help: "Total number of navigation graph rebuilds",
		},
	)

	RecordFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_fetches_total",
			Help: "Total number of company record fetches by outcome",
		},
		[]string{"status"},
	)

	RecordFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "record_fetch_duration_seconds",
			Help: "Duration of company record fetches in seconds",
		},
	)

	DraftWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draft_writes_total",
			Help: "Total number of partner draft section writes",
		},
		[]string{"section"},
	)

	DraftSubmits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "draft_submits_total",
			Help: "Total number of partner draft submissions by outcome",
		},
		[]string{"status"},
	)

	GateRedirects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gate_redirects_total",
			Help: "Total number of route gate redirects by gate",
		},
		[]string{"gate"},
	)
)

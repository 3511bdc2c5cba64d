package orderevents

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventPublishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_published_total",
			Help: "Total number of order event publish attempts",
		},
		[]string{"topic", "outcome"},
	)

	EventPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_events_publish_duration_seconds",
			Help:    "Duration of order event publishing",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"topic", "outcome"},
	)
)

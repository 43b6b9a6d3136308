package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PeopleRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "people_requests_total",
			Help: "Total number of people API requests",
		},
		[]string{"method", "path"},
	)

	PeopleRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "people_requests_in_flight",
			Help: "Number of people API requests currently being processed",
		},
	)

	PeopleRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "people_request_duration_seconds",
			Help:    "Duration of people API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

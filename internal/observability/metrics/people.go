package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PeopleCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "people_created_total",
			Help: "Total number of people successfully created",
		},
	)

	PeopleCreateRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "people_create_rejected_total",
			Help: "Total number of rejected person creations by reason",
		},
		[]string{"reason"},
	)

	PeopleLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "people_lookups_total",
			Help: "Total number of person lookups by outcome",
		},
		[]string{"outcome"},
	)

	PeopleSearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "people_searches_total",
			Help: "Total number of people searches",
		},
	)

	PeopleSearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "people_search_results",
			Help:    "Number of people returned per search",
			Buckets: []float64{0, 1, 5, 10, 25, 50},
		},
	)

	PeopleCountRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "people_count_requests_total",
			Help: "Total number of people count requests",
		},
	)

	PeopleDroppedRowsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "people_dropped_rows_total",
			Help: "Total number of stored rows dropped for violating person invariants",
		},
	)
)

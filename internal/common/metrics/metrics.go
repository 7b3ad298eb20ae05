// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GeoLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geo_lookups_total",
			Help: "Total number of geo-reference lookups by scope and status",
		},
		[]string{"scope", "status"},
	)

	GeoLookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "geo_lookup_duration_seconds",
			Help: "Duration of geo-reference lookups in seconds",
		},
		[]string{"scope"},
	)

	HelperRegistrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helper_registrations_total",
			Help: "Total number of helper registration submissions by status",
		},
		[]string{"status"},
	)

	HelperSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helper_searches_total",
			Help: "Total number of helper searches by outcome",
		},
		[]string{"outcome"},
	)

	StaleResponsesDiscarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stale_responses_discarded_total",
			Help: "Responses dropped because a newer request superseded them",
		},
		[]string{"kind"},
	)
)

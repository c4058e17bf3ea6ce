package rates

import "github.com/prometheus/client_golang/prometheus"

var (
	// cacheLookups counts rate cache lookups by outcome ("hit" or "miss").
	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exchange_rate_cache_lookups_total",
			Help: "Total number of exchange rate cache lookups.",
		},
		[]string{"outcome"},
	)

	// upstreamCalls counts completed upstream fetches by outcome
	// ("success", "not_found", "error").
	upstreamCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exchange_rate_upstream_calls_total",
			Help: "Total number of upstream rate provider calls.",
		},
		[]string{"outcome"},
	)

	// breakerRejections counts requests rejected while the circuit is open,
	// i.e. without any network attempt.
	breakerRejections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "exchange_rate_breaker_rejections_total",
			Help: "Total number of requests rejected by the open circuit breaker.",
		},
	)
)

func init() {
	prometheus.MustRegister(cacheLookups, upstreamCalls, breakerRejections)
}

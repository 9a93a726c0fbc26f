// Package services – domain metrics
//
// Prometheus collectors for the gift-generation pipeline. HTTP-level traffic
// metrics live in the middleware package; these track pipeline outcomes that
// status codes alone cannot distinguish (a 429 may be either limiter).
package services

import "github.com/prometheus/client_golang/prometheus"

var (
	// giftGenerations counts pipeline outcomes. Outcome values:
	// ok, cache_hit, empty_prompt, too_long, not_allowed, rate_limited,
	// daily_limited.
	giftGenerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gift_generations_total",
			Help: "Total gift generation attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(giftGenerations)
}

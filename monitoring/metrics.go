package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ResponseTimeHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_time_seconds",
			Help:    "Histogram of response times",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ReferralCodeRetries counts referral code allocation collisions that
	// were resolved by regenerating the code.
	ReferralCodeRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "referral_code_allocation_retries_total",
			Help: "Referral code collisions resolved by regeneration",
		},
	)

	// ReferralCodeExhausted counts allocations that failed after the retry
	// bound. A nonzero rate suggests code-space exhaustion and should alert.
	ReferralCodeExhausted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "referral_code_allocation_exhausted_total",
			Help: "Referral code allocations abandoned after the retry bound",
		},
	)
)

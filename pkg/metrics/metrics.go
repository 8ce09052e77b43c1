package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	VitalsFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "vitalwatch", Name: "vitals_fetch_total", Help: "Number of vitals fetches by scope and outcome."},
		[]string{"scope", "outcome"},
	)
	AuthRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "vitalwatch", Name: "auth_rejected_total", Help: "Number of rejected requests by reason."},
		[]string{"reason"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "vitalwatch", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "vitalwatch", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(VitalsFetches)
	reg.MustRegister(AuthRejected)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}

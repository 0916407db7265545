package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casestudio_generation_requests_total",
			Help: "Total number of provider generations by route and outcome",
		},
		[]string{"route", "outcome", "kind"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "casestudio_generation_duration_seconds",
			Help:    "Duration of provider generations in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"route"},
	)

	GenerationsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "casestudio_generations_in_flight",
			Help: "Number of provider generations currently waiting on the provider",
		},
		[]string{"route"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casestudio_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the service's Prometheus collectors.
type Metrics struct {
	BookingsCreated prometheus.Counter
	PaymentsTotal   *prometheus.CounterVec
	CartOps         *prometheus.CounterVec
	AIRequests      *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trek_api_bookings_created_total",
			Help: "Total number of bookings created",
		}),

		PaymentsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "trek_api_payments_total",
			Help: "Total number of payment attempts by outcome",
		}, []string{"outcome"}),

		CartOps: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "trek_api_cart_operations_total",
			Help: "Total number of cart operations by type",
		}, []string{"op"}),

		AIRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "trek_api_ai_requests_total",
			Help: "Total number of AI gateway requests by endpoint and status",
		}, []string{"endpoint", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trek_api_request_duration_seconds",
			Help:    "Duration of handled HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "campus_parking"

var (
	once sync.Once

	bookingRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_requests_total",
			Help:      "Count of booking requests by outcome.",
		},
		[]string{"outcome"},
	)

	paymentsConfirmed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_confirmed_total",
			Help:      "Count of payments confirmed by the gateway callback.",
		},
	)

	revenueConfirmed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revenue_confirmed_total",
			Help:      "Sum of amounts moved to SUCCESS.",
		},
	)

	slotReleases = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_releases_total",
			Help:      "Count of occupied slots released by an administrator.",
		},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingRequests, paymentsConfirmed, revenueConfirmed, slotReleases, httpDuration)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Booking outcomes.
const (
	OutcomeInitiated        = "initiated"
	OutcomeNotFound         = "not_found"
	OutcomeAlreadyBooked    = "already_booked"
	OutcomeInvalid          = "invalid"
	OutcomeInitiationFailed = "initiation_failed"
	OutcomeError            = "error"
)

func IncBookingRequest(outcome string) {
	bookingRequests.WithLabelValues(outcome).Inc()
}

func ObservePaymentConfirmed(amount float64) {
	paymentsConfirmed.Inc()
	if amount > 0 {
		revenueConfirmed.Add(amount)
	}
}

func IncSlotRelease() {
	slotReleases.Inc()
}

func ObserveHTTPRequest(method, route, status string, seconds float64) {
	httpDuration.WithLabelValues(method, route, status).Observe(seconds)
}

// Package metrics holds the prometheus collectors for the booking API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Status label values for the booking counter.
const (
	StatusSuccess  = "success"
	StatusRejected = "rejected"
	StatusError    = "error"
)

// BookingsTotal counts schedule attempts by outcome.
// Use Register to attach it to a prometheus registry.
var BookingsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "booking_schedule_attempts_total",
		Help: "Total number of appointment schedule attempts",
	},
	[]string{"status", "reason"},
)

// AuthFailuresTotal counts rejected authentication attempts.
var AuthFailuresTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "booking_auth_failures_total",
		Help: "Total number of failed authentication attempts",
	},
)

// RequestDuration observes HTTP request latency per route and status class.
var RequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "booking_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"route", "method", "status"},
)

// Register attaches all collectors to reg. Call once at startup; panics on
// duplicate registration, following prometheus convention.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(BookingsTotal, AuthFailuresTotal, RequestDuration)
}

// RecordBooking increments the schedule-attempt counter. reason is the
// business-error kind for rejections, empty otherwise.
func RecordBooking(status, reason string) {
	BookingsTotal.WithLabelValues(status, reason).Inc()
}

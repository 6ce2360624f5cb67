package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all application metrics
type Metrics struct {
	// Booking metrics
	BookingsCreated   *prometheus.CounterVec
	StatusTransitions *prometheus.CounterVec

	// Storage metrics
	StorageOps     *prometheus.CounterVec
	StorageLatency *prometheus.HistogramVec
}

// New creates application metrics and registers them on reg. Tests pass a
// fresh registry so repeated construction never collides.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Total number of appointments booked",
		}, []string{"target"}),
		StatusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "Total number of appointment status updates",
		}, []string{"status"}),
		StorageOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_operations_total",
			Help:      "Total number of storage operations",
		}, []string{"operation", "status"}),
		StorageLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "storage_operation_duration_seconds",
			Help:      "Duration of storage operations",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
	}

	reg.MustRegister(m.BookingsCreated, m.StatusTransitions, m.StorageOps, m.StorageLatency)
	return m
}

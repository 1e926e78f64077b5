package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "homefix"

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Count of bookings accepted from customers.",
		},
	)

	bookingsAssigned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_assigned_total",
			Help:      "Count of technician assignments, reassignments included.",
		},
	)

	techniciansRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "technicians_registered_total",
			Help:      "Count of technicians registered by the admin.",
		},
	)

	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Automated WhatsApp sends by result.",
		},
		[]string{"result"},
	)
)

// Register registers metrics with the default registry (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingsCreated, bookingsAssigned, techniciansRegistered, notifications)
	})
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncBookingAssigned() {
	bookingsAssigned.Inc()
}

func IncTechnicianRegistered() {
	techniciansRegistered.Inc()
}

// ObserveNotification records one send attempt; skipped means the gateway
// is not configured.
func ObserveNotification(result string) {
	notifications.WithLabelValues(result).Inc()
}

const (
	NotificationSent    = "sent"
	NotificationFailed  = "failed"
	NotificationSkipped = "skipped"
)

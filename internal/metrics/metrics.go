package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the application counters exposed at /metrics.
type Metrics struct {
	Registrations    prometheus.Counter
	Logins           prometheus.Counter
	Bookings         prometheus.Counter
	BookingConflicts prometheus.Counter
	FavoriteToggles  *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "heritagehub_registrations_total",
			Help: "Total number of successful user registrations",
		}),
		Logins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "heritagehub_logins_total",
			Help: "Total number of successful logins",
		}),
		Bookings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "heritagehub_bookings_total",
			Help: "Total number of tour tickets booked",
		}),
		BookingConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "heritagehub_booking_conflicts_total",
			Help: "Total number of duplicate booking attempts rejected",
		}),
		FavoriteToggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "heritagehub_favorite_toggles_total",
				Help: "Total number of favorite toggles by outcome",
			},
			[]string{"status"},
		),
	}

	prometheus.MustRegister(m.Registrations)
	prometheus.MustRegister(m.Logins)
	prometheus.MustRegister(m.Bookings)
	prometheus.MustRegister(m.BookingConflicts)
	prometheus.MustRegister(m.FavoriteToggles)

	return m
}

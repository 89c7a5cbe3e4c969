// Package metrics exposes Prometheus counters for record mutations,
// notifications, logins and booking requests.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vogue360/studio/internal/notify"
)

// Login outcomes.
const (
	LoginSuccess   = "success"
	LoginFailure   = "failure"
	LoginAbandoned = "abandoned"
)

// Metrics holds the server's collectors.
type Metrics struct {
	registry *prometheus.Registry

	mutations       *prometheus.CounterVec
	notifications   *prometheus.CounterVec
	logins          *prometheus.CounterVec
	bookingRequests *prometheus.CounterVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vogue",
			Name:      "record_mutations_total",
			Help:      "Record store mutations by collection and operation.",
		}, []string{"collection", "op"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vogue",
			Name:      "notifications_total",
			Help:      "Admin notifications by severity.",
		}, []string{"severity"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vogue",
			Name:      "admin_logins_total",
			Help:      "Admin login attempts by outcome.",
		}, []string{"outcome"}),
		bookingRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vogue",
			Name:      "booking_requests_total",
			Help:      "Public booking form submissions by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(
		m.mutations,
		m.notifications,
		m.logins,
		m.bookingRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveMutation counts a record store mutation. It matches store.Observer.
func (m *Metrics) ObserveMutation(collection, op string) {
	m.mutations.WithLabelValues(collection, op).Inc()
}

// ObserveNotification counts an emitted notification.
func (m *Metrics) ObserveNotification(sev notify.Severity) {
	m.notifications.WithLabelValues(string(sev)).Inc()
}

// ObserveLogin counts a login attempt.
func (m *Metrics) ObserveLogin(outcome string) {
	m.logins.WithLabelValues(outcome).Inc()
}

// ObserveBookingRequest counts a public booking submission.
func (m *Metrics) ObserveBookingRequest(outcome string) {
	m.bookingRequests.WithLabelValues(outcome).Inc()
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

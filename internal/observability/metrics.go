package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/spec-kit/sla-dashboard/internal/domain"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	errors          *prometheus.CounterVec
	openTickets     *prometheus.GaugeVec
	reminders       *prometheus.CounterVec
	advisorCalls    *prometheus.CounterVec
}

// NewMetrics registers collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sla_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"path", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sla_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sla_http_errors_total",
			Help: "HTTP error responses by error code.",
		}, []string{"path", "method", "code"}),
		openTickets: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sla_open_tickets",
			Help: "Open tickets per due bucket at the last sweep.",
		}, []string{"bucket"}),
		reminders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sla_reminders_dispatched_total",
			Help: "Reminder events published by rule.",
		}, []string{"rule"}),
		advisorCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sla_advisor_calls_total",
			Help: "Summarization calls by outcome.",
		}, []string{"status"}),
	}
	m.registry.MustRegister(
		m.requests,
		m.requestDuration,
		m.errors,
		m.openTickets,
		m.reminders,
		m.advisorCalls,
		collectors.NewGoCollector(),
	)
	return m
}

// Registry exposes the registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(path, method, code).Inc()
}

// SetBucketCounts publishes the current open-ticket distribution.
func (m *Metrics) SetBucketCounts(counts map[domain.DueBucket]int) {
	if m == nil {
		return
	}
	for bucket, n := range counts {
		m.openTickets.WithLabelValues(string(bucket)).Set(float64(n))
	}
}

// RecordReminder counts one dispatched reminder.
func (m *Metrics) RecordReminder(rule string) {
	if m == nil {
		return
	}
	m.reminders.WithLabelValues(rule).Inc()
}

// RecordAdvisorCall counts one summarization call.
func (m *Metrics) RecordAdvisorCall(status domain.AdvisorRunStatus) {
	if m == nil {
		return
	}
	m.advisorCalls.WithLabelValues(string(status)).Inc()
}

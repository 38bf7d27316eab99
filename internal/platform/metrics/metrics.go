package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns the service's Prometheus collectors. Each instance has its own
// prometheus.Registry so tests can build as many as they like.
type Registry struct {
	ServiceName string

	reg             *prometheus.Registry
	requestCounter  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	statusCategory  *prometheus.CounterVec
	registrations   prometheus.Counter
	loginFailures   *prometheus.CounterVec
	logins          *prometheus.CounterVec
}

// New creates and registers all collectors for serviceName.
func New(serviceName string) *Registry {
	r := &Registry{
		ServiceName: serviceName,
		reg:         prometheus.NewRegistry(),
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path", "status"},
		),
		statusCategory: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_status_category_total",
				Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
			},
			[]string{"service", "category", "method", "path"},
		),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "workly_company_registrations_total",
			Help: "Companies registered successfully",
		}),
		loginFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workly_login_failures_total",
				Help: "Failed login attempts by step and reason",
			},
			[]string{"step", "reason"},
		),
		logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "workly_logins_total",
				Help: "Successful login steps",
			},
			[]string{"step"},
		),
	}
	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.requestCounter,
		r.requestDuration,
		r.statusCategory,
		r.registrations,
		r.loginFailures,
		r.logins,
	)
	return r
}

// Handler exposes the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// Gatherer gives tests access to the collected families.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// ObserveRequest records one finished HTTP request.
func (r *Registry) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	r.requestCounter.WithLabelValues(r.ServiceName, method, path, code).Inc()
	r.requestDuration.WithLabelValues(r.ServiceName, method, path, code).Observe(elapsed.Seconds())

	var category string
	switch {
	case status >= 200 && status < 300:
		category = "2xx"
	case status >= 400 && status < 500:
		category = "4xx"
	case status >= 500 && status < 600:
		category = "5xx"
	}
	if category != "" {
		r.statusCategory.WithLabelValues(r.ServiceName, category, method, path).Inc()
	}
}

// CompanyRegistered counts a completed registration.
func (r *Registry) CompanyRegistered() {
	r.registrations.Inc()
}

// LoginSucceeded counts a successful login step ("company" or "employee").
func (r *Registry) LoginSucceeded(step string) {
	r.logins.WithLabelValues(step).Inc()
}

// LoginFailed counts a rejected login step.
func (r *Registry) LoginFailed(step, reason string) {
	r.loginFailures.WithLabelValues(step, reason).Inc()
}

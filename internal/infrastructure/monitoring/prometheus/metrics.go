// Package prometheus exposes FilingDesk's operational metrics.
package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector the platform registers.  One instance is
// created at startup and shared by the HTTP layer, the domain services, and
// the worker.
type Metrics struct {
	registry *prometheus.Registry

	FilingsCreated     prometheus.Counter
	FieldEdits         prometheus.Counter
	FeeRecomputations  prometheus.Counter
	DocumentsGenerated *prometheus.CounterVec
	RenderDuration     *prometheus.HistogramVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// NewMetrics builds and registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry: registry,
		FilingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "filingdesk",
			Name:      "filings_created_total",
			Help:      "Number of application records created.",
		}),
		FieldEdits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "filingdesk",
			Name:      "field_edits_total",
			Help:      "Number of record field edits applied.",
		}),
		FeeRecomputations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "filingdesk",
			Name:      "fee_recomputations_total",
			Help:      "Number of fee breakdown computations served.",
		}),
		DocumentsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "filingdesk",
			Name:      "documents_generated_total",
			Help:      "Number of documents generated, by kind.",
		}, []string{"kind"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "filingdesk",
			Name:      "render_duration_seconds",
			Help:      "Document render latency, by kind.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "filingdesk",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method, path, and status.",
		}, []string{"method", "path", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "filingdesk",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method and path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}

	registry.MustRegister(
		m.FilingsCreated,
		m.FieldEdits,
		m.FeeRecomputations,
		m.DocumentsGenerated,
		m.RenderDuration,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

// Handler returns the /metrics scrape handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRender records one render with its latency.
func (m *Metrics) ObserveRender(kind string, d time.Duration) {
	m.DocumentsGenerated.WithLabelValues(kind).Inc()
	m.RenderDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, path string, status int, d time.Duration) {
	m.HTTPRequests.WithLabelValues(method, path, statusText(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

func statusText(status int) string {
	switch {
	case status < 200:
		return "1xx"
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

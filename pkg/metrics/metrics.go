package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
// Cada instancia usa su propio registry: varias apps (tests) no chocan al registrar.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests   *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
	DocumentsSaved *prometheus.CounterVec
	ItemsWritten   *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "facturacion_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "facturacion_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DocumentsSaved: f.NewCounterVec(prometheus.CounterOpts{
			Name: "facturacion_documents_saved_total",
			Help: "Quotations and invoices written together with their items",
		}, []string{"kind"}),
		ItemsWritten: f.NewCounterVec(prometheus.CounterOpts{
			Name: "facturacion_document_items_written_total",
			Help: "Line items written by document saves",
		}, []string{"kind"}),
	}
}

// ObserveRequest registra una petición HTTP terminada.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// DocumentSaved registra el guardado de un documento con n líneas.
func (m *Metrics) DocumentSaved(kind string, items int) {
	m.DocumentsSaved.WithLabelValues(kind).Inc()
	m.ItemsWritten.WithLabelValues(kind).Add(float64(items))
}

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry devuelve el registry propio (tests).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

package observability

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// HTTPMetrics holds the per-request instruments.
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	quotesCreated   prometheus.Counter
	exportsTotal    *prometheus.CounterVec
}

func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return registry
}

func NewHTTPMetrics(registry *prometheus.Registry) *HTTPMetrics {
	m := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "partnerportal_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "partnerportal_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		quotesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "partnerportal_quotes_created_total",
			Help: "Quotes persisted since process start.",
		}),
		exportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "partnerportal_exports_total",
			Help: "Document exports by format.",
		}, []string{"format"}),
	}
	registry.MustRegister(m.requestsTotal, m.requestDuration, m.quotesCreated, m.exportsTotal)
	return m
}

// GinMiddleware records request counts and latency per route.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		if isMetric(route) {
			return
		}

		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())
		m.requestsTotal.WithLabelValues(route, method, status).Inc()
		m.requestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}

func (m *HTTPMetrics) RecordQuoteCreated() {
	if m == nil {
		return
	}
	m.quotesCreated.Inc()
}

func (m *HTTPMetrics) RecordExport(format string) {
	if m == nil {
		return
	}
	m.exportsTotal.WithLabelValues(strings.TrimSpace(format)).Inc()
}

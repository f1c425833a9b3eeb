package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000},
		},
		[]string{"method", "endpoint"},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000},
		},
		[]string{"method", "endpoint"},
	)

	// Database metrics
	dbConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	dbConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	dbQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"operation", "status"},
	)

	dbQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	// Business metrics
	contactSubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact form submissions",
		},
	)

	projectInquiriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "project_inquiries_total",
			Help: "Total number of project inquiries",
		},
		[]string{"project_type"},
	)

	projectInquiryValueCents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "project_inquiry_value_cents_total",
			Help: "Sum of estimated costs of project inquiries, in cents",
		},
		[]string{"project_type"},
	)

	newsletterSignupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsletter_signups_total",
			Help: "Total number of newsletter signups",
		},
		[]string{"outcome"}, // subscribed, swallowed
	)

	projectSummariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "project_summaries_total",
			Help: "Total number of project summaries generated",
		},
		[]string{"project_type"},
	)

	statsFallbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stats_fallbacks_total",
			Help: "Total number of stats requests served from defaults",
		},
	)
)

// PrometheusMiddleware creates a middleware that records Prometheus metrics
func PrometheusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip metrics endpoint itself
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}
		endpoint := EndpointLabel(r.URL.Path)

		if r.ContentLength > 0 {
			httpRequestSize.WithLabelValues(r.Method, endpoint).Observe(float64(r.ContentLength))
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, endpoint, statusCode).Inc()
		httpRequestDuration.WithLabelValues(r.Method, endpoint, statusCode).Observe(duration)
		httpResponseSize.WithLabelValues(r.Method, endpoint).Observe(float64(wrapped.size))
	})
}

// EndpointLabel collapses record ids in a path so label cardinality stays bounded.
func EndpointLabel(path string) string {
	const contacts = "/api/admin/contacts/"
	if rest, ok := strings.CutPrefix(path, contacts); ok && rest != "" {
		if _, tail, found := strings.Cut(rest, "/"); found {
			return contacts + "{id}/" + tail
		}
		return contacts + "{id}"
	}
	return path
}

// responseWriter wraps http.ResponseWriter to capture status code and response size
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// RecordContactSubmission records a new contact form submission
func RecordContactSubmission() {
	contactSubmissionsTotal.Inc()
}

// RecordProjectInquiry records a new project inquiry and its quoted value
func RecordProjectInquiry(projectType string, estimatedCents int64) {
	projectInquiriesTotal.WithLabelValues(projectType).Inc()
	projectInquiryValueCents.WithLabelValues(projectType).Add(float64(estimatedCents))
}

// RecordNewsletterSignup records a signup; swallowed signups failed to persist
func RecordNewsletterSignup(persisted bool) {
	outcome := "swallowed"
	if persisted {
		outcome = "subscribed"
	}
	newsletterSignupsTotal.WithLabelValues(outcome).Inc()
}

// RecordProjectSummary records a generated project summary
func RecordProjectSummary(projectType string) {
	projectSummariesTotal.WithLabelValues(projectType).Inc()
}

// RecordStatsFallback records a stats response served from defaults
func RecordStatsFallback() {
	statsFallbacksTotal.Inc()
}

// RecordDBQuery records a database query
func RecordDBQuery(operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	dbQueriesTotal.WithLabelValues(operation, status).Inc()
	dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnections updates database connection metrics
func UpdateDBConnections(active, idle int) {
	dbConnectionsActive.Set(float64(active))
	dbConnectionsIdle.Set(float64(idle))
}


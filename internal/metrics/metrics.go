package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skygo_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skygo_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	conversionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skygo_conversions_total",
			Help: "Total coordinate conversions performed, by system pair.",
		},
		[]string{"source", "target"},
	)

	conversionErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skygo_conversion_errors_total",
			Help: "Conversion requests rejected, by error kind.",
		},
		[]string{"kind"},
	)

	batchSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skygo_batch_size",
			Help:    "Number of coordinate pairs per batch request.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
	prometheus.MustRegister(conversionsTotal)
	prometheus.MustRegister(conversionErrorsTotal)
	prometheus.MustRegister(batchSize)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveConversion records completed conversions for a system pair.
// The labels are system kinds (equatorial, galactic, ...), not full CRS
// descriptors, to keep cardinality bounded.
func ObserveConversion(source, target string, count int) {
	conversionsTotal.WithLabelValues(source, target).Add(float64(count))
}

// ObserveConversionError records a rejected conversion request.
func ObserveConversionError(kind string) {
	conversionErrorsTotal.WithLabelValues(kind).Inc()
}

// ObserveBatchSize records the size of a batch request.
func ObserveBatchSize(pairs int) {
	batchSize.Observe(float64(pairs))
}

// knownRoutes is the fixed set of path labels the middleware will emit.
var knownRoutes = map[string]bool{
	"/":                     true,
	"/healthz":              true,
	"/readyz":               true,
	"/metrics":              true,
	"/api/v1/convert":       true,
	"/api/v1/convert/batch": true,
	"/api/v1/separation":    true,
	"/api/v1/epoch":         true,
}

// normalizeRoute maps a request path to a bounded label set. Unknown
// paths (bots, scanners, typos) collapse to "other" so they cannot blow
// up metric cardinality.
func normalizeRoute(path string) string {
	if knownRoutes[path] {
		return path
	}
	return "other"
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration for each request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		code := strconv.Itoa(rw.statusCode)
		route := normalizeRoute(r.URL.Path)

		httpRequestsTotal.WithLabelValues(route, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(route, r.Method).Observe(duration)
	})
}

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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

	// Submission pipeline metrics
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helpdesk_submissions_total",
			Help: "Total number of helpdesk submissions by category and outcome",
		},
		[]string{"category", "result"},
	)

	emailDispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helpdesk_email_dispatch_total",
			Help: "Total number of helpdesk email dispatch attempts by outcome",
		},
		[]string{"result"},
	)
)

// RecordSubmission counts one submission outcome.
func RecordSubmission(category, result string) {
	submissionsTotal.WithLabelValues(category, result).Inc()
}

// RecordEmailDispatch counts one relay dispatch attempt.
func RecordEmailDispatch(result string) {
	emailDispatchTotal.WithLabelValues(result).Inc()
}

// Middleware records request counts and latency per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint, status).
			Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

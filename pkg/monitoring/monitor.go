package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// ReportsGenerated 按结果统计报表生成次数：ok / invalid_filter / upstream_error
	ReportsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_reports_generated_total",
			Help: "Total number of compliance reports generated",
		},
		[]string{"result"},
	)

	ReportAssignments = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pulse_report_assignments",
			Help:    "Number of in-scope assignments aggregated per report",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	ReportOverdueEmployees = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pulse_report_overdue_employees",
			Help:    "Overdue employee count per generated report",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	ExportsArchived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_report_exports_total",
			Help: "Total number of report exports",
		},
		[]string{"mode"},
	)
)

var once sync.Once

func Init() {
	once.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(ReportsGenerated)
		prometheus.MustRegister(ReportAssignments)
		prometheus.MustRegister(ReportOverdueEmployees)
		prometheus.MustRegister(ExportsArchived)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

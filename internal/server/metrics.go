package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eykd/mdvet-go/internal/domain"
)

const (
	namespace = "mdvet"
	subsystem = "server"
)

var (
	validationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "validations_total",
			Help:      "Total number of validation requests by outcome",
		},
		[]string{"outcome"},
	)

	issuesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "issues_total",
			Help:      "Total number of issues found by severity",
		},
		[]string{"severity"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
		},
		[]string{"path", "method", "status"},
	)
)

func recordValidation(outcome string) {
	validationsTotal.WithLabelValues(outcome).Inc()
}

func recordIssues(summary domain.Summary) {
	issuesTotal.WithLabelValues(string(domain.SeverityError)).Add(float64(summary.Errors))
	issuesTotal.WithLabelValues(string(domain.SeverityWarning)).Add(float64(summary.Warnings))
	issuesTotal.WithLabelValues(string(domain.SeverityInfo)).Add(float64(summary.Info))
}

func observeRequest(path, method, status string, elapsed time.Duration) {
	requestDuration.WithLabelValues(path, method, status).Observe(elapsed.Seconds())
}

func metricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

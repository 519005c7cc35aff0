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
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"method", "endpoint"},
	)

	// 业务指标
	UsersRegistered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quizmaster_users_registered_total",
		Help: "Users created through registration",
	})

	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizmaster_logins_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"},
	)

	QuizzesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quizmaster_quizzes_created_total",
		Help: "Quizzes accepted by the catalog",
	})

	QuizzesRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizmaster_quizzes_rejected_total",
			Help: "Quiz submissions rejected by validation",
		},
		[]string{"reason"},
	)

	QuizzesDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quizmaster_quizzes_deleted_total",
		Help: "Quizzes removed together with their questions",
	})

	ResultsSaved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quizmaster_results_saved_total",
			Help: "Quiz attempts appended to the result ledger",
		},
		[]string{"passed"},
	)

	FeedbackSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quizmaster_feedback_submitted_total",
		Help: "Feedback entries appended to the log",
	})
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			UsersRegistered,
			Logins,
			QuizzesCreated,
			QuizzesRejected,
			QuizzesDeleted,
			ResultsSaved,
			FeedbackSubmitted,
		)
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

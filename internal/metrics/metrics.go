package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QuizSessionsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dcn", Name: "quiz_sessions_created_total", Help: "Quiz links generated",
	})
	QuizSubmissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dcn", Name: "quiz_submissions_total", Help: "Quiz submissions by outcome",
	}, []string{"result"})
	CertificatesIssued = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dcn", Name: "certificates_issued_total", Help: "Newly issued certificates",
	}, []string{"tipe"})
	CodeRedemptions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dcn", Name: "code_redemptions_total", Help: "Code redeem claims by outcome",
	}, []string{"result"})
	PushDeliveries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dcn", Name: "push_deliveries_total", Help: "Push notification deliveries by outcome",
	}, []string{"result"})
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dcn", Name: "http_request_duration_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(
		QuizSessionsCreated,
		QuizSubmissions,
		CertificatesIssued,
		CodeRedemptions,
		PushDeliveries,
		HTTPRequestDuration,
	)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveHTTP(method, route string, status int, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)

	QuoteTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_status_transitions_total",
			Help: "Total number of applied quote status transitions",
		},
		[]string{"to"},
	)

	SweptCustomers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sweep_deleted_customers_total",
			Help: "Total number of stale quotation customers deleted by the sweep",
		},
	)

	NotificationEmails = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_emails_total",
			Help: "Total number of notification emails attempted",
		},
		[]string{"kind", "status"},
	)
)

func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncQuoteTransition(to string) {
	QuoteTransitions.WithLabelValues(to).Inc()
}

func AddSweptCustomers(n int64) {
	SweptCustomers.Add(float64(n))
}

func IncNotificationEmail(kind, status string) {
	NotificationEmails.WithLabelValues(kind, status).Inc()
}

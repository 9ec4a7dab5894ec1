// Package metrics provides Prometheus instrumentation for the order service.
//
// Metrics are package level collectors registered on DefaultRegistry, which
// is exposed on GET /metrics:
//
//	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "commandes"

var (
	// RequestDuration tracks HTTP latency by method, route and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// StatusChanges counts applied status transitions.
	StatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "status_changes_total",
			Help:      "Order status changes applied, by transition mode and target status.",
		},
		[]string{"mode", "status"},
	)

	// OrdersCreated counts placed orders.
	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Orders placed.",
	})

	// OrdersByStatus is refreshed by the statistics job.
	OrdersByStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "by_status",
			Help:      "Number of orders currently in each status.",
		},
		[]string{"status"},
	)

	// Notifications counts push notification attempts by kind and outcome.
	Notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "total",
			Help:      "Push notifications by kind (status_change, new_order) and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	// AggregatesWritten counts aggregates persisted by committed units of work.
	AggregatesWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "aggregates_written_total",
			Help:      "Aggregates written by committed transactions, by aggregate type.",
		},
		[]string{"aggregate"},
	)

	// NotificationSendDuration tracks gateway latency, skipped sends excluded.
	NotificationSendDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "notifications",
		Name:      "send_duration_seconds",
		Help:      "Duration of push gateway calls in seconds.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
	})
)

// DefaultRegistry holds every collector of the service.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		StatusChanges,
		OrdersCreated,
		OrdersByStatus,
		Notifications,
		AggregatesWritten,
		NotificationSendDuration,
	)
}

// Handler exposes DefaultRegistry in the Prometheus text and OpenMetrics formats.
func Handler() http.Handler {
	return promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// ObserveNotificationSend records a gateway call started at start:
//
//	defer metrics.ObserveNotificationSend(time.Now())
func ObserveNotificationSend(start time.Time) {
	NotificationSendDuration.Observe(time.Since(start).Seconds())
}

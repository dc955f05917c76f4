package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AlertsResolvedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "alerts_resolved_total",
		Help: "Total number of alerts resolved",
	})

	AlertsDismissedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "alerts_dismissed_total",
		Help: "Total number of alerts dismissed",
	})

	AlertTransitionsFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alert_transitions_failed_total",
		Help: "Total number of failed alert lifecycle transitions",
	}, []string{"reason"})

	AlertFetchesFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alert_fetches_failed_total",
		Help: "Total number of failed alert category reads",
	}, []string{"category"})

	LowStockParts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "low_stock_parts",
		Help: "Number of active parts at or below their minimum stock",
	})

	PendingSales = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pending_sales",
		Help: "Number of pending sale orders",
	})

	PendingPurchases = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pending_purchases",
		Help: "Number of pending purchase orders",
	})

	AlertNotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "alert_notifications_total",
		Help: "Total number of alert notifications processed by the worker",
	}, []string{"event_type"})

	EnrichmentLookupsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reorder_enrichment_lookups_failed_total",
		Help: "Total number of degraded per-part enrichment lookups",
	}, []string{"lookup"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)

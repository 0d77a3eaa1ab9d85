package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Kind label values.
const (
	KindTransaction = "transaction"
	KindEvent       = "event"
)

var (
	RecordsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fintrack_records_created_total",
		Help: "Total number of records created, labelled by kind.",
	}, []string{"kind"})

	RecordsUpdated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fintrack_records_updated_total",
		Help: "Total number of records updated, labelled by kind.",
	}, []string{"kind"})

	RecordsDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fintrack_records_deleted_total",
		Help: "Total number of records deleted, labelled by kind.",
	}, []string{"kind"})

	RecordsHeld = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fintrack_records_held",
		Help: "Number of records currently held in memory, labelled by kind.",
	}, []string{"kind"})

	RequestsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fintrack_requests_rejected_total",
		Help: "Requests refused by a store, labelled by kind and reason (validation, not_found).",
	}, []string{"kind", "reason"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fintrack_http_request_duration_seconds",
		Help:    "HTTP request latency, labelled by method, route pattern and status code.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	ConfigReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fintrack_config_reloads_total",
		Help: "Config reload attempts, labelled by result (ok, error).",
	}, []string{"result"})
)

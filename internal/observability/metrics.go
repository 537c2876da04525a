package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	FetchStatusOK       = "ok"
	FetchStatusNotFound = "not_found"
	FetchStatusError    = "error"
)

type Manager struct {
	CounterFetches   *prometheus.CounterVec
	HistFetchSeconds *prometheus.HistogramVec
	CounterRequests  *prometheus.CounterVec
	HistRequestSecs  *prometheus.HistogramVec
	// sections that were still loading when their request finished
	CounterDroppedSections *prometheus.CounterVec
}

func NewTestManager() *Manager {
	return NewManager("fitlog", "test", prometheus.NewRegistry())
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)
	return &Manager{
		CounterFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_fetches_total",
			Help:      "Store fetches by table and outcome",
		}, []string{"table", "status"}),
		HistFetchSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "store_fetch_duration_seconds",
			Help:      "Store fetch latency by table",
			Buckets:   prometheus.DefBuckets,
		}, []string{"table"}),
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code",
		}, []string{"method", "route", "status"}),
		HistRequestSecs: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		CounterDroppedSections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "dashboard_dropped_sections_total",
			Help:      "Dashboard sections that arrived after their request was done",
		}, []string{"section"}),
	}
}

func (m *Manager) ObserveFetch(table string, started time.Time, status string) {
	m.CounterFetches.WithLabelValues(table, status).Inc()
	m.HistFetchSeconds.WithLabelValues(table).Observe(time.Since(started).Seconds())
}

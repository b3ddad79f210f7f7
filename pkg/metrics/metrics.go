package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// База данных
	DBQueriesTotal      *prometheus.CounterVec
	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   *prometheus.GaugeVec
	DBInUseConnections  *prometheus.GaugeVec
	DBIdleConnections   *prometheus.GaugeVec
	DBWaitCount         *prometheus.GaugeVec
	DBTransactionsTotal *prometheus.CounterVec

	// Бизнес-метрики
	GuestsRegisteredTotal  *prometheus.CounterVec
	GuestsConflictsTotal   *prometheus.CounterVec
	OccupancyResolvesTotal *prometheus.CounterVec
}

// New регистрирует метрики в стандартном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		HTTPRequestsInFlight: f.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests being served",
			ConstLabels: constLabels,
		}, []string{"route"}),

		DBQueriesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBQueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBOpenConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{}),

		DBInUseConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{}),

		DBIdleConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{}),

		DBWaitCount: f.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{}),

		DBTransactionsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_transactions_total",
			Help:        "Total number of database transactions",
			ConstLabels: constLabels,
		}, []string{"status"}),

		GuestsRegisteredTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "frontdesk_guests_registered_total",
			Help:        "Total number of registered guest stays",
			ConstLabels: constLabels,
		}, []string{"accommodation_type"}),

		GuestsConflictsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "frontdesk_guest_conflicts_total",
			Help:        "Rejected writes by conflict reason",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		OccupancyResolvesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "frontdesk_occupancy_resolves_total",
			Help:        "Total number of daily occupancy resolutions",
			ConstLabels: constLabels,
		}, []string{"past_cutoff"}),
	}
}

// IncGuestRegistered увеличивает счетчик регистраций. Безопасен для nil
func (m *Metrics) IncGuestRegistered(accommodationType string) {
	if m == nil {
		return
	}
	m.GuestsRegisteredTotal.WithLabelValues(accommodationType).Inc()
}

// IncConflict увеличивает счетчик отклоненных записей. Безопасен для nil
func (m *Metrics) IncConflict(reason string) {
	if m == nil {
		return
	}
	m.GuestsConflictsTotal.WithLabelValues(reason).Inc()
}

// IncOccupancyResolve увеличивает счетчик расчетов занятости. Безопасен для nil
func (m *Metrics) IncOccupancyResolve(pastCutoff bool) {
	if m == nil {
		return
	}
	label := "false"
	if pastCutoff {
		label = "true"
	}
	m.OccupancyResolvesTotal.WithLabelValues(label).Inc()
}

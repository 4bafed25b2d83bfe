package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Шлюз данных (data API / PostgreSQL / sample)
	GatewayRequestsTotal   *prometheus.CounterVec
	GatewayRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	// Бизнес-метрики
	BookingsCreatedTotal *prometheus.CounterVec
	ReportLoadsTotal     *prometheus.CounterVec
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		GatewayRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "gateway_requests_total",
			Help:        "Total number of data gateway operations",
			ConstLabels: constLabels,
		}, []string{"operation", "resource", "outcome"}),
		GatewayRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "gateway_request_duration_seconds",
			Help:        "Data gateway operation duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation", "resource"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation", "status"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established database connections",
			ConstLabels: constLabels,
		}, []string{"database"}),
		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}, []string{"database"}),
		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{"database"}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"database"}),
		BookingsCreatedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of booking rows created",
			ConstLabels: constLabels,
		}, []string{"department"}),
		ReportLoadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "report_loads_total",
			Help:        "Total number of report loads",
			ConstLabels: constLabels,
		}, []string{"report", "outcome"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.GatewayRequestsTotal,
		m.GatewayRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.BookingsCreatedTotal,
		m.ReportLoadsTotal,
	)

	return m
}

// ObserveHTTP фиксирует HTTP-запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveGateway фиксирует операцию шлюза данных
func (m *Metrics) ObserveGateway(operation, resource string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.GatewayRequestsTotal.WithLabelValues(operation, resource, outcome).Inc()
	m.GatewayRequestDuration.WithLabelValues(operation, resource).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполнение SQL-запроса
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.DBQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// IncBookingsCreated увеличивает счётчик созданных строк бронирования
func (m *Metrics) IncBookingsCreated(department string, count int) {
	if m == nil {
		return
	}
	m.BookingsCreatedTotal.WithLabelValues(department).Add(float64(count))
}

// IncReportLoad фиксирует загрузку отчёта
func (m *Metrics) IncReportLoad(report string, ok bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !ok {
		outcome = "degraded"
	}
	m.ReportLoadsTotal.WithLabelValues(report, outcome).Inc()
}

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса. Коллекторы регистрируются в
// реестре по умолчанию и отдаются через promhttp.Handler().
type Metrics struct {
	service string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	crmRequestsTotal   *prometheus.CounterVec
	crmRequestDuration *prometheus.HistogramVec
}

// New регистрирует коллекторы и возвращает сборщик метрик.
// Вызывать можно только один раз за время жизни процесса.
func New(service string) *Metrics {
	return &Metrics{
		service: service,
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of processed HTTP requests.",
		}, []string{"service", "method", "path", "status"}),
		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		crmRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crm_requests_total",
			Help: "Total number of CRM REST calls.",
		}, []string{"service", "crm_method", "status"}),
		crmRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "crm_request_duration_seconds",
			Help:    "CRM REST call latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "crm_method"}),
	}
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос.
func (m *Metrics) ObserveHTTPRequest(service, method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(service, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(service, method, path).Observe(duration.Seconds())
}

// ObserveCRMRequest учитывает один REST-вызов к CRM.
func (m *Metrics) ObserveCRMRequest(method string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.crmRequestsTotal.WithLabelValues(m.service, method, status).Inc()
	m.crmRequestDuration.WithLabelValues(m.service, method).Observe(duration.Seconds())
}

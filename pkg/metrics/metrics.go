package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллекция prometheus-метрик сервиса
type Metrics struct {
	// HTTPRequestsTotal счетчик HTTP запросов по методу, пути и статусу
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration гистограмма длительности HTTP запросов
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInFlight количество запросов в обработке
	HTTPRequestsInFlight prometheus.Gauge

	// IntegrationRequestsTotal счетчик исходящих запросов к внешним сервисам
	IntegrationRequestsTotal *prometheus.CounterVec

	// ScheduleCacheLookupsTotal счетчик обращений к кэшу расписаний по исходу
	ScheduleCacheLookupsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name:        "http_requests_in_flight",
				Help:        "Number of HTTP requests currently being served",
				ConstLabels: constLabels,
			},
		),
		IntegrationRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "integration_requests_total",
				Help:        "Total number of outgoing requests to external services",
				ConstLabels: constLabels,
			},
			[]string{"target", "outcome"},
		),
		ScheduleCacheLookupsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "schedule_cache_requests_total",
				Help:        "Schedule cache lookups by outcome",
				ConstLabels: constLabels,
			},
			[]string{"outcome"},
		),
	}
}

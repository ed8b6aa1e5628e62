package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds the Prometheus series for the catalog backend.
// Construct exactly once per process; promauto registers globally.
type MetricsRegistry struct {
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	ListingsGenerated    prometheus.CounterVec
	CatalogFetchDuration prometheus.HistogramVec
	OrdersCreatedTotal   prometheus.Counter
}

func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pfjet_http_requests_total",
				Help: "Total HTTP requests by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pfjet_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pfjet_http_requests_in_flight",
				Help: "HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pfjet_cache_hits_total",
				Help: "Catalog cache hits by key",
			},
			[]string{"cache_key"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pfjet_cache_misses_total",
				Help: "Catalog cache misses by key",
			},
			[]string{"cache_key"},
		),

		ListingsGenerated: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pfjet_listings_generated_total",
				Help: "Synthesized flight listings by kind",
			},
			[]string{"kind"},
		),
		CatalogFetchDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pfjet_catalog_fetch_duration_seconds",
				Help:    "Route/aircraft/city fetch time including cache hits",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
			},
			[]string{"source"},
		),
		OrdersCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "pfjet_orders_created_total",
				Help: "Charter inquiries created",
			},
		),
	}
}

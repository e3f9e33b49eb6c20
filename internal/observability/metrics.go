package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "smartproperty"

// Metrics holds the Prometheus collectors for the scoring and pricing paths.
type Metrics struct {
	ClimateResolutions *prometheus.CounterVec // labels: source={zones,partial,synthetic}
	CatalogLoads       *prometheus.CounterVec // labels: indicator, result={loaded,absent}
	ClimateCache       *prometheus.CounterVec // labels: result={hit,miss,error}
	PricePredictions   *prometheus.CounterVec // labels: source={model,heuristic}
	PriceModelDuration prometheus.Histogram
	HTTPRequests       *prometheus.CounterVec   // labels: method, route, status
	HTTPDuration       *prometheus.HistogramVec // labels: method, route
}

func newCollectors() *Metrics {
	return &Metrics{
		ClimateResolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "climate_resolutions_total",
			Help:      "Climate score resolutions by score source.",
		}, []string{"source"}),
		CatalogLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_loads_total",
			Help:      "Zone layer load attempts by indicator and result.",
		}, []string{"indicator", "result"}),
		ClimateCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "climate_cache_total",
			Help:      "Climate score cache lookups by result.",
		}, []string{"result"}),
		PricePredictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_predictions_total",
			Help:      "Price predictions by estimator.",
		}, []string{"source"}),
		PriceModelDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "price_model_duration_seconds",
			Help:      "Price model request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newCollectors()

	prometheus.MustRegister(
		m.ClimateResolutions,
		m.CatalogLoads,
		m.ClimateCache,
		m.PricePredictions,
		m.PriceModelDuration,
		m.HTTPRequests,
		m.HTTPDuration,
	)

	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newCollectors()
}

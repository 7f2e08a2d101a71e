package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for forecast lookups.
type Metrics struct {
	FetchRequests *prometheus.CounterVec // labels: outcome={success,error}
	FetchDuration prometheus.Histogram
	CityLookups   *prometheus.CounterVec // labels: result={hit,miss,error}
	Cycles        *prometheus.CounterVec // labels: mode={hourly,daily}
}

func newCollectors() *Metrics {
	return &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_app",
			Name:      "fetch_requests_total",
			Help:      "Forecast API requests by outcome.",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_app",
			Name:      "fetch_duration_seconds",
			Help:      "Forecast API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		CityLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_app",
			Name:      "city_lookups_total",
			Help:      "City table lookups by result.",
		}, []string{"result"}),
		Cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_app",
			Name:      "cycles_total",
			Help:      "Completed interaction cycles by mode.",
		}, []string{"mode"}),
	}
}

// NewMetrics creates the collectors and registers them with the default registry.
func NewMetrics() *Metrics {
	m := newCollectors()
	prometheus.MustRegister(m.FetchRequests, m.FetchDuration, m.CityLookups, m.Cycles)
	return m
}

// NewMetricsForTesting creates unregistered collectors so tests can build
// as many as they need.
func NewMetricsForTesting() *Metrics {
	return newCollectors()
}

package api

import (
	"net/http"
	"time"

	"weather-now/datasource"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts searches by outcome
type Metrics struct {
	searches *prometheus.CounterVec
	duration prometheus.Histogram
	handler  http.Handler
}

// NewMetrics registers the search metrics on a fresh registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	return &Metrics{
		searches: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "weather_searches_total",
			Help: "Weather searches by result (ok or failure kind).",
		}, []string{"result"}),
		duration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "weather_search_duration_seconds",
			Help:    "Time spent geocoding and fetching the forecast.",
			Buckets: prometheus.ExponentialBuckets(0.1, 1.5, 8),
		}),
		handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	}
}

// Observe records one search
func (m *Metrics) Observe(err error, elapsed time.Duration) {
	result := "ok"
	if err != nil {
		result = datasource.KindOf(err).String()
	}
	m.searches.WithLabelValues(result).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the map pipeline.
type Metrics struct {
	FeedFetches       *prometheus.CounterVec // labels: outcome={success,error}
	FeedFetchDuration prometheus.Histogram
	FeaturesReceived  prometheus.Counter

	MarkersBuilt   prometheus.Counter
	MarkersByDepth *prometheus.CounterVec // labels: bucket={"-10 to 10",...,"90+"}

	MapReady    prometheus.Gauge
	PageRenders *prometheus.CounterVec // labels: route={page,api}
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FeedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_map",
			Name:      "feed_fetches_total",
			Help:      "Earthquake feed fetches by outcome.",
		}, []string{"outcome"}),
		FeedFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quake_map",
			Name:      "feed_fetch_duration_seconds",
			Help:      "Duration of the earthquake feed request and decode.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		FeaturesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_map",
			Name:      "features_received_total",
			Help:      "Total GeoJSON features decoded from the feed.",
		}),
		MarkersBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_map",
			Name:      "markers_built_total",
			Help:      "Total map markers built from earthquake records.",
		}),
		MarkersByDepth: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_map",
			Name:      "markers_by_depth_total",
			Help:      "Markers built per depth bucket.",
		}, []string{"bucket"}),
		MapReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quake_map",
			Name:      "map_ready",
			Help:      "1 once the map view has been composed, 0 before.",
		}),
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_map",
			Name:      "renders_total",
			Help:      "Map view responses served by route.",
		}, []string{"route"}),
	}

	prometheus.MustRegister(
		m.FeedFetches,
		m.FeedFetchDuration,
		m.FeaturesReceived,
		m.MarkersBuilt,
		m.MarkersByDepth,
		m.MapReady,
		m.PageRenders,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FeedFetches:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quake_map", Name: "feed_fetches_total"}, []string{"outcome"}),
		FeedFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "quake_map", Name: "feed_fetch_duration_seconds"}),
		FeaturesReceived:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quake_map", Name: "features_received_total"}),
		MarkersBuilt:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quake_map", Name: "markers_built_total"}),
		MarkersByDepth:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quake_map", Name: "markers_by_depth_total"}, []string{"bucket"}),
		MapReady:          prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "quake_map", Name: "map_ready"}),
		PageRenders:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quake_map", Name: "renders_total"}, []string{"route"}),
	}
}

package pipeline

import (
	"log/slog"

	"github.com/couchcryptid/quake-map-service/internal/domain"
	"github.com/couchcryptid/quake-map-service/internal/observability"
)

// QuakeTransformer implements Transformer using the domain marker builder and
// records per-depth-bucket counts.
type QuakeTransformer struct {
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewTransformer creates a QuakeTransformer.
func NewTransformer(metrics *observability.Metrics, logger *slog.Logger) *QuakeTransformer {
	return &QuakeTransformer{
		metrics: metrics,
		logger:  logger,
	}
}

// Transform builds one marker per record, in input order.
func (t *QuakeTransformer) Transform(records []domain.EarthquakeRecord) []domain.Marker {
	markers := domain.BuildMarkers(records)

	for _, rec := range records {
		t.metrics.MarkersByDepth.WithLabelValues(domain.DepthLabel(rec.Depth)).Inc()
	}
	t.metrics.MarkersBuilt.Add(float64(len(markers)))
	t.logger.Debug("markers built", "count", len(markers))

	return markers
}

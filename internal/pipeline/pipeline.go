package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/quake-map-service/internal/domain"
	"github.com/couchcryptid/quake-map-service/internal/observability"
)

// RecordLoader fetches the earthquake dataset from its source.
type RecordLoader interface {
	Load(ctx context.Context) (domain.Dataset, error)
}

// Transformer converts earthquake records into map markers.
type Transformer interface {
	Transform(records []domain.EarthquakeRecord) []domain.Marker
}

// Pipeline runs fetch → build markers → compose map once and publishes the
// resulting view.
type Pipeline struct {
	loader      RecordLoader
	transformer Transformer
	logger      *slog.Logger
	metrics     *observability.Metrics
	view        atomic.Pointer[domain.MapView]
}

// New creates a Pipeline with the given stages and observability.
func New(l RecordLoader, t Transformer, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		loader:      l,
		transformer: t,
		logger:      logger,
		metrics:     metrics,
	}
}

// CheckReadiness returns nil once the map view has been composed, or an error
// describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if p.view.Load() == nil {
		return errors.New("map view has not been composed yet")
	}
	return nil
}

// View returns the composed map view, or false before the pipeline has run.
func (p *Pipeline) View() (*domain.MapView, bool) {
	v := p.view.Load()
	return v, v != nil
}

// Run performs the single fetch and builds the map view. A failed fetch is
// returned as-is; there is no retry and the view is never published.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	p.logger.Info("pipeline started")

	ds, err := p.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load earthquakes: %w", err)
	}

	markers := p.transformer.Transform(ds.Records)
	view := domain.ComposeMap(domain.NewMarkerLayer(markers))
	view.FeedTitle = ds.Title

	p.view.Store(&view)
	p.metrics.MapReady.Set(1)

	p.logger.Info("map view composed",
		"records", len(ds.Records),
		"markers", view.MarkerCount(),
		"duration", time.Since(start),
	)
	return nil
}

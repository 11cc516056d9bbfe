package usgs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/quake-map-service/internal/domain"
	"github.com/couchcryptid/quake-map-service/internal/observability"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/gjson"
)

// Client loads earthquake records from a USGS GeoJSON summary feed.
// It implements pipeline.RecordLoader.
type Client struct {
	httpClient *http.Client
	feedURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a feed client. A zero timeout leaves requests unbounded.
func NewClient(feedURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		feedURL: feedURL,
		metrics: metrics,
		logger:  logger,
	}
}

// Load issues a single GET of the feed and decodes every feature into a record.
func (c *Client) Load(ctx context.Context) (domain.Dataset, error) {
	start := time.Now()
	ds, err := c.fetch(ctx)
	c.metrics.FeedFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.FeedFetches.WithLabelValues("error").Inc()
		return domain.Dataset{}, err
	}

	c.metrics.FeedFetches.WithLabelValues("success").Inc()
	c.metrics.FeaturesReceived.Add(float64(len(ds.Records)))
	c.logger.Info("earthquake feed loaded",
		"title", ds.Title,
		"features", len(ds.Records),
		"generated", ds.Generated,
		"duration", time.Since(start),
	)
	return ds, nil
}

func (c *Client) fetch(ctx context.Context) (domain.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/geo+json, application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Dataset{}, fmt.Errorf("usgs feed error: status %d: %s", resp.StatusCode, body)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("read feed: %w", err)
	}

	return Decode(data)
}

// Decode parses a GeoJSON FeatureCollection in the USGS summary format.
//
// orb.Point carries only [lon, lat], so depth (the third coordinate) and the
// properties are read per feature with gjson. Values are never rejected:
// numeric strings are coerced, anything else that is not a number becomes
// NaN, and a null feature yields an all-missing record.
func Decode(data []byte) (domain.Dataset, error) {
	if !gjson.ValidBytes(data) {
		return domain.Dataset{}, errors.New("decode feed: invalid JSON")
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("decode feed: %w", err)
	}

	raw := gjson.GetBytes(data, "features").Array()
	if len(raw) != len(fc.Features) {
		return domain.Dataset{}, fmt.Errorf("decode feed: %d raw features for %d decoded", len(raw), len(fc.Features))
	}

	records := make([]domain.EarthquakeRecord, len(fc.Features))
	for i, f := range fc.Features {
		records[i] = toRecord(f, raw[i])
	}

	meta := gjson.GetBytes(data, "metadata")
	ds := domain.Dataset{
		Title:   meta.Get("title").String(),
		Records: records,
	}
	if ms := meta.Get("generated"); ms.Exists() {
		ds.Generated = time.UnixMilli(ms.Int()).UTC()
	}
	return ds, nil
}

func toRecord(f *geojson.Feature, raw gjson.Result) domain.EarthquakeRecord {
	rec := domain.EarthquakeRecord{
		Position:  orb.Point{math.NaN(), math.NaN()},
		Depth:     coerceNumber(raw.Get("geometry.coordinates.2")),
		Magnitude: coerceNumber(raw.Get("properties.mag")),
		Place:     raw.Get("properties.place").String(),
	}
	if f == nil {
		return rec
	}

	if p, ok := f.Geometry.(orb.Point); ok {
		rec.Position = p
	}
	if f.ID != nil {
		rec.ID = fmt.Sprint(f.ID)
	}
	return rec
}

// coerceNumber reads a JSON number, or a string holding one ("4.5").
// Everything else, including null and absent values, is NaN.
func coerceNumber(r gjson.Result) float64 {
	switch r.Type {
	case gjson.Number:
		return r.Float()
	case gjson.String:
		v, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return math.NaN()
		}
		return v
	default:
		return math.NaN()
	}
}

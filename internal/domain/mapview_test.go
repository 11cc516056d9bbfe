package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLegend(t *testing.T) {
	legend := NewLegend()

	assert.Equal(t, "bottomright", legend.Position)
	assert.Equal(t, "Depth (km)", legend.Title)
	require.Len(t, legend.Rows, 6)

	wantLabels := []string{"-10 to 10", "10 to 30", "30 to 50", "50 to 70", "70 to 90", "90+"}
	for i, row := range legend.Rows {
		assert.Equal(t, Viridis[i], row.Color)
		assert.Equal(t, wantLabels[i], row.Label)
	}
}

func TestComposeMap(t *testing.T) {
	frozen := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	defer SetClock(nil)

	layer := NewMarkerLayer(BuildMarkers([]EarthquakeRecord{bayAreaRecord()}))
	view := ComposeMap(layer)

	assert.Equal(t, "map", view.Container)
	assert.Equal(t, LatLng{Lat: 0, Lon: 0}, view.Center)
	assert.Equal(t, 2, view.Zoom)
	assert.Contains(t, view.BaseLayer.URL, "tile.openstreetmap.org")
	assert.Contains(t, view.BaseLayer.Attribution, "OpenStreetMap")

	require.Len(t, view.Overlays, 1)
	assert.Equal(t, "Earthquakes", view.Overlays[0].Name)
	assert.True(t, view.Overlays[0].Visible)
	assert.Len(t, view.Overlays[0].Markers, 1)

	assert.False(t, view.Control.Collapsed)
	assert.Equal(t, []string{"Earthquakes"}, view.Control.Overlays)
	assert.Len(t, view.Legend.Rows, 6)
	assert.Equal(t, frozen, view.ComposedAt)
	assert.Equal(t, 1, view.MarkerCount())
}

func TestComposeMap_EmptyLayer(t *testing.T) {
	view := ComposeMap(NewMarkerLayer(BuildMarkers(nil)))

	assert.Equal(t, 0, view.MarkerCount())
	assert.Len(t, view.Legend.Rows, 6)
	assert.Equal(t, []string{"Earthquakes"}, view.Control.Overlays)
}

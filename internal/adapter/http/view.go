package http

import (
	"math"
	"time"

	"github.com/couchcryptid/quake-map-service/internal/domain"
)

// Wire form of domain.MapView consumed by static/quakemap.js. Coordinates are
// [lat, lon] pairs. Non-finite numbers encode as null since JSON has no NaN.

type mapJSON struct {
	Container  string        `json:"container"`
	Center     [2]float64    `json:"center"`
	Zoom       int           `json:"zoom"`
	BaseLayer  tileLayerJSON `json:"base_layer"`
	Overlays   []overlayJSON `json:"overlays"`
	Control    controlJSON   `json:"control"`
	Legend     legendJSON    `json:"legend"`
	FeedTitle  string        `json:"feed_title,omitempty"`
	ComposedAt time.Time     `json:"composed_at"`
}

type tileLayerJSON struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

type overlayJSON struct {
	Name    string       `json:"name"`
	Visible bool         `json:"visible"`
	Markers []markerJSON `json:"markers"`
}

type markerJSON struct {
	LatLng      [2]*float64 `json:"latlng"`
	Radius      *float64    `json:"radius"`
	FillColor   string      `json:"fill_color"`
	Popup       string      `json:"popup"`
	Color       string      `json:"color"`
	Weight      float64     `json:"weight"`
	Opacity     float64     `json:"opacity"`
	FillOpacity float64     `json:"fill_opacity"`
}

type controlJSON struct {
	Collapsed bool     `json:"collapsed"`
	Overlays  []string `json:"overlays"`
}

type legendJSON struct {
	Position string          `json:"position"`
	Title    string          `json:"title"`
	Rows     []legendRowJSON `json:"rows"`
}

type legendRowJSON struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

func newMapJSON(v *domain.MapView) mapJSON {
	out := mapJSON{
		Container: v.Container,
		Center:    [2]float64{v.Center.Lat, v.Center.Lon},
		Zoom:      v.Zoom,
		BaseLayer: tileLayerJSON{
			URL:         v.BaseLayer.URL,
			Attribution: v.BaseLayer.Attribution,
		},
		Overlays: make([]overlayJSON, len(v.Overlays)),
		Control: controlJSON{
			Collapsed: v.Control.Collapsed,
			Overlays:  v.Control.Overlays,
		},
		Legend: legendJSON{
			Position: v.Legend.Position,
			Title:    v.Legend.Title,
			Rows:     make([]legendRowJSON, len(v.Legend.Rows)),
		},
		FeedTitle:  v.FeedTitle,
		ComposedAt: v.ComposedAt,
	}

	for i, layer := range v.Overlays {
		markers := make([]markerJSON, len(layer.Markers))
		for j, m := range layer.Markers {
			markers[j] = newMarkerJSON(m)
		}
		out.Overlays[i] = overlayJSON{Name: layer.Name, Visible: layer.Visible, Markers: markers}
	}
	for i, row := range v.Legend.Rows {
		out.Legend.Rows[i] = legendRowJSON{Color: row.Color, Label: row.Label}
	}
	return out
}

func newMarkerJSON(m domain.Marker) markerJSON {
	return markerJSON{
		LatLng:      [2]*float64{finite(m.Lat), finite(m.Lon)},
		Radius:      finite(m.Radius),
		FillColor:   m.FillColor,
		Popup:       m.Popup,
		Color:       m.Style.Color,
		Weight:      m.Style.Weight,
		Opacity:     m.Style.Opacity,
		FillOpacity: m.Style.FillOpacity,
	}
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

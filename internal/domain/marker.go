package domain

import (
	"html"
	"strconv"
	"strings"
)

// RadiusScale converts magnitude to marker radius in pixels.
const RadiusScale = 3

// MarkerStyle holds the stroke and fill options shared by every marker.
type MarkerStyle struct {
	Color       string
	Weight      float64
	Opacity     float64
	FillOpacity float64
}

// DefaultMarkerStyle is a thin black outline with a mostly opaque fill.
var DefaultMarkerStyle = MarkerStyle{
	Color:       "#000",
	Weight:      1,
	Opacity:     1,
	FillOpacity: 0.7,
}

// Marker is the circle drawn for one earthquake.
type Marker struct {
	Lat       float64
	Lon       float64
	Radius    float64
	FillColor string
	Popup     string
	Style     MarkerStyle
}

// BuildMarker maps a record to its marker. Radius and color are pure functions
// of magnitude and depth; no value is clamped or checked.
func BuildMarker(rec EarthquakeRecord) Marker {
	return Marker{
		Lat:       rec.Lat(),
		Lon:       rec.Lon(),
		Radius:    rec.Magnitude * RadiusScale,
		FillColor: DepthColor(rec.Depth),
		Popup:     PopupText(rec),
		Style:     DefaultMarkerStyle,
	}
}

// BuildMarkers maps every record to a marker, preserving order.
func BuildMarkers(recs []EarthquakeRecord) []Marker {
	markers := make([]Marker, len(recs))
	for i, rec := range recs {
		markers[i] = BuildMarker(rec)
	}
	return markers
}

// PopupText renders the popup HTML for a record:
//
//	<h3>Location: {place}</h3><p>Magnitude: {mag}</p><p>Depth: {depth} km</p>
func PopupText(rec EarthquakeRecord) string {
	var b strings.Builder
	b.WriteString("<h3>Location: ")
	b.WriteString(html.EscapeString(rec.Place))
	b.WriteString("</h3><p>Magnitude: ")
	b.WriteString(formatNumber(rec.Magnitude))
	b.WriteString("</p><p>Depth: ")
	b.WriteString(formatNumber(rec.Depth))
	b.WriteString(" km</p>")
	return b.String()
}

// formatNumber prints the shortest representation, e.g. 4, 4.5, -1.2, NaN.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

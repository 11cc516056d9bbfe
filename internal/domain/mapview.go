package domain

import "time"

const (
	// MapContainerID is the id of the page element the map is rendered into.
	MapContainerID = "map"

	// DefaultZoom shows the whole world on a typical screen.
	DefaultZoom = 2

	// EarthquakeLayerName is the overlay label in the layer control.
	EarthquakeLayerName = "Earthquakes"

	osmTileURL         = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	osmTileAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
)

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat float64
	Lon float64
}

// TileLayer is a base map backed by an XYZ tile service.
type TileLayer struct {
	URL         string
	Attribution string
}

// MarkerLayer is a named group of markers toggled as one unit.
type MarkerLayer struct {
	Name    string
	Markers []Marker
	Visible bool
}

// NewMarkerLayer groups markers into the earthquake overlay.
func NewMarkerLayer(markers []Marker) MarkerLayer {
	return MarkerLayer{
		Name:    EarthquakeLayerName,
		Markers: markers,
		Visible: true,
	}
}

// LayerControl is the layer-selection control. Only overlays are listed;
// the single base layer is not user-selectable.
type LayerControl struct {
	Collapsed bool
	Overlays  []string
}

// MapView is the fully composed map.
type MapView struct {
	Container  string
	Center     LatLng
	Zoom       int
	BaseLayer  TileLayer
	Overlays   []MarkerLayer
	Control    LayerControl
	Legend     Legend
	FeedTitle  string
	ComposedAt time.Time
}

// MarkerCount returns the number of markers across all overlays.
func (v *MapView) MarkerCount() int {
	n := 0
	for _, l := range v.Overlays {
		n += len(l.Markers)
	}
	return n
}

// ComposeMap assembles the map view: an OpenStreetMap base layer, the marker
// layer, an always-expanded layer control and the depth legend.
func ComposeMap(layer MarkerLayer) MapView {
	return MapView{
		Container: MapContainerID,
		Center:    LatLng{Lat: 0, Lon: 0},
		Zoom:      DefaultZoom,
		BaseLayer: TileLayer{
			URL:         osmTileURL,
			Attribution: osmTileAttribution,
		},
		Overlays: []MarkerLayer{layer},
		Control: LayerControl{
			Collapsed: false,
			Overlays:  []string{layer.Name},
		},
		Legend:     NewLegend(),
		ComposedAt: clock.Now().UTC(),
	}
}

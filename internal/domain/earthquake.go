package domain

import (
	"time"

	"github.com/paulmach/orb"
)

// EarthquakeRecord is a single event decoded from the feed.
type EarthquakeRecord struct {
	ID        string
	Position  orb.Point // [lon, lat]
	Depth     float64   // km, may be negative
	Magnitude float64
	Place     string
}

// Lat returns the record latitude.
func (r EarthquakeRecord) Lat() float64 { return r.Position.Lat() }

// Lon returns the record longitude.
func (r EarthquakeRecord) Lon() float64 { return r.Position.Lon() }

// Dataset is the decoded feed document.
type Dataset struct {
	Title     string
	Generated time.Time // feed generation time reported by USGS
	Records   []EarthquakeRecord
}

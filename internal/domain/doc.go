// Package domain models USGS earthquake feed records and the map view built
// from them.
//
// # Data Source
//
// Records come from the USGS Earthquake Hazards Program GeoJSON summary feeds,
// https://earthquake.usgs.gov/earthquakes/feed/v1.0/geojson.php. The service
// reads the "all earthquakes, past week" feed once at startup.
//
// # Feed Conventions
//
// Geometry is a GeoJSON Point with three coordinates:
//
//	[longitude, latitude, depth]
//
// Depth is in kilometers below the surface. Shallow events near sea level or
// under mountains can carry small negative depths (e.g. -1.2).
//
// Magnitude ("properties.mag") is a real number on the network's preferred
// magnitude scale and may be null for events that have not been sized yet.
// "properties.place" is a human-readable location such as
// "10 km NE of Pahala, Hawaii".
//
// Missing or null numeric values are carried as NaN and a missing place as "".
// Nothing is filtered or corrected: every feature becomes exactly one marker.
//
// # Depth Color Scale
//
// Markers are colored by depth using six buckets of the viridis palette:
//
//	-10 < d <= 10   #440154
//	 10 < d <= 30   #3E4A89
//	 30 < d <= 50   #31688E
//	 50 < d <= 70   #35B779
//	 70 < d <= 90   #A6D96A
//	 otherwise      #FDE725
//
// The last bucket catches both very deep events (> 90 km) and depths at or
// below -10 km. Marker radius is magnitude × 3.
package domain

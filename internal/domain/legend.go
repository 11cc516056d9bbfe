package domain

// LegendRow pairs a swatch color with a depth range label.
type LegendRow struct {
	Color string
	Label string
}

// Legend is the static depth key drawn in a corner of the map.
type Legend struct {
	Position string
	Title    string
	Rows     []LegendRow
}

// NewLegend builds the depth legend. It is fixed and does not depend on
// which depths occur in the data.
func NewLegend() Legend {
	rows := make([]LegendRow, len(Viridis))
	for i, color := range Viridis {
		rows[i] = LegendRow{Color: color, Label: depthLabelAt(i)}
	}
	return Legend{
		Position: "bottomright",
		Title:    "Depth (km)",
		Rows:     rows,
	}
}

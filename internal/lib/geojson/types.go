package geojson

import (
	"encoding/json"

	"github.com/calaveras/maptap/internal/lib/geo"
)

// Geometry is a loosely-typed GeoJSON geometry object. Coordinates is
// kept raw because its nesting depth depends on Type and real-world
// payloads frequently do not match their declared type.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Region is a named, identified set of shapes parsed from one feature
// of a FeatureCollection.
type Region struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Shapes []geo.Polygon `json:"shapes"`
}

// featureCollection mirrors the GeoJSON FeatureCollection wrapper.
// Features are decoded loosely so one bad feature cannot abort the rest.
type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Properties json.RawMessage `json:"properties"`
	Geometry   *Geometry       `json:"geometry"`
}

// featureProperties holds the required feature metadata. Pointers
// distinguish missing fields from zero values.
type featureProperties struct {
	ID   *int    `json:"id"`
	Name *string `json:"name"`
}

package geo

// Coordinate represents a geographic position in decimal degrees.
// No normalization is performed; callers supply WGS84-style values.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Ring is an ordered sequence of coordinates forming a closed loop.
// The loop is implicitly closed: the last point does not need to repeat
// the first. A ring with fewer than 3 points is degenerate and behaves
// as an empty shape.
type Ring []Coordinate

// Polygon is one exterior ring plus zero or more interior rings (holes).
// Holes are subtracted from the exterior. No validation that holes lie
// inside the exterior is performed; containment simply reflects whatever
// geometry is given.
type Polygon struct {
	Exterior Ring   `json:"exterior"`
	Holes    []Ring `json:"holes,omitempty"`
}

// Bounds is an axis-aligned bounding box in geographic coordinates.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

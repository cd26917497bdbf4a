package geo

import (
	"errors"

	"github.com/twpayne/go-polyline"
)

// NewCoordinate creates a Coordinate from latitude and longitude values with validation
func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	c := Coordinate{Latitude: latitude, Longitude: longitude}
	if !isValidCoordinate(c) {
		return Coordinate{}, errors.New("invalid coordinates: latitude must be [-90, 90], longitude must be [-180, 180]")
	}
	return c, nil
}

// NewCoordinateUnsafe creates a Coordinate without validation (for performance-critical paths)
func NewCoordinateUnsafe(latitude, longitude float64) Coordinate {
	return Coordinate{Latitude: latitude, Longitude: longitude}
}

// IsDegenerate reports whether the ring has fewer than 3 points and
// therefore encloses no area.
func (r Ring) IsDegenerate() bool {
	return len(r) < 3
}

// Contains reports whether the point lies inside the ring using the
// even-odd ray casting rule. A degenerate ring contains nothing. Points
// exactly on a segment or vertex may report either result.
func (r Ring) Contains(c Coordinate) bool {
	if r.IsDegenerate() {
		return false
	}

	// Cast a ray in the +longitude direction and count segment crossings,
	// treating the last->first segment as closing the ring.
	a := r[len(r)-1]
	inside := false
	for _, b := range r {
		if rayIntersectsSegment(c, a, b) {
			inside = !inside
		}
		a = b
	}
	return inside
}

// rayIntersectsSegment tests the crossing of a horizontal ray from p
// against segment a-b, per the classic PNPoly formulation.
func rayIntersectsSegment(p, a, b Coordinate) bool {
	return (a.Latitude > p.Latitude) != (b.Latitude > p.Latitude) &&
		p.Longitude < (b.Longitude-a.Longitude)*(p.Latitude-a.Latitude)/(b.Latitude-a.Latitude)+a.Longitude
}

// Contains reports whether the point lies inside the polygon, honoring
// holes: a point inside the exterior and inside a hole is not contained.
// Even-odd semantics apply across all rings, so a point inside nested
// geometry toggles with each enclosing ring.
func (p Polygon) Contains(c Coordinate) bool {
	inside := p.Exterior.Contains(c)
	for _, hole := range p.Holes {
		if hole.Contains(c) {
			inside = !inside
		}
	}
	return inside
}

// IsEmpty reports whether the polygon has a degenerate exterior, meaning
// it encloses no area and will never contain a point.
func (p Polygon) IsEmpty() bool {
	return p.Exterior.IsDegenerate()
}

// Bounds returns the bounding box of the polygon's exterior ring. The
// second return is false for an empty polygon.
func (p Polygon) Bounds() (Bounds, bool) {
	if p.IsEmpty() {
		return Bounds{}, false
	}

	b := Bounds{
		MinLat: p.Exterior[0].Latitude,
		MaxLat: p.Exterior[0].Latitude,
		MinLng: p.Exterior[0].Longitude,
		MaxLng: p.Exterior[0].Longitude,
	}
	for _, c := range p.Exterior[1:] {
		if c.Latitude < b.MinLat {
			b.MinLat = c.Latitude
		}
		if c.Latitude > b.MaxLat {
			b.MaxLat = c.Latitude
		}
		if c.Longitude < b.MinLng {
			b.MinLng = c.Longitude
		}
		if c.Longitude > b.MaxLng {
			b.MaxLng = c.Longitude
		}
	}
	return b, true
}

// Union returns the smallest bounds covering both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	u := b
	if other.MinLat < u.MinLat {
		u.MinLat = other.MinLat
	}
	if other.MinLng < u.MinLng {
		u.MinLng = other.MinLng
	}
	if other.MaxLat > u.MaxLat {
		u.MaxLat = other.MaxLat
	}
	if other.MaxLng > u.MaxLng {
		u.MaxLng = other.MaxLng
	}
	return u
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Coordinate {
	return Coordinate{
		Latitude:  (b.MinLat + b.MaxLat) / 2,
		Longitude: (b.MinLng + b.MaxLng) / 2,
	}
}

// Expand grows the bounds by margin degrees on all four sides.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinLat: b.MinLat - margin,
		MinLng: b.MinLng - margin,
		MaxLat: b.MaxLat + margin,
		MaxLng: b.MaxLng + margin,
	}
}

// Contains reports whether the coordinate lies within the bounds.
func (b Bounds) Contains(c Coordinate) bool {
	return c.Latitude >= b.MinLat && c.Latitude <= b.MaxLat &&
		c.Longitude >= b.MinLng && c.Longitude <= b.MaxLng
}

// DecodeRing decodes a Google encoded polyline string into a Ring.
// The decoded coordinates are validated; an out-of-range point fails the
// whole decode.
func DecodeRing(encoded string) (Ring, error) {
	if encoded == "" {
		return nil, errors.New("encoded ring string is empty")
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, errors.New("failed to decode ring: " + err.Error())
	}

	ring := make(Ring, len(coords))
	for i, coord := range coords {
		ring[i] = Coordinate{
			Latitude:  coord[0],
			Longitude: coord[1],
		}
		if !isValidCoordinate(ring[i]) {
			return nil, errors.New("decoded ring contains invalid coordinates")
		}
	}
	return ring, nil
}

// isValidCoordinate validates latitude and longitude values
func isValidCoordinate(c Coordinate) bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

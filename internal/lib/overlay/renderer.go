package overlay

import (
	"github.com/calaveras/maptap/internal/lib/geo"
)

// planarRenderer is the default ShapeRenderer: a flat projection of one
// shape into a local space whose origin is the shape's bounding-box
// corner, with degrees as units. Containment uses the even-odd fill rule
// over the local path, so holes exclude their interior exactly as the
// drawn path would.
type planarRenderer struct {
	originLat float64
	originLng float64
	exterior  []LocalPoint
	holes     [][]LocalPoint
}

// NewPlanarRenderer creates a renderer for one shape. The local path is
// built once at construction; an empty shape yields a renderer that
// contains nothing.
func NewPlanarRenderer(shape geo.Polygon) ShapeRenderer {
	r := &planarRenderer{}
	if b, ok := shape.Bounds(); ok {
		r.originLat = b.MinLat
		r.originLng = b.MinLng
	}

	r.exterior = r.localRing(shape.Exterior)
	for _, hole := range shape.Holes {
		if hole.IsDegenerate() {
			continue
		}
		r.holes = append(r.holes, r.localRing(hole))
	}
	return r
}

// LocalPoint converts a geographic coordinate into this shape's local
// space (offsets from the shape's bounds origin).
func (r *planarRenderer) LocalPoint(c geo.Coordinate) LocalPoint {
	return LocalPoint{
		X: c.Longitude - r.originLng,
		Y: c.Latitude - r.originLat,
	}
}

// ContainsLocal tests the point against the shape's path with even-odd
// semantics across exterior and holes.
func (r *planarRenderer) ContainsLocal(p LocalPoint) bool {
	inside := pointInLocalRing(p, r.exterior)
	for _, hole := range r.holes {
		if pointInLocalRing(p, hole) {
			inside = !inside
		}
	}
	return inside
}

func (r *planarRenderer) localRing(ring geo.Ring) []LocalPoint {
	pts := make([]LocalPoint, len(ring))
	for i, c := range ring {
		pts[i] = r.LocalPoint(c)
	}
	return pts
}

// pointInLocalRing is the even-odd ray cast in local space. Fewer than 3
// points encloses nothing.
func pointInLocalRing(p LocalPoint, ring []LocalPoint) bool {
	if len(ring) < 3 {
		return false
	}

	a := ring[len(ring)-1]
	inside := false
	for _, b := range ring {
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		a = b
	}
	return inside
}

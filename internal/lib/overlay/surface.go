package overlay

import (
	"sync"

	"github.com/calaveras/maptap/internal/lib/geo"
)

// StaticSurface is a self-contained MapSurface for tests and offline
// harnesses: a fixed screen rectangle mapped linearly onto a geographic
// viewport, with planar renderers for each installed shape. A real host
// map SDK replaces this in production; the contract is identical.
type StaticSurface struct {
	mutex     sync.RWMutex
	width     float64
	height    float64
	viewport  geo.Bounds
	renderers map[ShapeID]ShapeRenderer
	points    []Annotation
}

// NewStaticSurface creates a surface of the given screen size showing
// the given viewport.
func NewStaticSurface(width, height float64, viewport geo.Bounds) *StaticSurface {
	return &StaticSurface{
		width:     width,
		height:    height,
		viewport:  viewport,
		renderers: make(map[ShapeID]ShapeRenderer),
	}
}

// ScreenToGeographic maps a screen point linearly into the current
// viewport. Screen y grows downward, latitude grows upward. Points
// outside the screen rectangle are outside the valid projection range.
func (s *StaticSurface) ScreenToGeographic(pt ScreenPoint) (geo.Coordinate, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.width <= 0 || s.height <= 0 {
		return geo.Coordinate{}, false
	}
	if pt.X < 0 || pt.X > s.width || pt.Y < 0 || pt.Y > s.height {
		return geo.Coordinate{}, false
	}

	return geo.Coordinate{
		Latitude:  s.viewport.MaxLat - (pt.Y/s.height)*(s.viewport.MaxLat-s.viewport.MinLat),
		Longitude: s.viewport.MinLng + (pt.X/s.width)*(s.viewport.MaxLng-s.viewport.MinLng),
	}, true
}

// ScreenFor maps a geographic coordinate back to a screen point. Test
// and harness convenience, the inverse of ScreenToGeographic.
func (s *StaticSurface) ScreenFor(c geo.Coordinate) ScreenPoint {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	latSpan := s.viewport.MaxLat - s.viewport.MinLat
	lngSpan := s.viewport.MaxLng - s.viewport.MinLng
	if latSpan == 0 || lngSpan == 0 {
		return ScreenPoint{}
	}
	return ScreenPoint{
		X: (c.Longitude - s.viewport.MinLng) / lngSpan * s.width,
		Y: (s.viewport.MaxLat - c.Latitude) / latSpan * s.height,
	}
}

// RendererFor returns the handle registered for the shape, nil when the
// shape is not part of the current overlay set.
func (s *StaticSurface) RendererFor(id ShapeID) ShapeRenderer {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.renderers[id]
}

// AddOverlayShapes installs planar renderers for the given shapes.
func (s *StaticSurface) AddOverlayShapes(shapes []IndexedShape) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, shape := range shapes {
		s.renderers[shape.ID] = NewPlanarRenderer(shape.Shape)
	}
}

// RemoveOverlayShapes discards the renderers for the given shapes.
func (s *StaticSurface) RemoveOverlayShapes(ids []ShapeID) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, id := range ids {
		delete(s.renderers, id)
	}
}

// AddAnnotations adds point markers.
func (s *StaticSurface) AddAnnotations(points []Annotation) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.points = append(s.points, points...)
}

// RemoveAnnotations removes the given markers. With keepUserLocation set
// the live user-location marker survives the removal untouched.
func (s *StaticSurface) RemoveAnnotations(points []Annotation, keepUserLocation bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	doomed := make(map[Annotation]bool, len(points))
	for _, p := range points {
		if keepUserLocation && p.UserLocation {
			continue
		}
		doomed[p] = true
	}

	kept := s.points[:0]
	for _, p := range s.points {
		if !doomed[p] {
			kept = append(kept, p)
		}
	}
	s.points = kept
}

// SetViewport fits the viewport to the bounds expanded by the padding
// margin on all four sides.
func (s *StaticSurface) SetViewport(b geo.Bounds, padding float64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.viewport = b.Expand(padding)
}

// SetViewportRegion applies an explicit region verbatim.
func (s *StaticSurface) SetViewportRegion(r Region) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.viewport = geo.Bounds{
		MinLat: r.Center.Latitude - r.LatSpan/2,
		MaxLat: r.Center.Latitude + r.LatSpan/2,
		MinLng: r.Center.Longitude - r.LngSpan/2,
		MaxLng: r.Center.Longitude + r.LngSpan/2,
	}
}

// Viewport returns the current viewport bounds.
func (s *StaticSurface) Viewport() geo.Bounds {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.viewport
}

// Annotations returns the current point markers.
func (s *StaticSurface) Annotations() []Annotation {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	out := make([]Annotation, len(s.points))
	copy(out, s.points)
	return out
}

// ShapeCount returns the number of installed shape renderers.
func (s *StaticSurface) ShapeCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.renderers)
}

var _ MapSurface = (*StaticSurface)(nil)

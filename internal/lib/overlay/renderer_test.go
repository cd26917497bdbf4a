package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calaveras/maptap/internal/lib/geo"
)

func TestPlanarRenderer_Contains(t *testing.T) {
	shape := rectShape(43.0, -104.05, 45.0, -96.0)
	r := NewPlanarRenderer(shape)

	inside := r.LocalPoint(geo.Coordinate{Latitude: 44.0, Longitude: -100.0})
	assert.True(t, r.ContainsLocal(inside))

	outside := r.LocalPoint(geo.Coordinate{Latitude: 40.0, Longitude: -100.0})
	assert.False(t, r.ContainsLocal(outside))
}

func TestPlanarRenderer_LocalOrigin(t *testing.T) {
	// Local space is offset from the shape's bounds corner, so the corner
	// itself maps to (0, 0) and each shape gets its own origin.
	r := NewPlanarRenderer(rectShape(43.0, -104.0, 45.0, -96.0))

	corner := r.LocalPoint(geo.Coordinate{Latitude: 43.0, Longitude: -104.0})
	assert.Equal(t, LocalPoint{}, corner)

	other := NewPlanarRenderer(rectShape(10.0, 20.0, 12.0, 24.0))
	sameCoord := other.LocalPoint(geo.Coordinate{Latitude: 43.0, Longitude: -104.0})
	assert.NotEqual(t, corner, sameCoord, "Each renderer defines its own local space")
}

func TestPlanarRenderer_Holes(t *testing.T) {
	donut := rectShape(42, -106, 48, -94)
	donut.Holes = []geo.Ring{rectShape(44, -102, 46, -98).Exterior}
	r := NewPlanarRenderer(donut)

	assert.False(t, r.ContainsLocal(r.LocalPoint(geo.Coordinate{Latitude: 45.0, Longitude: -100.0})), "Hole interior excluded")
	assert.True(t, r.ContainsLocal(r.LocalPoint(geo.Coordinate{Latitude: 47.0, Longitude: -100.0})))
}

func TestPlanarRenderer_EmptyShape(t *testing.T) {
	r := NewPlanarRenderer(geo.Polygon{})
	assert.False(t, r.ContainsLocal(LocalPoint{}), "Empty shape contains nothing")
}

func TestStaticSurface_RoundTrip(t *testing.T) {
	surface := NewStaticSurface(1000, 800, geo.Bounds{MinLat: 40, MinLng: -110, MaxLat: 50, MaxLng: -90})

	want := geo.Coordinate{Latitude: 44.0, Longitude: -100.0}
	got, ok := surface.ScreenToGeographic(surface.ScreenFor(want))
	require.True(t, ok)
	assert.InDelta(t, want.Latitude, got.Latitude, 1e-9)
	assert.InDelta(t, want.Longitude, got.Longitude, 1e-9)

	_, ok = surface.ScreenToGeographic(ScreenPoint{X: -1, Y: 100})
	assert.False(t, ok, "Point off the screen rectangle is out of projection range")
}

func TestStaticSurface_AnnotationReplace(t *testing.T) {
	surface := NewStaticSurface(100, 100, geo.Bounds{})
	me := Annotation{Coordinate: geo.Coordinate{Latitude: 1, Longitude: 1}, Title: "me", UserLocation: true}
	pin := Annotation{Coordinate: geo.Coordinate{Latitude: 2, Longitude: 2}, Title: "pin"}

	surface.AddAnnotations([]Annotation{me, pin})
	surface.RemoveAnnotations([]Annotation{me, pin}, true)

	remaining := surface.Annotations()
	require.Len(t, remaining, 1, "User-location marker must survive the replace cycle")
	assert.True(t, remaining[0].UserLocation)
}

func TestExportKML(t *testing.T) {
	donut := rectShape(42, -106, 48, -94)
	donut.Holes = []geo.Ring{rectShape(44, -102, 46, -98).Exterior}
	groups := []PolygonGroup{
		{Key: StringKey("donut"), Title: "Donut", Shapes: []geo.Polygon{donut}},
		{Key: IntKey(2), Shapes: []geo.Polygon{rectShape(10, 20, 12, 24), rectShape(14, 20, 16, 24)}},
	}

	var sb strings.Builder
	require.NoError(t, ExportKML(groups).Write(&sb))
	out := sb.String()

	assert.Contains(t, out, "<name>Donut</name>")
	assert.Contains(t, out, "<innerBoundaryIs>", "Hole should export as an inner boundary")
	assert.Contains(t, out, "<name>2 (part 1)</name>", "Untitled group falls back to its key")
	assert.Contains(t, out, "<name>2 (part 2)</name>")
}

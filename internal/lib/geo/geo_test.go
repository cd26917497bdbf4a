package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rectangle roughly covering western South Dakota, used throughout as a
// simple convex test shape.
func sdRectangle() Ring {
	return Ring{
		{Latitude: 43.0, Longitude: -104.05},
		{Latitude: 45.0, Longitude: -104.05},
		{Latitude: 45.0, Longitude: -96.0},
		{Latitude: 43.0, Longitude: -96.0},
		{Latitude: 43.0, Longitude: -104.05},
	}
}

func TestNewCoordinate(t *testing.T) {
	c, err := NewCoordinate(38.1327, -120.4606)
	require.NoError(t, err)
	assert.Equal(t, 38.1327, c.Latitude)
	assert.Equal(t, -120.4606, c.Longitude)

	_, err = NewCoordinate(200, -300)
	assert.Error(t, err, "Should return error for out-of-range coordinates")
}

func TestRing_Contains(t *testing.T) {
	rect := sdRectangle()

	assert.True(t, rect.Contains(Coordinate{Latitude: 44.0, Longitude: -100.0}), "Center point should be inside")
	assert.False(t, rect.Contains(Coordinate{Latitude: 44.0, Longitude: -90.0}), "Point east of rectangle should be outside")
	assert.False(t, rect.Contains(Coordinate{Latitude: 0, Longitude: 0}), "Far away point should be outside")
}

func TestRing_Contains_OpenRing(t *testing.T) {
	// Same rectangle without the repeated closing point. The last->first
	// segment closes the ring implicitly, so containment is identical.
	open := sdRectangle()[:4]

	assert.True(t, open.Contains(Coordinate{Latitude: 44.0, Longitude: -100.0}))
	assert.False(t, open.Contains(Coordinate{Latitude: 40.0, Longitude: -100.0}))
}

func TestRing_Degenerate(t *testing.T) {
	degenerate := Ring{
		{Latitude: 43.0, Longitude: -104.05},
		{Latitude: 45.0, Longitude: -104.05},
	}

	assert.True(t, degenerate.IsDegenerate())
	assert.False(t, degenerate.Contains(Coordinate{Latitude: 44.0, Longitude: -104.05}), "Degenerate ring should contain nothing")
	assert.False(t, Ring(nil).Contains(Coordinate{}), "Nil ring should contain nothing")
}

func TestPolygon_Contains_Holes(t *testing.T) {
	// Rectangle with a smaller rectangular hole cut from the middle.
	hole := Ring{
		{Latitude: 43.5, Longitude: -102.0},
		{Latitude: 44.5, Longitude: -102.0},
		{Latitude: 44.5, Longitude: -99.0},
		{Latitude: 43.5, Longitude: -99.0},
	}
	p := Polygon{Exterior: sdRectangle(), Holes: []Ring{hole}}

	assert.False(t, p.Contains(Coordinate{Latitude: 44.0, Longitude: -100.5}), "Point inside the hole should not be contained")
	assert.True(t, p.Contains(Coordinate{Latitude: 44.8, Longitude: -100.5}), "Point inside exterior but outside hole should be contained")
	assert.False(t, p.Contains(Coordinate{Latitude: 40.0, Longitude: -100.5}), "Point outside exterior should not be contained")
}

func TestPolygon_Bounds(t *testing.T) {
	p := Polygon{Exterior: sdRectangle()}

	b, ok := p.Bounds()
	require.True(t, ok)
	assert.Equal(t, 43.0, b.MinLat)
	assert.Equal(t, 45.0, b.MaxLat)
	assert.Equal(t, -104.05, b.MinLng)
	assert.Equal(t, -96.0, b.MaxLng)

	center := b.Center()
	assert.InDelta(t, 44.0, center.Latitude, 1e-9)
	assert.InDelta(t, -100.025, center.Longitude, 1e-9)

	_, ok = Polygon{}.Bounds()
	assert.False(t, ok, "Empty polygon should have no bounds")
}

func TestBounds_Union(t *testing.T) {
	a := Bounds{MinLat: 43, MinLng: -104, MaxLat: 45, MaxLng: -96}
	b := Bounds{MinLat: 40, MinLng: -100, MaxLat: 44, MaxLng: -90}

	u := a.Union(b)
	assert.Equal(t, Bounds{MinLat: 40, MinLng: -104, MaxLat: 45, MaxLng: -90}, u)
}

func TestBounds_Expand(t *testing.T) {
	b := Bounds{MinLat: 43, MinLng: -104, MaxLat: 45, MaxLng: -96}

	e := b.Expand(0.5)
	assert.Equal(t, Bounds{MinLat: 42.5, MinLng: -104.5, MaxLat: 45.5, MaxLng: -95.5}, e)
}

func TestDecodeRing(t *testing.T) {
	// Classic Google polyline example points.
	ring, err := DecodeRing("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, ring, 3)
	assert.InDelta(t, 38.5, ring[0].Latitude, 0.001)
	assert.InDelta(t, -120.2, ring[0].Longitude, 0.001)

	_, err = DecodeRing("")
	assert.Error(t, err, "Empty encoded string should error")
}

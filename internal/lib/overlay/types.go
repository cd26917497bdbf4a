package overlay

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/calaveras/maptap/internal/lib/geo"
)

// KeyKind discriminates the GroupKey variants.
type KeyKind uint8

const (
	KeyInt KeyKind = iota
	KeyString
	KeyUUID
)

// GroupKey is the opaque identity of a polygon group. It is a small sum
// type over integer, string and UUID identifiers, comparable and usable
// as a map key. Group membership and renderer lookups are keyed by this
// value, never by object identity.
type GroupKey struct {
	kind KeyKind
	num  int64
	str  string
	uid  uuid.UUID
}

// IntKey creates a GroupKey from an integer identifier.
func IntKey(v int64) GroupKey {
	return GroupKey{kind: KeyInt, num: v}
}

// StringKey creates a GroupKey from a string identifier.
func StringKey(v string) GroupKey {
	return GroupKey{kind: KeyString, str: v}
}

// UUIDKey creates a GroupKey from a UUID identifier.
func UUIDKey(v uuid.UUID) GroupKey {
	return GroupKey{kind: KeyUUID, uid: v}
}

// Kind returns the variant of the key.
func (k GroupKey) Kind() KeyKind {
	return k.kind
}

// String renders the key for logging.
func (k GroupKey) String() string {
	switch k.kind {
	case KeyString:
		return k.str
	case KeyUUID:
		return k.uid.String()
	default:
		return strconv.FormatInt(k.num, 10)
	}
}

// Style holds the visual styling of a group. It is opaque to hit-testing
// and passed through to the renderer unchanged.
type Style struct {
	FillColor   string  `json:"fill_color"`
	StrokeColor string  `json:"stroke_color"`
	LineWidth   float64 `json:"line_width"`
}

// PolygonGroup is a named collection of one or more polygon-with-holes
// shapes sharing one style and one logical identity. A multi-polygon
// region is one group with several shapes; tapping any constituent shape
// attributes the tap to the whole group. Groups are immutable values and
// the key is stable for the group's lifetime.
type PolygonGroup struct {
	Key    GroupKey      `json:"key"`
	Title  string        `json:"title,omitempty"`
	Style  Style         `json:"style"`
	Shapes []geo.Polygon `json:"shapes"`
}

// ScreenPoint is a tap location in screen coordinates (points/pixels,
// origin per the host map surface).
type ScreenPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LocalPoint is a position in one shape renderer's local coordinate
// space. Each shape defines its own local origin and scale, so local
// points are never meaningful across shapes.
type LocalPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ShapeID identifies one shape instance within the current overlay set.
// IDs are assigned sequentially in candidate order when the index is
// built, so rebuilding an index from the same group list yields the same
// IDs. IDs are only meaningful within one overlay set generation.
type ShapeID int

// Region is an explicit viewport: a center coordinate plus latitude and
// longitude spans in degrees.
type Region struct {
	Center  geo.Coordinate `json:"center"`
	LatSpan float64        `json:"lat_span"`
	LngSpan float64        `json:"lng_span"`
}

// Annotation is a point marker on the map.
type Annotation struct {
	Coordinate   geo.Coordinate `json:"coordinate"`
	Title        string         `json:"title,omitempty"`
	UserLocation bool           `json:"user_location,omitempty"`
}

// ShapeRenderer answers geometry questions for one shape instance in
// that shape's local coordinate space, honoring hole subtraction.
type ShapeRenderer interface {
	// Convert a geographic coordinate into this renderer's local space
	LocalPoint(c geo.Coordinate) LocalPoint

	// Report whether a local-space point lies inside the shape's path
	ContainsLocal(p LocalPoint) bool
}

// MapSurface is the collaborator contract of the host map SDK: the
// screen-to-geographic projection at its current pan/zoom/rotate state,
// per-shape renderer handles, viewport control and overlay bookkeeping.
type MapSurface interface {
	// Project a screen point to a geographic coordinate at the current
	// viewport state. Returns false when the point falls outside the
	// valid projection range.
	ScreenToGeographic(pt ScreenPoint) (geo.Coordinate, bool)

	// Return the renderer handle for a shape in the current overlay set.
	// The handle is stable for the shape's lifetime within the set; nil
	// for an unknown shape.
	RendererFor(id ShapeID) ShapeRenderer

	// Overlay and annotation bookkeeping, full-replace style
	AddOverlayShapes(shapes []IndexedShape)
	RemoveOverlayShapes(ids []ShapeID)
	AddAnnotations(points []Annotation)
	RemoveAnnotations(points []Annotation, keepUserLocation bool)

	// Viewport control
	SetViewport(b geo.Bounds, padding float64)
	SetViewportRegion(r Region)
}

// HitTester resolves screen taps against an overlay set.
type HitTester interface {
	// HitTest returns the first group, in candidate order, owning a shape
	// that contains the tap point. The bool is false when nothing matches.
	HitTest(pt ScreenPoint, idx *ShapeIndex, surface MapSurface) (PolygonGroup, bool)

	// HitTestGroups is a convenience wrapper that indexes the groups
	// before testing
	HitTestGroups(pt ScreenPoint, groups []PolygonGroup, surface MapSurface) (PolygonGroup, bool)
}

// NewHitTester is implemented in hittest.go

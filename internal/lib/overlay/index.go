package overlay

import (
	"github.com/calaveras/maptap/internal/lib/geo"
)

// IndexedShape is one shape instance flattened out of its group, tagged
// with its ID and owning group key.
type IndexedShape struct {
	ID    ShapeID     `json:"id"`
	Group GroupKey    `json:"group"`
	Shape geo.Polygon `json:"shape"`
}

// ShapeIndex maps every shape instance in an overlay set back to its
// owning group. It is rebuilt from scratch on every overlay-set update
// and exists so that tap attribution never relies on identity comparison
// of rendering primitives.
type ShapeIndex struct {
	shapes []IndexedShape
	owners map[ShapeID]GroupKey
	groups map[GroupKey]PolygonGroup
}

// NewShapeIndex flattens the groups into indexed shapes. Shape IDs are
// assigned sequentially in candidate order: groups in the given order,
// shapes within a group in their given order. Empty shapes keep their ID
// slot so IDs stay aligned with what the surface was handed.
func NewShapeIndex(groups []PolygonGroup) *ShapeIndex {
	idx := &ShapeIndex{
		owners: make(map[ShapeID]GroupKey),
		groups: make(map[GroupKey]PolygonGroup, len(groups)),
	}

	next := ShapeID(0)
	for _, g := range groups {
		idx.groups[g.Key] = g
		for _, shape := range g.Shapes {
			idx.shapes = append(idx.shapes, IndexedShape{
				ID:    next,
				Group: g.Key,
				Shape: shape,
			})
			idx.owners[next] = g.Key
			next++
		}
	}
	return idx
}

// Shapes returns all indexed shapes in candidate order.
func (x *ShapeIndex) Shapes() []IndexedShape {
	return x.shapes
}

// IDs returns the shape IDs in candidate order.
func (x *ShapeIndex) IDs() []ShapeID {
	ids := make([]ShapeID, len(x.shapes))
	for i, s := range x.shapes {
		ids[i] = s.ID
	}
	return ids
}

// Owner returns the group owning the given shape.
func (x *ShapeIndex) Owner(id ShapeID) (PolygonGroup, bool) {
	key, ok := x.owners[id]
	if !ok {
		return PolygonGroup{}, false
	}
	g, ok := x.groups[key]
	return g, ok
}

// Group returns the group with the given key.
func (x *ShapeIndex) Group(key GroupKey) (PolygonGroup, bool) {
	g, ok := x.groups[key]
	return g, ok
}

// Len returns the number of indexed shapes.
func (x *ShapeIndex) Len() int {
	return len(x.shapes)
}

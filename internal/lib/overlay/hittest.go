package overlay

// hitTester implements the HitTester interface
type hitTester struct{}

// NewHitTester creates a new HitTester implementation. The tester is
// stateless; every call is a pure synchronous computation over the
// supplied index and surface.
func NewHitTester() HitTester {
	return &hitTester{}
}

// HitTest resolves a screen tap to the owning group of the first shape,
// in candidate order, that contains it. First match wins: this is the
// tie-break for overlapping shapes, so the group listed earlier takes
// precedence regardless of visual stacking.
//
// The transform runs in two stages per shape: screen point to geographic
// coordinate through the surface's current viewport, then geographic
// coordinate into the shape renderer's local space. Both stages are
// redone for every shape because each renderer defines its own local
// origin and scale.
func (h *hitTester) HitTest(pt ScreenPoint, idx *ShapeIndex, surface MapSurface) (PolygonGroup, bool) {
	if idx == nil || surface == nil || idx.Len() == 0 {
		return PolygonGroup{}, false
	}

	for _, s := range idx.Shapes() {
		coord, ok := surface.ScreenToGeographic(pt)
		if !ok {
			// Outside the valid projection range is a no-match, not a fault
			return PolygonGroup{}, false
		}

		renderer := surface.RendererFor(s.ID)
		if renderer == nil {
			continue
		}

		if renderer.ContainsLocal(renderer.LocalPoint(coord)) {
			if group, ok := idx.Owner(s.ID); ok {
				return group, true
			}
		}
	}

	return PolygonGroup{}, false
}

// HitTestGroups indexes the candidate groups and runs HitTest. Because
// shape IDs are assigned deterministically in candidate order, the
// transient index lines up with renderer handles registered from the
// same group list.
func (h *hitTester) HitTestGroups(pt ScreenPoint, groups []PolygonGroup, surface MapSurface) (PolygonGroup, bool) {
	return h.HitTest(pt, NewShapeIndex(groups), surface)
}

// Package view binds an overlay set to a map surface: it owns the
// current groups and annotations, runs the full-replace update protocol,
// fits the viewport, and dispatches tap gestures to the hit-test engine.
package view

import (
	"sync"

	"go.uber.org/zap"

	"github.com/calaveras/maptap/internal/config"
	"github.com/calaveras/maptap/internal/lib/geo"
	"github.com/calaveras/maptap/internal/lib/overlay"
)

// viewportPadding is the fixed margin, in degrees, added on all four
// sides when fitting the viewport to the overlay set.
const viewportPadding = 0.05

// MapView owns the displayed overlay and annotation sets for one map
// surface. Updates are full replacements: the previous set is torn down
// and the new one installed, with no incremental diffing. All methods
// are synchronous; the expectation is a single UI/event thread, but the
// internal state is guarded so a tap callback may safely trigger a new
// update.
type MapView struct {
	mutex   sync.RWMutex
	logger  *zap.Logger
	surface overlay.MapSurface
	tester  overlay.HitTester
	opts    config.Options

	groups      []overlay.PolygonGroup
	index       *overlay.ShapeIndex
	annotations []overlay.Annotation

	onTapped   func(overlay.PolygonGroup)
	onTappedAt func(overlay.PolygonGroup, overlay.ScreenPoint)
}

// New creates a MapView bound to the given surface.
func New(surface overlay.MapSurface, opts config.Options, logger *zap.Logger) *MapView {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MapView{
		logger:  logger,
		surface: surface,
		tester:  overlay.NewHitTester(),
		opts:    opts,
		index:   overlay.NewShapeIndex(nil),
	}
}

// OnPolygonTapped registers the callback fired with the matched group.
func (v *MapView) OnPolygonTapped(fn func(overlay.PolygonGroup)) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.onTapped = fn
}

// OnPolygonTappedAt registers the callback fired with the matched group
// and the raw screen tap point.
func (v *MapView) OnPolygonTappedAt(fn func(overlay.PolygonGroup, overlay.ScreenPoint)) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.onTappedAt = fn
}

// SetGroups replaces the entire overlay set: all previous shapes are
// removed from the surface, the new shapes added, the shape index
// rebuilt, and the viewport refitted. Correctness over efficiency; the
// expected scale is tens to low hundreds of shapes.
func (v *MapView) SetGroups(groups []overlay.PolygonGroup) {
	v.mutex.Lock()

	v.surface.RemoveOverlayShapes(v.index.IDs())

	v.groups = make([]overlay.PolygonGroup, len(groups))
	copy(v.groups, groups)
	v.index = overlay.NewShapeIndex(v.groups)
	v.surface.AddOverlayShapes(v.index.Shapes())

	v.logger.Debug("overlay set replaced",
		zap.Int("groups", len(v.groups)),
		zap.Int("shapes", v.index.Len()),
	)
	v.mutex.Unlock()

	v.applyViewport(groups)
}

// SetAnnotations replaces the annotation set. The live user-location
// marker is never removed or re-added by the replace cycle.
func (v *MapView) SetAnnotations(points []overlay.Annotation) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	v.surface.RemoveAnnotations(v.annotations, true)

	v.annotations = make([]overlay.Annotation, 0, len(points))
	for _, p := range points {
		if p.UserLocation {
			// The surface owns the live marker; skip it on both sides of
			// the replace
			continue
		}
		v.annotations = append(v.annotations, p)
	}
	v.surface.AddAnnotations(v.annotations)

	v.logger.Debug("annotation set replaced", zap.Int("annotations", len(v.annotations)))
}

// Tap resolves a screen tap against the current overlay set and fires
// the registered callbacks at most once, only on a match. Returns
// whether a group matched. Callbacks run without the view lock held, so
// a callback may itself start a new update cycle.
func (v *MapView) Tap(pt overlay.ScreenPoint) bool {
	v.mutex.RLock()
	idx := v.index
	onTapped := v.onTapped
	onTappedAt := v.onTappedAt
	v.mutex.RUnlock()

	group, ok := v.tester.HitTest(pt, idx, v.surface)
	if !ok {
		v.logger.Debug("tap matched nothing", zap.Float64("x", pt.X), zap.Float64("y", pt.Y))
		return false
	}

	v.logger.Debug("tap matched group",
		zap.Stringer("group", group.Key),
		zap.String("title", group.Title),
	)
	if onTapped != nil {
		onTapped(group)
	}
	if onTappedAt != nil {
		onTappedAt(group, pt)
	}
	return true
}

// Groups returns the current overlay set.
func (v *MapView) Groups() []overlay.PolygonGroup {
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	out := make([]overlay.PolygonGroup, len(v.groups))
	copy(out, v.groups)
	return out
}

// applyViewport fits the viewport after an overlay update: an explicit
// region verbatim when configured, otherwise the union bounds of all
// shapes with the fixed padding. An empty group list leaves the viewport
// unchanged.
func (v *MapView) applyViewport(groups []overlay.PolygonGroup) {
	if v.opts.ExplicitRegion != nil {
		v.surface.SetViewportRegion(v.opts.ExplicitRegion.ToRegion())
		return
	}

	var union geo.Bounds
	found := false
	for _, g := range groups {
		for _, shape := range g.Shapes {
			b, ok := shape.Bounds()
			if !ok {
				continue
			}
			if !found {
				union = b
				found = true
			} else {
				union = union.Union(b)
			}
		}
	}
	if !found {
		return
	}

	v.surface.SetViewport(union, viewportPadding)
}

// Package geojson converts GeoJSON polygon geometry into the renderable
// polygon-with-holes model. Malformed or unsupported input is handled by
// omission: parsing never fails for a single bad geometry, it just yields
// fewer shapes. Logging of dropped input is the caller's business.
package geojson

import (
	"encoding/json"
	"fmt"

	"github.com/calaveras/maptap/internal/lib/geo"
)

// ParseGeometry converts a Polygon or MultiPolygon geometry into a slice
// of polygons. Any other geometry type, or a coordinates payload that does
// not match the expected nesting for its type, yields an empty slice.
//
// GeoJSON coordinate order is [longitude, latitude]; the result swaps to
// (latitude, longitude).
func ParseGeometry(g Geometry) []geo.Polygon {
	switch g.Type {
	case "Polygon":
		var rings [][][]float64
		if err := json.Unmarshal(g.Coordinates, &rings); err != nil {
			return nil
		}
		if p, ok := convertPolygon(rings); ok {
			return []geo.Polygon{p}
		}
		return nil

	case "MultiPolygon":
		var blocks [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &blocks); err != nil {
			return nil
		}
		var polygons []geo.Polygon
		for _, rings := range blocks {
			if p, ok := convertPolygon(rings); ok {
				polygons = append(polygons, p)
			}
		}
		return polygons

	default:
		return nil
	}
}

// convertPolygon builds a polygon from one GeoJSON ring block. Ring 0 is
// the exterior; any further rings are holes. A degenerate or malformed
// exterior drops the whole shape, a degenerate hole drops just that hole.
func convertPolygon(rings [][][]float64) (geo.Polygon, bool) {
	if len(rings) == 0 {
		return geo.Polygon{}, false
	}

	exterior, ok := convertRing(rings[0])
	if !ok || exterior.IsDegenerate() {
		return geo.Polygon{}, false
	}

	p := geo.Polygon{Exterior: exterior}
	for _, raw := range rings[1:] {
		hole, ok := convertRing(raw)
		if !ok || hole.IsDegenerate() {
			continue
		}
		p.Holes = append(p.Holes, hole)
	}
	return p, true
}

// convertRing swaps [lng, lat] pairs to coordinates. A position with
// fewer than 2 numbers invalidates the ring.
func convertRing(pairs [][]float64) (geo.Ring, bool) {
	ring := make(geo.Ring, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) < 2 {
			return nil, false
		}
		ring = append(ring, geo.Coordinate{
			Latitude:  pair[1],
			Longitude: pair[0],
		})
	}
	return ring, true
}

// ParseFeatureCollection parses a GeoJSON FeatureCollection document into
// regions. A feature missing properties.id (integer), properties.name
// (string) or a geometry, or whose geometry parses to zero shapes, is
// dropped; sibling features are unaffected. Only a document that is not
// valid JSON at the top level is an error.
func ParseFeatureCollection(raw []byte) ([]Region, error) {
	var fc featureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse feature collection: %w", err)
	}

	var regions []Region
	for _, f := range fc.Features {
		if f.Geometry == nil || len(f.Properties) == 0 {
			continue
		}

		var props featureProperties
		if err := json.Unmarshal(f.Properties, &props); err != nil {
			continue
		}
		if props.ID == nil || props.Name == nil {
			continue
		}

		shapes := ParseGeometry(*f.Geometry)
		if len(shapes) == 0 {
			continue
		}

		regions = append(regions, Region{
			ID:     *props.ID,
			Name:   *props.Name,
			Shapes: shapes,
		})
	}

	return regions, nil
}

package overlay

import (
	"fmt"

	"github.com/twpayne/go-kml/v2"

	"github.com/calaveras/maptap/internal/lib/geo"
)

// ExportKML renders the overlay set as a KML document, one placemark per
// shape with outer and inner boundaries. Inspection and debugging
// surface; the hit-test path never touches it.
func ExportKML(groups []PolygonGroup) *kml.CompoundElement {
	doc := kml.Document()

	for _, g := range groups {
		name := g.Title
		if name == "" {
			name = g.Key.String()
		}

		for i, shape := range g.Shapes {
			if shape.IsEmpty() {
				continue
			}

			placemarkName := name
			if len(g.Shapes) > 1 {
				placemarkName = fmt.Sprintf("%s (part %d)", name, i+1)
			}

			polygon := kml.Polygon(
				kml.OuterBoundaryIs(kml.LinearRing(kml.Coordinates(kmlRing(shape.Exterior)...))),
			)
			for _, hole := range shape.Holes {
				if hole.IsDegenerate() {
					continue
				}
				polygon.Add(kml.InnerBoundaryIs(kml.LinearRing(kml.Coordinates(kmlRing(hole)...))))
			}

			doc.Add(kml.Placemark(
				kml.Name(placemarkName),
				polygon,
			))
		}
	}

	return kml.KML(doc)
}

// kmlRing converts a ring to KML coordinates, repeating the first point
// at the end because KML linear rings must be explicitly closed.
func kmlRing(ring geo.Ring) []kml.Coordinate {
	coords := make([]kml.Coordinate, 0, len(ring)+1)
	for _, c := range ring {
		coords = append(coords, kml.Coordinate{Lon: c.Longitude, Lat: c.Latitude})
	}
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		coords = append(coords, kml.Coordinate{Lon: ring[0].Longitude, Lat: ring[0].Latitude})
	}
	return coords
}

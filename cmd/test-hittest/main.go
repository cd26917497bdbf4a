package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/calaveras/maptap/internal/config"
	"github.com/calaveras/maptap/internal/lib/geo"
	"github.com/calaveras/maptap/internal/lib/geojson"
	"github.com/calaveras/maptap/internal/lib/overlay"
	"github.com/calaveras/maptap/internal/view"
)

// Manual harness for the tap pipeline: loads a FeatureCollection, binds
// it to an offline surface and resolves taps either at screen points or
// at geographic coordinates.

func main() {
	fs := flag.NewFlagSet("test-hittest", flag.ExitOnError)
	file := fs.String("file", "", "Path to a GeoJSON FeatureCollection file")
	configPath := fs.String("config", "", "Optional map options YAML file")
	lat := fs.Float64("lat", 0, "Tap latitude (used with --lng)")
	lng := fs.Float64("lng", 0, "Tap longitude")
	x := fs.Float64("x", -1, "Tap screen x (used with --y)")
	y := fs.Float64("y", -1, "Tap screen y")
	width := fs.Float64("width", 1000, "Screen width")
	height := fs.Float64("height", 1000, "Screen height")
	verbose := fs.Bool("v", false, "Verbose logging")
	fs.Parse(os.Args[1:])

	if *file == "" {
		fmt.Println("Example usage:")
		fmt.Println("  test-hittest --file regions.geojson --lat 44.0 --lng -100.0")
		fmt.Println("  test-hittest --file regions.geojson --x 512 --y 384")
		os.Exit(1)
	}

	opts, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := zap.NewNop()
	if *verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Error creating logger: %v", err)
		}
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Error reading file: %v", err)
	}
	regions, err := geojson.ParseFeatureCollection(raw)
	if err != nil {
		log.Fatalf("Error parsing feature collection: %v", err)
	}
	if len(regions) == 0 {
		log.Fatalf("No usable regions in %s", *file)
	}

	groups := make([]overlay.PolygonGroup, 0, len(regions))
	for _, r := range regions {
		groups = append(groups, overlay.PolygonGroup{
			Key:    overlay.IntKey(int64(r.ID)),
			Title:  r.Name,
			Shapes: r.Shapes,
		})
	}

	surface := overlay.NewStaticSurface(*width, *height, geo.Bounds{MinLat: -90, MinLng: -180, MaxLat: 90, MaxLng: 180})
	mapView := view.New(surface, opts, logger)
	mapView.OnPolygonTappedAt(func(g overlay.PolygonGroup, pt overlay.ScreenPoint) {
		fmt.Printf("Matched group %s (%s) at screen (%.1f, %.1f)\n", g.Key, g.Title, pt.X, pt.Y)
	})
	mapView.SetGroups(groups)

	vp := surface.Viewport()
	fmt.Printf("Loaded %d groups, viewport (%.4f, %.4f) - (%.4f, %.4f)\n",
		len(groups), vp.MinLat, vp.MinLng, vp.MaxLat, vp.MaxLng)

	var tap overlay.ScreenPoint
	if *x >= 0 && *y >= 0 {
		tap = overlay.ScreenPoint{X: *x, Y: *y}
	} else {
		tap = surface.ScreenFor(geo.Coordinate{Latitude: *lat, Longitude: *lng})
		fmt.Printf("Tap at (%.4f, %.4f) -> screen (%.1f, %.1f)\n", *lat, *lng, tap.X, tap.Y)
	}

	if !mapView.Tap(tap) {
		fmt.Println("No match")
	}
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/calaveras/maptap/internal/lib/geojson"
	"github.com/calaveras/maptap/internal/lib/overlay"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "parse-geometry":
		handleParseGeometry()
	case "parse-features":
		handleParseFeatures()
	case "export-kml":
		handleExportKML()
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func handleParseGeometry() {
	fs := flag.NewFlagSet("parse-geometry", flag.ExitOnError)
	file := fs.String("file", "", "Path to a GeoJSON geometry file")
	inline := fs.String("json", "", "Inline GeoJSON geometry")
	fs.Parse(os.Args[2:])

	raw := readInput(*file, *inline)
	var g geojson.Geometry
	if err := json.Unmarshal(raw, &g); err != nil {
		log.Fatalf("Error decoding geometry object: %v", err)
	}

	shapes := geojson.ParseGeometry(g)
	fmt.Printf("Geometry type: %s\n", g.Type)
	fmt.Printf("Shapes parsed: %d\n", len(shapes))
	for i, shape := range shapes {
		fmt.Printf("  Shape %d: %d exterior points, %d holes\n", i+1, len(shape.Exterior), len(shape.Holes))
		if b, ok := shape.Bounds(); ok {
			fmt.Printf("    Bounds: (%.4f, %.4f) - (%.4f, %.4f)\n", b.MinLat, b.MinLng, b.MaxLat, b.MaxLng)
		}
	}
}

func handleParseFeatures() {
	fs := flag.NewFlagSet("parse-features", flag.ExitOnError)
	file := fs.String("file", "", "Path to a GeoJSON FeatureCollection file")
	fs.Parse(os.Args[2:])

	if *file == "" {
		fmt.Println("Example usage:")
		fmt.Println("  test-geojson parse-features --file regions.geojson")
		os.Exit(1)
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Error reading file: %v", err)
	}

	regions, err := geojson.ParseFeatureCollection(raw)
	if err != nil {
		log.Fatalf("Error parsing feature collection: %v", err)
	}

	fmt.Printf("Regions parsed: %d\n", len(regions))
	for _, r := range regions {
		fmt.Printf("  [%d] %s: %d shapes\n", r.ID, r.Name, len(r.Shapes))
	}
}

func handleExportKML() {
	fs := flag.NewFlagSet("export-kml", flag.ExitOnError)
	file := fs.String("file", "", "Path to a GeoJSON FeatureCollection file")
	fs.Parse(os.Args[2:])

	if *file == "" {
		fmt.Println("Example usage:")
		fmt.Println("  test-geojson export-kml --file regions.geojson > regions.kml")
		os.Exit(1)
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Error reading file: %v", err)
	}

	regions, err := geojson.ParseFeatureCollection(raw)
	if err != nil {
		log.Fatalf("Error parsing feature collection: %v", err)
	}

	groups := make([]overlay.PolygonGroup, 0, len(regions))
	for _, r := range regions {
		groups = append(groups, overlay.PolygonGroup{
			Key:    overlay.IntKey(int64(r.ID)),
			Title:  r.Name,
			Shapes: r.Shapes,
		})
	}

	if err := overlay.ExportKML(groups).WriteIndent(os.Stdout, "", "  "); err != nil {
		log.Fatalf("Error writing KML: %v", err)
	}
}

func readInput(file, inline string) []byte {
	if inline != "" {
		return []byte(inline)
	}
	if file == "" {
		fmt.Println("Example usage:")
		fmt.Println(`  test-geojson parse-geometry --json '{"type":"Polygon","coordinates":[[[-104.05,43.0],[-104.05,45.0],[-96.0,45.0],[-96.0,43.0],[-104.05,43.0]]]}'`)
		fmt.Println("  test-geojson parse-geometry --file geometry.json")
		os.Exit(1)
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		log.Fatalf("Error reading file: %v", err)
	}
	return raw
}

func printUsage() {
	fmt.Println("GeoJSON parsing test utility")
	fmt.Println()
	fmt.Println("Usage: test-geojson <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  parse-geometry   Parse a single Polygon/MultiPolygon geometry")
	fmt.Println("  parse-features   Parse a FeatureCollection document")
	fmt.Println("  export-kml       Convert a FeatureCollection to KML")
	fmt.Println("  help             Show this help")
}

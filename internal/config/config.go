package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/calaveras/maptap/internal/lib/geo"
	"github.com/calaveras/maptap/internal/lib/overlay"
)

// envPrefix namespaces environment overrides, e.g. MAPTAP_DISPLAY_MODE.
const envPrefix = "MAPTAP_"

// Options is the embedding-layer configuration for a map view.
type Options struct {
	// Fixed viewport; nil means auto-fit to the overlay set
	ExplicitRegion *RegionYAML `koanf:"explicit_region"`

	// Visual map style, passed through to the host map SDK
	DisplayMode string `koanf:"display_mode"`

	// Interaction toggles
	AllowScroll bool `koanf:"allow_scroll"`
	AllowZoom   bool `koanf:"allow_zoom"`
	AllowRotate bool `koanf:"allow_rotate"`

	ShowUserLocation bool `koanf:"show_user_location"`

	PointsOfInterest POIFilter `koanf:"points_of_interest"`
}

// POIFilter controls which built-in map points of interest are shown.
// Mode is "all", "none", "including" or "excluding"; Categories qualifies
// the latter two.
type POIFilter struct {
	Mode       string   `koanf:"mode"`
	Categories []string `koanf:"categories"`
}

// RegionYAML represents an explicit viewport region in YAML config
type RegionYAML struct {
	CenterLat float64 `koanf:"center_lat"`
	CenterLng float64 `koanf:"center_lng"`
	LatSpan   float64 `koanf:"lat_span"`
	LngSpan   float64 `koanf:"lng_span"`
}

// ToRegion converts RegionYAML to an overlay viewport region
func (r RegionYAML) ToRegion() overlay.Region {
	return overlay.Region{
		Center:  geo.Coordinate{Latitude: r.CenterLat, Longitude: r.CenterLng},
		LatSpan: r.LatSpan,
		LngSpan: r.LngSpan,
	}
}

// Default returns the default map options: a standard interactive map
// that auto-fits its viewport.
func Default() Options {
	return Options{
		DisplayMode: "standard",
		AllowScroll: true,
		AllowZoom:   true,
		AllowRotate: false,
		PointsOfInterest: POIFilter{
			Mode: "all",
		},
	}
}

// Load reads options from an optional YAML file, then applies
// MAPTAP_-prefixed environment overrides on top of the defaults.
func Load(path string) (Options, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Options{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return Options{}, fmt.Errorf("failed to load env config: %w", err)
	}

	opts := Default()
	if err := k.Unmarshal("", &opts); err != nil {
		return Options{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return opts, nil
}

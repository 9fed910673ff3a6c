package ports

import (
	"context"
	"image"
)

// Icon identifies one of the fixed built-in pictograms used on the
// summary and per-point pages.
type Icon string

const (
	IconGlobe       Icon = "globe"
	IconLocation    Icon = "location"
	IconCalendar    Icon = "calendar"
	IconCamera      Icon = "camera"
	IconHome        Icon = "home"
	IconDestination Icon = "destination"
	IconLogo        Icon = "logo"
	IconWorldMap    Icon = "worldmap"
)

// ShapeVariant selects the color variant of a country boundary shape.
// White shapes sit on photo backgrounds, blue shapes on white pages.
type ShapeVariant string

const (
	ShapeWhite ShapeVariant = "white"
	ShapeBlue  ShapeVariant = "blue"
)

// AssetStore resolves name-keyed static assets: country flags, country
// boundary shapes and fixed icons. A missing asset is an error the caller
// absorbs with a local fallback.
type AssetStore interface {
	// Flag returns the flag image for a country name.
	Flag(country string) (image.Image, error)

	// Shape returns the boundary-shape image for a country name in the
	// requested color variant.
	Shape(country string, variant ShapeVariant) (image.Image, error)

	// Icon returns one of the fixed icon images.
	Icon(icon Icon) (image.Image, error)
}

// ImageLoader loads a remote image by URL.
type ImageLoader interface {
	Load(ctx context.Context, url string) (image.Image, error)
}

// MapPoint is a single coordinate used for static map generation.
type MapPoint struct {
	Lat float64
	Lng float64
}

// MapProvider fetches a static map image with one marker per point and a
// polyline path connecting them in order.
type MapProvider interface {
	StaticMap(ctx context.Context, points []MapPoint, width, height int) (image.Image, error)
}

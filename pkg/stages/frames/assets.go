package frames

import (
	"context"
	"image"

	"github.com/msuleman526/tripshow/pkg/ports"
)

// AssetCache holds every image a timeline's frames can reference,
// fetched once before rendering starts. Any entry may be nil: fetch
// failures are logged and the renderer substitutes a fallback, never
// aborts.
type AssetCache struct {
	Cover  image.Image
	Logo   image.Image
	Slides []image.Image
	Flags  map[string]image.Image
}

// AssetDeps are the ports the preload step pulls images through.
type AssetDeps struct {
	Loader ports.ImageLoader
	Assets ports.AssetStore
	Logger ports.Logger
}

// LoadAssets fetches the cover, logo, every slide image and every
// country flag the timeline references. It always returns a usable
// cache.
func LoadAssets(ctx context.Context, t Timeline, deps AssetDeps) *AssetCache {
	cache := &AssetCache{
		Slides: make([]image.Image, len(t.Slides)),
		Flags:  map[string]image.Image{},
	}

	if t.CoverURL != "" {
		img, err := deps.Loader.Load(ctx, t.CoverURL)
		if err != nil {
			deps.Logger.Warn("Cover image unavailable, using fallback: %s", err)
		} else {
			cache.Cover = img
		}
	}

	if img, err := deps.Assets.Icon(ports.IconLogo); err != nil {
		deps.Logger.Warn("Logo unavailable, using fallback: %s", err)
	} else {
		cache.Logo = img
	}

	for i, s := range t.Slides {
		img, err := deps.Loader.Load(ctx, s.MediaURL)
		if err != nil {
			deps.Logger.Warn("Slide %d image unavailable, using fallback: %s", i, err)
			continue
		}
		cache.Slides[i] = img
	}

	countries := append([]string{}, t.Countries...)
	for _, s := range t.Slides {
		countries = append(countries, s.Country)
	}
	for _, country := range countries {
		if country == "" {
			continue
		}
		if _, ok := cache.Flags[country]; ok {
			continue
		}
		img, err := deps.Assets.Flag(country)
		if err != nil {
			deps.Logger.Warn("Flag for %s unavailable, skipping: %s", country, err)
			cache.Flags[country] = nil
			continue
		}
		cache.Flags[country] = img
	}

	return cache
}

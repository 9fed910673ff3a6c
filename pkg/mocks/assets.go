package mocks

import (
	"context"
	"image"
	"image/color"

	"github.com/msuleman526/tripshow/pkg/ports"
)

// MockAssetStore serves small solid-color images for every asset by
// default. Any method can be overridden to simulate missing assets.
type MockAssetStore struct {
	FlagFunc  func(country string) (image.Image, error)
	ShapeFunc func(country string, variant ports.ShapeVariant) (image.Image, error)
	IconFunc  func(icon ports.Icon) (image.Image, error)

	FlagCalls  []string
	ShapeCalls []string
	IconCalls  []ports.Icon
}

func (s *MockAssetStore) Flag(country string) (image.Image, error) {
	s.FlagCalls = append(s.FlagCalls, country)
	if s.FlagFunc != nil {
		return s.FlagFunc(country)
	}
	return SolidImage(12, 8, color.RGBA{200, 30, 30, 255}), nil
}

func (s *MockAssetStore) Shape(country string, variant ports.ShapeVariant) (image.Image, error) {
	s.ShapeCalls = append(s.ShapeCalls, country)
	if s.ShapeFunc != nil {
		return s.ShapeFunc(country, variant)
	}
	return SolidImage(16, 16, color.RGBA{30, 30, 200, 255}), nil
}

func (s *MockAssetStore) Icon(icon ports.Icon) (image.Image, error) {
	s.IconCalls = append(s.IconCalls, icon)
	if s.IconFunc != nil {
		return s.IconFunc(icon)
	}
	return SolidImage(16, 16, color.RGBA{60, 60, 60, 255}), nil
}

// MockImageLoader serves a solid image for every URL by default and
// records the URLs it was asked for.
type MockImageLoader struct {
	LoadFunc func(ctx context.Context, url string) (image.Image, error)

	LoadCalls []string
}

func (l *MockImageLoader) Load(ctx context.Context, url string) (image.Image, error) {
	l.LoadCalls = append(l.LoadCalls, url)
	if l.LoadFunc != nil {
		return l.LoadFunc(ctx, url)
	}
	return SolidImage(64, 48, color.RGBA{90, 140, 90, 255}), nil
}

// MockMapProvider serves a solid map tile by default.
type MockMapProvider struct {
	StaticMapFunc func(ctx context.Context, points []ports.MapPoint, width, height int) (image.Image, error)

	Calls [][]ports.MapPoint
}

func (m *MockMapProvider) StaticMap(ctx context.Context, points []ports.MapPoint, width, height int) (image.Image, error) {
	m.Calls = append(m.Calls, points)
	if m.StaticMapFunc != nil {
		return m.StaticMapFunc(ctx, points, width, height)
	}
	return SolidImage(width, height, color.RGBA{180, 205, 230, 255}), nil
}

var (
	_ ports.AssetStore  = (*MockAssetStore)(nil)
	_ ports.ImageLoader = (*MockImageLoader)(nil)
	_ ports.MapProvider = (*MockMapProvider)(nil)
)

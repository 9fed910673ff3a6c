package pages

import (
	"context"
	"time"

	"github.com/msuleman526/tripshow/pkg/ports"
)

// Enricher resolves the decorative weather and altitude strings shown on
// per-point pages. Implementations never fail; a lookup problem yields
// ports.NotAvailable.
type Enricher interface {
	Weather(ctx context.Context, lat, lng float64, date time.Time) string
	Altitude(ctx context.Context, lat, lng float64) string
}

// LiveEnricher resolves enrichment through the public weather and
// elevation services. Used by the final PDF composition.
type LiveEnricher struct {
	weather   ports.WeatherService
	elevation ports.ElevationService
}

// NewLiveEnricher creates an Enricher backed by the given services.
func NewLiveEnricher(weather ports.WeatherService, elevation ports.ElevationService) *LiveEnricher {
	return &LiveEnricher{weather: weather, elevation: elevation}
}

// Weather returns the historical temperature string for the date.
func (e *LiveEnricher) Weather(ctx context.Context, lat, lng float64, date time.Time) string {
	return e.weather.Temperature(ctx, lat, lng, date)
}

// Altitude returns the elevation string for the location.
func (e *LiveEnricher) Altitude(ctx context.Context, lat, lng float64) string {
	return e.elevation.Elevation(ctx, lat, lng)
}

// StaticEnricher answers every lookup with ports.NotAvailable. The
// preview renderer uses it to stay fast; the resulting fidelity gap
// between preview and final output is deliberate.
type StaticEnricher struct{}

// Weather returns ports.NotAvailable.
func (StaticEnricher) Weather(ctx context.Context, lat, lng float64, date time.Time) string {
	return ports.NotAvailable
}

// Altitude returns ports.NotAvailable.
func (StaticEnricher) Altitude(ctx context.Context, lat, lng float64) string {
	return ports.NotAvailable
}

var (
	_ Enricher = (*LiveEnricher)(nil)
	_ Enricher = StaticEnricher{}
)

package ports

import (
	"context"
	"time"
)

// NotAvailable is the value enrichment services return when a lookup
// fails. Enrichment is decorative; its failure never aborts generation.
const NotAvailable = "N/A"

// WeatherService looks up the historical temperature for a location and
// date. The result is a display string such as "21°C", or NotAvailable.
// Implementations never return an error.
type WeatherService interface {
	Temperature(ctx context.Context, lat, lng float64, date time.Time) string
}

// ElevationService looks up the terrain elevation for a location. The
// result is a display string such as "340m", or NotAvailable.
// Implementations never return an error.
type ElevationService interface {
	Elevation(ctx context.Context, lat, lng float64) string
}

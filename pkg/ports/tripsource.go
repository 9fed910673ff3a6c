package ports

import (
	"context"

	"github.com/msuleman526/tripshow/pkg/trip"
)

// TripSource fetches the trip graph that gates all downstream work.
// Implementations perform a single-shot load with no retries; a failed or
// malformed response is reported as trip.ErrDataUnavailable.
type TripSource interface {
	// Fetch loads the trip, its points and its owner by trip identifier.
	Fetch(ctx context.Context, tripID string) (trip.Bundle, error)
}

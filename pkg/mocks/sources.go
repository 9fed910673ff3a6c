package mocks

import (
	"context"
	"time"

	"github.com/msuleman526/tripshow/pkg/ports"
	"github.com/msuleman526/tripshow/pkg/trip"
)

// MockTripSource is a TripSource backed by a function field.
type MockTripSource struct {
	FetchFunc func(ctx context.Context, tripID string) (trip.Bundle, error)

	FetchCalls []string
}

func (s *MockTripSource) Fetch(ctx context.Context, tripID string) (trip.Bundle, error) {
	s.FetchCalls = append(s.FetchCalls, tripID)
	if s.FetchFunc != nil {
		return s.FetchFunc(ctx, tripID)
	}
	return trip.Bundle{}, trip.ErrDataUnavailable
}

// MockWeatherService returns a fixed temperature string.
type MockWeatherService struct {
	TemperatureFunc func(ctx context.Context, lat, lng float64, date time.Time) string

	Calls int
}

func (s *MockWeatherService) Temperature(ctx context.Context, lat, lng float64, date time.Time) string {
	s.Calls++
	if s.TemperatureFunc != nil {
		return s.TemperatureFunc(ctx, lat, lng, date)
	}
	return ports.NotAvailable
}

// MockElevationService returns a fixed elevation string.
type MockElevationService struct {
	ElevationFunc func(ctx context.Context, lat, lng float64) string

	Calls int
}

func (s *MockElevationService) Elevation(ctx context.Context, lat, lng float64) string {
	s.Calls++
	if s.ElevationFunc != nil {
		return s.ElevationFunc(ctx, lat, lng)
	}
	return ports.NotAvailable
}

var (
	_ ports.TripSource       = (*MockTripSource)(nil)
	_ ports.WeatherService   = (*MockWeatherService)(nil)
	_ ports.ElevationService = (*MockElevationService)(nil)
)

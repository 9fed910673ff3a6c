// Package openmeteo looks up historical temperatures through the
// Open-Meteo archive API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/msuleman526/tripshow/pkg/ports"
)

// DefaultBaseURL is the public Open-Meteo archive endpoint.
const DefaultBaseURL = "https://archive-api.open-meteo.com/v1/archive"

// Service implements ports.WeatherService. Lookups are decorative:
// every failure path collapses to ports.NotAvailable and is logged at
// debug level only.
type Service struct {
	baseURL string
	client  *http.Client
	logger  ports.Logger
}

// New creates a new Service. A nil client uses http.DefaultClient.
func New(baseURL string, client *http.Client, logger ports.Logger) *Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Service{
		baseURL: baseURL,
		client:  client,
		logger:  logger.WithComponent("weather"),
	}
}

type archiveResponse struct {
	Hourly struct {
		Temperature []*float64 `json:"temperature_2m"`
	} `json:"hourly"`
}

// Temperature returns the day's average temperature as "<n>°C", or
// NotAvailable when the lookup fails or the day has no samples.
func (s *Service) Temperature(ctx context.Context, lat, lng float64, date time.Time) string {
	day := date.UTC().Format("2006-01-02")
	url := fmt.Sprintf("%s?latitude=%f&longitude=%f&start_date=%s&end_date=%s&hourly=temperature_2m",
		s.baseURL, lat, lng, day, day)

	body, err := s.get(ctx, url)
	if err != nil {
		s.logger.Debug("Weather lookup failed: %s", err)
		return ports.NotAvailable
	}

	var resp archiveResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		s.logger.Debug("Weather lookup failed: %s", err)
		return ports.NotAvailable
	}

	var sum float64
	var count int
	for _, t := range resp.Hourly.Temperature {
		if t == nil {
			continue
		}
		sum += *t
		count++
	}
	if count == 0 {
		return ports.NotAvailable
	}
	return fmt.Sprintf("%d°C", int(math.Round(sum/float64(count))))
}

func (s *Service) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

var _ ports.WeatherService = (*Service)(nil)

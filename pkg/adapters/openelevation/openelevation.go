// Package openelevation looks up terrain elevation through the
// Open-Elevation API.
package openelevation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/msuleman526/tripshow/pkg/ports"
)

// DefaultBaseURL is the public Open-Elevation lookup endpoint.
const DefaultBaseURL = "https://api.open-elevation.com/api/v1/lookup"

// Service implements ports.ElevationService with the same
// failure-absorbing contract as the weather service.
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
		logger:  logger.WithComponent("elevation"),
	}
}

type lookupResponse struct {
	Results []struct {
		Elevation float64 `json:"elevation"`
	} `json:"results"`
}

// Elevation returns the terrain elevation as "<n>m", or NotAvailable
// when the lookup fails or returns no results.
func (s *Service) Elevation(ctx context.Context, lat, lng float64) string {
	url := fmt.Sprintf("%s?locations=%f,%f", s.baseURL, lat, lng)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		s.logger.Debug("Elevation lookup failed: %s", err)
		return ports.NotAvailable
	}
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Debug("Elevation lookup failed: %s", err)
		return ports.NotAvailable
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Debug("Elevation lookup failed: status %d", resp.StatusCode)
		return ports.NotAvailable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Debug("Elevation lookup failed: %s", err)
		return ports.NotAvailable
	}
	var parsed lookupResponse
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Results) == 0 {
		return ports.NotAvailable
	}
	return fmt.Sprintf("%dm", int(math.Round(parsed.Results[0].Elevation)))
}

var _ ports.ElevationService = (*Service)(nil)

// Package tripapi fetches the trip bundle from the platform's
// video-data endpoint.
package tripapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/msuleman526/tripshow/pkg/ports"
	"github.com/msuleman526/tripshow/pkg/trip"
)

// Source implements ports.TripSource over HTTP. One fetch is one GET
// with no retries; any failure surfaces as trip.ErrDataUnavailable so
// the orchestrator can abort the whole run.
type Source struct {
	baseURL string
	client  *http.Client
	logger  ports.Logger
}

// New creates a new Source. A nil client uses http.DefaultClient.
func New(baseURL string, client *http.Client, logger ports.Logger) *Source {
	if client == nil {
		client = http.DefaultClient
	}
	return &Source{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger.WithComponent("tripapi"),
	}
}

// Fetch loads the trip, its points and its owner by trip identifier.
func (s *Source) Fetch(ctx context.Context, tripID string) (trip.Bundle, error) {
	url := fmt.Sprintf("%s/video-data/%s", s.baseURL, tripID)
	s.logger.Debug("Fetching trip data from %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return trip.Bundle{}, fmt.Errorf("%w: %v", trip.ErrDataUnavailable, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return trip.Bundle{}, fmt.Errorf("%w: %v", trip.ErrDataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return trip.Bundle{}, fmt.Errorf("%w: status %d", trip.ErrDataUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return trip.Bundle{}, fmt.Errorf("%w: %v", trip.ErrDataUnavailable, err)
	}

	var raw trip.RawBundle
	if err := json.Unmarshal(body, &raw); err != nil {
		return trip.Bundle{}, fmt.Errorf("%w: %v", trip.ErrDataUnavailable, err)
	}

	bundle, err := trip.Normalize(raw)
	if err != nil {
		return trip.Bundle{}, err
	}
	s.logger.Debug("Fetched trip %s with %d points", bundle.Trip.ID, len(bundle.Points))
	return bundle, nil
}

var _ ports.TripSource = (*Source)(nil)

// Package staticmap fetches a rendered route map from a static-map
// image service.
package staticmap

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/msuleman526/tripshow/pkg/ports"
)

// Provider implements ports.MapProvider against a static-map HTTP
// service: one marker per trip point and a polyline path connecting
// them in visit order.
type Provider struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	renderer ports.Renderer
	logger   ports.Logger
}

// New creates a new Provider. A nil client uses http.DefaultClient.
func New(baseURL, apiKey string, client *http.Client, renderer ports.Renderer, logger ports.Logger) *Provider {
	if client == nil {
		client = http.DefaultClient
	}
	return &Provider{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		client:   client,
		renderer: renderer,
		logger:   logger.WithComponent("staticmap"),
	}
}

// StaticMap fetches a map image covering all points.
func (p *Provider) StaticMap(ctx context.Context, points []ports.MapPoint, width, height int) (image.Image, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no points to map")
	}

	requestURL := p.buildURL(points, width, height)
	p.logger.Debug("Fetching static map for %d points", len(points))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build map request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch map: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch map: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read map response: %w", err)
	}
	img, err := p.renderer.DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("decode map image: %w", err)
	}
	return img, nil
}

// buildURL assembles the query: one marker per point plus a path
// through all points in order.
func (p *Provider) buildURL(points []ports.MapPoint, width, height int) string {
	q := url.Values{}
	q.Set("size", fmt.Sprintf("%dx%d", width, height))
	if p.apiKey != "" {
		q.Set("key", p.apiKey)
	}
	for _, pt := range points {
		q.Add("markers", fmt.Sprintf("%f,%f", pt.Lat, pt.Lng))
	}
	var path []string
	for _, pt := range points {
		path = append(path, fmt.Sprintf("%f,%f", pt.Lat, pt.Lng))
	}
	q.Set("path", strings.Join(path, "|"))
	return p.baseURL + "?" + q.Encode()
}

var _ ports.MapProvider = (*Provider)(nil)

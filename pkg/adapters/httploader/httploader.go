// Package httploader loads remote images over HTTP.
package httploader

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"

	"github.com/msuleman526/tripshow/pkg/ports"
)

// maxImageBytes caps a single media download. Trip photos are a few MB
// at most; anything larger is a broken upload.
const maxImageBytes = 32 << 20

// Loader implements ports.ImageLoader over HTTP.
type Loader struct {
	client   *http.Client
	renderer ports.Renderer
	logger   ports.Logger
}

// New creates a new Loader. A nil client uses http.DefaultClient.
func New(client *http.Client, renderer ports.Renderer, logger ports.Logger) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{
		client:   client,
		renderer: renderer,
		logger:   logger.WithComponent("loader"),
	}
}

// Load fetches and decodes the image at url.
func (l *Loader) Load(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("read image response: %w", err)
	}
	img, err := l.renderer.DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	l.logger.Debug("Loaded image %s (%dx%d)", url, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

var _ ports.ImageLoader = (*Loader)(nil)

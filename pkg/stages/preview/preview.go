// Package preview rasterizes the page descriptions into the flip-book
// page images shown before the PDF is generated.
package preview

import (
	"context"
	"fmt"

	"github.com/msuleman526/tripshow/pkg/adapters/canvaspage"
	"github.com/msuleman526/tripshow/pkg/pipeline"
	"github.com/msuleman526/tripshow/pkg/ports"
	"github.com/msuleman526/tripshow/pkg/stages/pages"
)

// Stage renders page descriptions through the raster backend. It
// consumes the same declarative pages as the book stage, so the
// preview and the PDF cannot drift apart structurally.
type Stage struct {
	renderer ports.Renderer
	deps     pages.RenderDeps
	logger   ports.Logger
}

// NewStage creates a new preview rendering stage.
func NewStage(renderer ports.Renderer, deps pages.RenderDeps, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		deps:     deps,
		logger:   logger.WithComponent("preview"),
	}
}

// Execute rasterizes every page at the preview size.
func (s *Stage) Execute(ctx context.Context, input pipeline.PreviewInput) (pipeline.PreviewResult, error) {
	if len(input.Pages) == 0 {
		return pipeline.PreviewResult{}, fmt.Errorf("no pages to render")
	}

	backend := canvaspage.New(s.renderer, input.RasterWidth)
	if err := pages.Render(ctx, input.Pages, backend, input.PageWidth, input.PageHeight, s.deps); err != nil {
		return pipeline.PreviewResult{}, fmt.Errorf("render pages: %w", err)
	}

	rendered := backend.Pages()
	s.logger.Info("Rendered %d preview pages", len(rendered))
	return pipeline.PreviewResult{Pages: rendered}, nil
}

var _ pipeline.Stage[pipeline.PreviewInput, pipeline.PreviewResult] = (*Stage)(nil)

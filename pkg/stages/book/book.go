// Package book composes the page descriptions into the final PDF
// travel book.
package book

import (
	"context"
	"fmt"

	"github.com/msuleman526/tripshow/pkg/adapters/fpdfpage"
	"github.com/msuleman526/tripshow/pkg/pipeline"
	"github.com/msuleman526/tripshow/pkg/ports"
	"github.com/msuleman526/tripshow/pkg/stages/pages"
)

// Stage renders page descriptions through the PDF backend.
type Stage struct {
	deps   pages.RenderDeps
	logger ports.Logger
}

// NewStage creates a new book composition stage.
func NewStage(deps pages.RenderDeps, logger ports.Logger) *Stage {
	return &Stage{
		deps:   deps,
		logger: logger.WithComponent("book"),
	}
}

// Execute renders every page into a PDF document.
func (s *Stage) Execute(ctx context.Context, input pipeline.BookInput) (pipeline.BookResult, error) {
	if len(input.Pages) == 0 {
		return pipeline.BookResult{}, fmt.Errorf("no pages to compose")
	}

	backend := fpdfpage.New()
	if err := pages.Render(ctx, input.Pages, backend, input.PageWidth, input.PageHeight, s.deps); err != nil {
		return pipeline.BookResult{}, fmt.Errorf("render pages: %w", err)
	}

	data, err := backend.Output()
	if err != nil {
		return pipeline.BookResult{}, fmt.Errorf("compose pdf: %w", err)
	}

	result := pipeline.BookResult{
		PDFData:   data,
		PageCount: backend.PageCount(),
		FileSize:  int64(len(data)),
	}
	s.logger.Info("Composed travel book: %d pages, %d bytes", result.PageCount, result.FileSize)
	return result, nil
}

var _ pipeline.Stage[pipeline.BookInput, pipeline.BookResult] = (*Stage)(nil)

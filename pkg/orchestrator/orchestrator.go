// Package orchestrator coordinates the generation pipelines: trip
// fetch, page composition and PDF output for the book, timeline
// recording and encoding for the video.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ideamans/go-l10n"

	"github.com/msuleman526/tripshow/pkg/pipeline"
	"github.com/msuleman526/tripshow/pkg/ports"
)

// Config contains all configuration for a generation run.
type Config struct {
	// Input
	TripID    string
	OutputDir string

	// Book
	PageWidth  float64
	PageHeight float64

	// Preview
	PreviewEnabled bool
	PreviewWidth   int

	// Video
	Timeline    pipeline.TimelineSpec
	FrameWidth  int
	FrameHeight int
	FPS         float64
	Quality     int    // CRF 0-63
	Bitrate     int    // kbps, 0 = encoder default
	Format      string // "webm" or "mp4"
	AudioPath   string
	SettlingMs  int

	// Sharing
	ShareEnabled bool
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() Config {
	return Config{
		OutputDir: ".",

		PageWidth:  595,
		PageHeight: 842,

		PreviewWidth: 595,

		Timeline:    pipeline.DefaultTimelineSpec(),
		FrameWidth:  1080,
		FrameHeight: 1920,
		FPS:         30.0,
		Quality:     30,
		Format:      "webm",
		SettlingMs:  500,
	}
}

// RunResult summarizes a completed generation run.
type RunResult struct {
	TripName   string
	OutputPath string
	FileSize   int64

	// Book fields
	PageCount int

	// Video fields
	DurationMs int
	Shared     bool
	ShareLink  bool
}

// Orchestrator coordinates the execution of the generation stages.
type Orchestrator struct {
	source       ports.TripSource
	pagesStage   pipeline.Stage[pipeline.PagesInput, pipeline.PagesResult]
	bookStage    pipeline.Stage[pipeline.BookInput, pipeline.BookResult]
	previewStage pipeline.Stage[pipeline.PreviewInput, pipeline.PreviewResult]
	captureStage pipeline.Stage[pipeline.CaptureInput, pipeline.CaptureResult]
	fs           ports.FileSystem
	sink         ports.DebugSink
	sharer       ports.Sharer
	fallback     ports.Sharer
	logger       ports.Logger
}

// New creates a new Orchestrator. The fallback sharer is used when the
// primary sharer reports ErrShareUnsupported.
func New(
	source ports.TripSource,
	pagesStage pipeline.Stage[pipeline.PagesInput, pipeline.PagesResult],
	bookStage pipeline.Stage[pipeline.BookInput, pipeline.BookResult],
	previewStage pipeline.Stage[pipeline.PreviewInput, pipeline.PreviewResult],
	captureStage pipeline.Stage[pipeline.CaptureInput, pipeline.CaptureResult],
	fs ports.FileSystem,
	sink ports.DebugSink,
	sharer ports.Sharer,
	fallback ports.Sharer,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		source:       source,
		pagesStage:   pagesStage,
		bookStage:    bookStage,
		previewStage: previewStage,
		captureStage: captureStage,
		fs:           fs,
		sink:         sink,
		sharer:       sharer,
		fallback:     fallback,
		logger:       logger,
	}
}

// RunBook generates the PDF travel book for a trip.
func (o *Orchestrator) RunBook(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.F("Generating travel book for trip %s", config.TripID))

	bundle, err := o.source.Fetch(ctx, config.TripID)
	if err != nil {
		o.logger.Error(l10n.F("Failed to load trip data: %s", err))
		return RunResult{}, fmt.Errorf("fetch trip: %w", err)
	}
	o.logger.Info(l10n.F("Loaded trip %q: %d points", bundle.Trip.Name, len(bundle.Points)))

	pagesResult, err := o.pagesStage.Execute(ctx, pipeline.PagesInput{
		Bundle:     bundle,
		PageWidth:  config.PageWidth,
		PageHeight: config.PageHeight,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to build pages: %s", err))
		return RunResult{}, fmt.Errorf("pages stage: %w", err)
	}
	o.logger.Info(l10n.F("Built %d pages", len(pagesResult.Pages)))

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(pagesResult.Stats, "", "  "); err == nil {
			o.sink.SaveStatsJSON(data)
		}
		if data, err := json.MarshalIndent(pagesResult.Pages, "", "  "); err == nil {
			o.sink.SavePagesJSON(data)
		}
	}

	if config.PreviewEnabled {
		previewResult, err := o.previewStage.Execute(ctx, pipeline.PreviewInput{
			Pages:       pagesResult.Pages,
			PageWidth:   config.PageWidth,
			PageHeight:  config.PageHeight,
			RasterWidth: config.PreviewWidth,
		})
		if err != nil {
			o.logger.Error(l10n.F("Failed to render preview: %s", err))
			return RunResult{}, fmt.Errorf("preview stage: %w", err)
		}
		if o.sink.Enabled() {
			for i, page := range previewResult.Pages {
				o.sink.SavePreviewPage(i, page)
			}
		}
	}

	book, err := o.bookStage.Execute(ctx, pipeline.BookInput{
		Pages:      pagesResult.Pages,
		PageWidth:  config.PageWidth,
		PageHeight: config.PageHeight,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to compose book: %s", err))
		return RunResult{}, fmt.Errorf("book stage: %w", err)
	}

	outputPath := filepath.Join(config.OutputDir, artifactName(bundle.Trip.Name)+"_Travel_Book.pdf")
	if err := o.fs.WriteFile(outputPath, book.PDFData); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}
	o.logger.Info(l10n.F("Travel book saved to %s", outputPath))

	return RunResult{
		TripName:   bundle.Trip.Name,
		OutputPath: outputPath,
		FileSize:   book.FileSize,
		PageCount:  book.PageCount,
	}, nil
}

// RunVideo generates the narrated vertical video for a trip and
// optionally hands it to the platform share mechanism.
func (o *Orchestrator) RunVideo(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.F("Generating video for trip %s", config.TripID))

	bundle, err := o.source.Fetch(ctx, config.TripID)
	if err != nil {
		o.logger.Error(l10n.F("Failed to load trip data: %s", err))
		return RunResult{}, fmt.Errorf("fetch trip: %w", err)
	}
	o.logger.Info(l10n.F("Loaded trip %q: %d points", bundle.Trip.Name, len(bundle.Points)))

	captured, err := o.captureStage.Execute(ctx, pipeline.CaptureInput{
		Bundle:     bundle,
		Spec:       config.Timeline,
		Width:      config.FrameWidth,
		Height:     config.FrameHeight,
		FPS:        config.FPS,
		Quality:    config.Quality,
		Bitrate:    config.Bitrate,
		AudioPath:  config.AudioPath,
		SettlingMs: config.SettlingMs,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to capture video: %s", err))
		return RunResult{}, fmt.Errorf("capture stage: %w", err)
	}

	suffix := "_with_audio.webm"
	if config.Format == "mp4" {
		suffix = ".mp4"
	}
	outputPath := filepath.Join(config.OutputDir, artifactName(bundle.Trip.Name)+suffix)
	if err := o.fs.WriteFile(outputPath, captured.VideoData); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}
	o.logger.Info(l10n.F("Video saved to %s", outputPath))

	result := RunResult{
		TripName:   bundle.Trip.Name,
		OutputPath: outputPath,
		FileSize:   captured.FileSize,
		DurationMs: captured.DurationMs,
	}

	if config.ShareEnabled {
		result.Shared, result.ShareLink = o.share(ctx, outputPath, bundle.Trip.Name)
	}
	return result, nil
}

// share attempts the platform share sheet, falling back to the link
// flow when the platform cannot share files.
func (o *Orchestrator) share(ctx context.Context, path, title string) (shared, viaLink bool) {
	err := o.sharer.ShareFile(ctx, path, title)
	if err == nil {
		return true, false
	}
	if !errors.Is(err, ports.ErrShareUnsupported) {
		o.logger.Warn(l10n.F("Sharing failed: %s", err))
		return false, false
	}
	o.logger.Info(l10n.T("Sharing not supported, falling back to link"))
	if err := o.fallback.ShareFile(ctx, path, title); err != nil {
		o.logger.Warn(l10n.F("Share link fallback failed: %s", err))
		return false, false
	}
	return true, true
}

// artifactName makes a trip name safe for use in a file name.
func artifactName(tripName string) string {
	name := strings.TrimSpace(tripName)
	name = strings.ReplaceAll(name, " ", "_")
	for _, c := range []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"} {
		name = strings.ReplaceAll(name, c, "")
	}
	if name == "" {
		name = "Trip"
	}
	return name
}

// Package main provides the CLI entry point for tripshow.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/msuleman526/tripshow/pkg/adapters/assetdir"
	"github.com/msuleman526/tripshow/pkg/adapters/ffmpegpath"
	"github.com/msuleman526/tripshow/pkg/adapters/filesink"
	"github.com/msuleman526/tripshow/pkg/adapters/ggrenderer"
	"github.com/msuleman526/tripshow/pkg/adapters/httploader"
	"github.com/msuleman526/tripshow/pkg/adapters/linkshare"
	"github.com/msuleman526/tripshow/pkg/adapters/logger"
	"github.com/msuleman526/tripshow/pkg/adapters/mp4encoder"
	"github.com/msuleman526/tripshow/pkg/adapters/nullsink"
	"github.com/msuleman526/tripshow/pkg/adapters/openelevation"
	"github.com/msuleman526/tripshow/pkg/adapters/openmeteo"
	"github.com/msuleman526/tripshow/pkg/adapters/osfilesystem"
	"github.com/msuleman526/tripshow/pkg/adapters/staticmap"
	"github.com/msuleman526/tripshow/pkg/adapters/tripapi"
	"github.com/msuleman526/tripshow/pkg/adapters/webmencoder"
	"github.com/msuleman526/tripshow/pkg/config"
	"github.com/msuleman526/tripshow/pkg/orchestrator"
	"github.com/msuleman526/tripshow/pkg/pipeline"
	"github.com/msuleman526/tripshow/pkg/ports"
	"github.com/msuleman526/tripshow/pkg/stages/book"
	"github.com/msuleman526/tripshow/pkg/stages/capture"
	"github.com/msuleman526/tripshow/pkg/stages/frames"
	"github.com/msuleman526/tripshow/pkg/stages/pages"
	"github.com/msuleman526/tripshow/pkg/stages/preview"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Book    BookCmd    `cmd:"" help:"Generate a PDF travel book for a trip."`
	Preview PreviewCmd `cmd:"" help:"Render the flip-book preview pages for a trip."`
	Video   VideoCmd   `cmd:"" help:"Generate a narrated vertical video for a trip."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// commonFlags holds the options shared by the generation commands.
type commonFlags struct {
	// Required arguments
	TripID string `arg:"" help:"Trip identifier to generate from."`

	// Output
	OutputDir string `short:"o" default:"." help:"Directory for the generated artifact."`

	// Configuration file
	Config string `short:"C" help:"Path to a YAML configuration file."`

	// Services
	APIBaseURL string `help:"Trip API base URL."`
	MapAPIKey  string `help:"Static map provider API key (falls back to MAP_API_KEY env)."`
	AssetsDir  string `help:"Directory holding flags, shapes and icons."`

	// Debug options
	Debug    bool   `short:"d" help:"Enable debug output."`
	DebugDir string `help:"Directory for debug output."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// BookCmd defines the book subcommand.
type BookCmd struct {
	commonFlags

	// Page options
	PageWidth  *float64 `help:"Page width in points (default: 595)."`
	PageHeight *float64 `help:"Page height in points (default: 842)."`

	// Preview options
	Preview      bool `help:"Render raster preview pages alongside the PDF."`
	PreviewWidth *int `help:"Preview raster width in pixels (default: 595)."`
}

// PreviewCmd defines the preview subcommand. It runs the book pipeline
// with the raster preview enabled and writes the pages to the output
// directory instead of a debug location.
type PreviewCmd struct {
	commonFlags

	PageWidth    *float64 `help:"Page width in points (default: 595)."`
	PageHeight   *float64 `help:"Page height in points (default: 842)."`
	PreviewWidth *int     `help:"Preview raster width in pixels (default: 595)."`
}

// VideoCmd defines the video subcommand.
type VideoCmd struct {
	commonFlags

	// Frame options
	Width  *int     `short:"W" help:"Frame width (default: 1080)."`
	Height *int     `short:"H" help:"Frame height (default: 1920)."`
	FPS    *float64 `help:"Frames per second (default: 30)."`

	// Encoding options
	Quality    *int   `short:"q" help:"Video quality (CRF 0-63, lower is better)."`
	Bitrate    *int   `help:"Target bitrate in kbps (0 = quality mode)."`
	Format     string `short:"f" default:"webm" enum:"webm,mp4" help:"Output container (webm or mp4)."`
	Audio      string `short:"a" help:"Path to the narration audio file."`
	SettlingMs *int   `help:"Duration to hold final frame in milliseconds."`
	FFmpegPath string `help:"Path to ffmpeg executable (falls back to FFMPEG_PATH env, then system default)."`

	// Sharing
	Share bool `help:"Hand the video to the platform share mechanism."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("tripshow"),
		kong.Description("Generate travel books and trip videos from recorded trips."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the book command.
func (cmd *BookCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	log := newLogger(cmd.Quiet, cmd.LogLevel)
	ctx, cancel := signalContext(log)
	defer cancel()

	deps, err := newRuntime(cfg, log, cmd.Debug)
	if err != nil {
		return err
	}

	orch := orchestrator.New(
		deps.source,
		deps.pagesStage,
		book.NewStage(deps.renderDeps, log),
		preview.NewStage(deps.renderer, deps.renderDeps, log),
		nil,
		deps.fs,
		deps.sink,
		linkshare.Unsupported{},
		linkshare.New(deps.fs, log),
		log,
	)

	log.Info(l10n.F("Generating travel book for trip %s...", cfg.TripID))

	result, err := orch.RunBook(ctx, cfg.ToOrchestratorConfig())
	if err != nil {
		return err
	}

	log.Info(l10n.F("Output saved to %s (%d pages)", result.OutputPath, result.PageCount))
	return nil
}

// Run executes the preview command.
func (cmd *PreviewCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	log := newLogger(cmd.Quiet, cmd.LogLevel)
	ctx, cancel := signalContext(log)
	defer cancel()

	deps, err := newRuntime(cfg, log, false)
	if err != nil {
		return err
	}

	bundle, err := deps.source.Fetch(ctx, cfg.TripID)
	if err != nil {
		return fmt.Errorf("fetch trip: %w", err)
	}

	// The preview never performs live lookups; weather and altitude
	// stay stubbed so the pages render offline.
	pagesResult, err := previewPagesStage(log).Execute(ctx, pipeline.PagesInput{
		Bundle:     bundle,
		PageWidth:  cfg.PageWidth,
		PageHeight: cfg.PageHeight,
	})
	if err != nil {
		return fmt.Errorf("pages stage: %w", err)
	}

	previewResult, err := preview.NewStage(deps.renderer, deps.renderDeps, log).Execute(ctx, pipeline.PreviewInput{
		Pages:       pagesResult.Pages,
		PageWidth:   cfg.PageWidth,
		PageHeight:  cfg.PageHeight,
		RasterWidth: cfg.PreviewWidth,
	})
	if err != nil {
		return fmt.Errorf("preview stage: %w", err)
	}

	if err := deps.fs.MkdirAll(cfg.OutputDir); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	sink := filesink.New(cfg.OutputDir, deps.fs, deps.renderer)
	for i, page := range previewResult.Pages {
		if err := sink.SavePreviewPage(i, page); err != nil {
			return fmt.Errorf("save preview page %d: %w", i, err)
		}
	}

	log.Info(l10n.F("Saved %d preview pages to %s", len(previewResult.Pages), cfg.OutputDir))
	return nil
}

// buildConfig resolves the preview configuration from file and flags.
func (cmd *PreviewCmd) buildConfig() (config.Config, error) {
	cfg, err := cmd.commonFlags.load()
	if err != nil {
		return cfg, err
	}

	if cmd.PageWidth != nil {
		cfg.PageWidth = *cmd.PageWidth
	}
	if cmd.PageHeight != nil {
		cfg.PageHeight = *cmd.PageHeight
	}
	if cmd.PreviewWidth != nil {
		cfg.PreviewWidth = *cmd.PreviewWidth
	}
	cfg.Preview = true

	return cfg, nil
}

// Run executes the video command.
func (cmd *VideoCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	log := newLogger(cmd.Quiet, cmd.LogLevel)
	ctx, cancel := signalContext(log)
	defer cancel()

	if cfg.FFmpegPath != "" {
		ffmpegpath.Set(cfg.FFmpegPath)
	}

	deps, err := newRuntime(cfg, log, cmd.Debug)
	if err != nil {
		return err
	}

	var encoder ports.VideoEncoder
	if cfg.Format == "mp4" {
		encoder = mp4encoder.New()
	} else {
		encoder = webmencoder.New()
	}

	assetDeps := frames.AssetDeps{
		Loader: deps.loader,
		Assets: deps.assets,
		Logger: log,
	}

	orch := orchestrator.New(
		deps.source,
		deps.pagesStage,
		nil,
		nil,
		capture.NewStage(deps.renderer, encoder, assetDeps, deps.sink, log),
		deps.fs,
		deps.sink,
		linkshare.Unsupported{},
		linkshare.New(deps.fs, log),
		log,
	)

	log.Info(l10n.F("Generating video for trip %s...", cfg.TripID))

	result, err := orch.RunVideo(ctx, cfg.ToOrchestratorConfig())
	if err != nil {
		return err
	}

	log.Info(l10n.F("Output saved to %s (%dms)", result.OutputPath, result.DurationMs))
	if result.Shared {
		if result.ShareLink {
			log.Info(l10n.T("Shared via link fallback"))
		} else {
			log.Info(l10n.T("Shared via platform share sheet"))
		}
	}
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("tripshow version %s", version))
	return nil
}

// runtime bundles the adapters and shared stages a command wires up.
type runtime struct {
	fs         ports.FileSystem
	renderer   ports.Renderer
	source     ports.TripSource
	loader     ports.ImageLoader
	assets     ports.AssetStore
	sink       ports.DebugSink
	renderDeps pages.RenderDeps
	pagesStage *pages.Stage
}

// newRuntime creates the adapters every command needs.
func newRuntime(cfg config.Config, log ports.Logger, debug bool) (*runtime, error) {
	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	client := &http.Client{Timeout: 30 * time.Second}

	source := tripapi.New(cfg.APIBaseURL, client, log)
	loader := httploader.New(client, renderer, log)
	assets := assetdir.New(cfg.AssetsDir, fs, renderer)
	maps := staticmap.New(cfg.MapURL, cfg.MapAPIKey, client, renderer, log)
	weather := openmeteo.New(cfg.WeatherURL, client, log)
	elevation := openelevation.New(cfg.ElevationURL, client, log)

	var sink ports.DebugSink
	if debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	renderDeps := pages.RenderDeps{
		Loader: loader,
		Assets: assets,
		Maps:   maps,
		Logger: log,
	}

	return &runtime{
		fs:         fs,
		renderer:   renderer,
		source:     source,
		loader:     loader,
		assets:     assets,
		sink:       sink,
		renderDeps: renderDeps,
		pagesStage: pages.NewStage(pages.NewLiveEnricher(weather, elevation), log),
	}, nil
}

// previewPagesStage builds page descriptions with enrichment stubbed
// to ports.NotAvailable.
func previewPagesStage(log ports.Logger) *pages.Stage {
	return pages.NewStage(pages.StaticEnricher{}, log)
}

// newLogger creates the command logger.
func newLogger(quiet bool, level string) ports.Logger {
	if quiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(level))
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	return ctx, cancel
}

// buildConfig resolves the book configuration from file and flags.
func (cmd *BookCmd) buildConfig() (config.Config, error) {
	cfg, err := cmd.commonFlags.load()
	if err != nil {
		return cfg, err
	}

	if cmd.PageWidth != nil {
		cfg.PageWidth = *cmd.PageWidth
	}
	if cmd.PageHeight != nil {
		cfg.PageHeight = *cmd.PageHeight
	}
	if cmd.Preview {
		cfg.Preview = true
	}
	if cmd.PreviewWidth != nil {
		cfg.PreviewWidth = *cmd.PreviewWidth
	}

	return cfg, nil
}

// buildConfig resolves the video configuration from file and flags.
func (cmd *VideoCmd) buildConfig() (config.Config, error) {
	cfg, err := cmd.commonFlags.load()
	if err != nil {
		return cfg, err
	}

	if cmd.Width != nil {
		cfg.FrameWidth = *cmd.Width
	}
	if cmd.Height != nil {
		cfg.FrameHeight = *cmd.Height
	}
	if cmd.FPS != nil {
		cfg.FPS = *cmd.FPS
	}
	if cmd.Quality != nil {
		cfg.Quality = *cmd.Quality
	}
	if cmd.Bitrate != nil {
		cfg.Bitrate = *cmd.Bitrate
	}
	if cmd.Format != "" {
		cfg.Format = cmd.Format
	}
	if cmd.Audio != "" {
		cfg.AudioPath = cmd.Audio
	}
	if cmd.SettlingMs != nil {
		cfg.SettlingMs = *cmd.SettlingMs
	}
	if cmd.FFmpegPath != "" {
		cfg.FFmpegPath = cmd.FFmpegPath
	}
	if cmd.Share {
		cfg.Share = true
	}

	return cfg, nil
}

// load resolves the shared configuration from file and common flags.
func (f *commonFlags) load() (config.Config, error) {
	cfg := config.Defaults()
	if f.Config != "" {
		loaded, err := config.LoadFromFile(f.Config)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	cfg.TripID = f.TripID
	if f.OutputDir != "" {
		cfg.OutputDir = f.OutputDir
	}
	if f.APIBaseURL != "" {
		cfg.APIBaseURL = f.APIBaseURL
	}
	if f.MapAPIKey != "" {
		cfg.MapAPIKey = f.MapAPIKey
	} else if env := os.Getenv("MAP_API_KEY"); env != "" && cfg.MapAPIKey == "" {
		cfg.MapAPIKey = env
	}
	if f.AssetsDir != "" {
		cfg.AssetsDir = f.AssetsDir
	}
	if f.DebugDir != "" {
		cfg.DebugDir = f.DebugDir
	}
	cfg.Debug = f.Debug
	cfg.LogLevel = f.LogLevel

	return cfg, nil
}

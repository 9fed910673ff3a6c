// Package capture drives the frame renderer at a fixed frame rate and
// feeds the encoder, producing the final video artifact.
package capture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/msuleman526/tripshow/pkg/pipeline"
	"github.com/msuleman526/tripshow/pkg/ports"
	"github.com/msuleman526/tripshow/pkg/stages/frames"
)

// ErrEncodingFailed is returned when the encoder finishes without
// producing any data.
var ErrEncodingFailed = errors.New("capture: encoding produced no data")

// thumbnailWidth is the poster image width; height follows the frame
// aspect.
const thumbnailWidth = 360

// Stage records the timeline into an encoded video.
type Stage struct {
	renderer  ports.Renderer
	encoder   ports.VideoEncoder
	assetDeps frames.AssetDeps
	sink      ports.DebugSink
	logger    ports.Logger
}

// NewStage creates a new capture stage.
func NewStage(renderer ports.Renderer, encoder ports.VideoEncoder, assetDeps frames.AssetDeps, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer:  renderer,
		encoder:   encoder,
		assetDeps: assetDeps,
		sink:      sink,
		logger:    logger.WithComponent("capture"),
	}
}

// Execute renders and encodes every frame of the timeline. The encoder
// process is always finalized, even when the run fails partway.
func (s *Stage) Execute(ctx context.Context, input pipeline.CaptureInput) (pipeline.CaptureResult, error) {
	timeline := frames.NewTimeline(input.Bundle, input.Spec)
	durationMs := int(math.Round(timeline.Duration() * 1000))
	totalMs := durationMs + input.SettlingMs

	if s.sink.Enabled() {
		if data, err := json.MarshalIndent(timeline, "", "  "); err == nil {
			s.sink.SaveTimelineJSON(data)
		}
	}

	s.logger.Info("Loading %d slide images", len(timeline.Slides))
	cache := frames.LoadAssets(ctx, timeline, s.assetDeps)
	renderer := frames.NewRenderer(timeline, cache, input.Width, input.Height)

	err := s.encoder.Begin(input.Width, input.Height, input.FPS, ports.EncoderOptions{
		Bitrate:    input.Bitrate,
		Quality:    input.Quality,
		AudioPath:  input.AudioPath,
		DurationMs: totalMs,
	})
	if err != nil {
		return pipeline.CaptureResult{}, fmt.Errorf("begin encoding: %w", err)
	}
	finalized := false
	defer func() {
		// Never leak a running encoder process.
		if !finalized {
			s.encoder.End()
		}
	}()

	frameCount := int(math.Ceil(float64(totalMs) / 1000 * input.FPS))
	s.logger.Info("Recording %d frames at %.0f fps (%d ms)", frameCount, input.FPS, totalMs)

	var thumbnailSource image.Image
	for i := 0; i < frameCount; i++ {
		if err := ctx.Err(); err != nil {
			return pipeline.CaptureResult{}, err
		}

		elapsedSec := float64(i) / input.FPS
		// The settling tail holds the final frame.
		if limit := timeline.Duration(); elapsedSec > limit {
			elapsedSec = limit
		}

		canvas := s.renderer.CreateCanvas(input.Width, input.Height, color.Black)
		renderer.RenderFrame(canvas, elapsedSec)
		img := canvas.ToImage()

		if i == 0 {
			thumbnailSource = img
		}
		if s.sink.Enabled() {
			s.sink.SaveFrame(i, img)
		}

		timestampMs := i * 1000 / int(input.FPS)
		if err := s.encoder.EncodeFrame(img, timestampMs); err != nil {
			return pipeline.CaptureResult{}, fmt.Errorf("encode frame %d: %w", i, err)
		}
	}

	finalized = true
	data, err := s.encoder.End()
	if err != nil {
		return pipeline.CaptureResult{}, fmt.Errorf("finalize encoding: %w", err)
	}
	if len(data) == 0 {
		return pipeline.CaptureResult{}, ErrEncodingFailed
	}

	result := pipeline.CaptureResult{
		VideoData:  data,
		DurationMs: totalMs,
		FileSize:   int64(len(data)),
	}
	if thumbnailSource != nil {
		thumbHeight := thumbnailWidth * input.Height / input.Width
		result.Thumbnail = imaging.Resize(thumbnailSource, thumbnailWidth, thumbHeight, imaging.Lanczos)
		if s.sink.Enabled() {
			s.sink.SaveThumbnail(result.Thumbnail)
		}
	}

	s.logger.Info("Captured video: %d ms, %d bytes", result.DurationMs, result.FileSize)
	return result, nil
}

var _ pipeline.Stage[pipeline.CaptureInput, pipeline.CaptureResult] = (*Stage)(nil)

// Package mp4encoder encodes composed frames into an MP4 container.
// ffmpeg produces an H.264 Annex B elementary stream; the container is
// assembled in-process with mp4ff. MP4 output is video-only and meant
// for players that cannot handle WebM.
package mp4encoder

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/msuleman526/tripshow/pkg/adapters/ffmpegpath"
	"github.com/msuleman526/tripshow/pkg/ports"
)

// Encoder implements ports.VideoEncoder producing MP4 output.
type Encoder struct {
	mu sync.Mutex

	width        int
	height       int
	fps          float64
	cmd          *exec.Cmd
	stdin        io.WriteCloser
	stderr       bytes.Buffer
	tempPath     string
	timestampsMs []int
	closed       bool
}

// New creates a new MP4 encoder.
func New() *Encoder {
	return &Encoder{}
}

// Begin starts the ffmpeg process producing an elementary stream.
func (e *Encoder) Begin(width, height int, fps float64, opts ports.EncoderOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if opts.AudioPath != "" {
		return ErrAudioUnsupported
	}
	ffmpeg, err := ffmpegpath.Find()
	if err != nil {
		return err
	}

	e.width = width
	e.height = height
	e.fps = fps
	e.timestampsMs = nil
	e.closed = false

	tmpFile, err := os.CreateTemp("", "mp4encode_*.h264")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	e.tempPath = tmpFile.Name()
	tmpFile.Close()

	crf := 23
	if opts.Quality > 0 && opts.Quality <= 63 {
		crf = opts.Quality * 51 / 63
	}
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", fmt.Sprintf("%.2f", fps),
		"-i", "pipe:0",
		"-c:v", "libx264",
		"-preset", "fast",
		"-pix_fmt", "yuv420p",
		"-profile:v", "baseline",
		"-crf", fmt.Sprintf("%d", crf),
		// Access unit delimiters let us split the stream into samples.
		"-x264-params", "aud=1",
	}
	if opts.Bitrate > 0 {
		args = append(args, "-b:v", fmt.Sprintf("%dk", opts.Bitrate))
	}
	args = append(args, "-f", "h264", e.tempPath)

	e.cmd = exec.Command(ffmpeg, args...)
	e.cmd.Stderr = &e.stderr

	stdin, err := e.cmd.StdinPipe()
	if err != nil {
		os.Remove(e.tempPath)
		return fmt.Errorf("get stdin pipe: %w", err)
	}
	e.stdin = stdin

	if err := e.cmd.Start(); err != nil {
		os.Remove(e.tempPath)
		return fmt.Errorf("start ffmpeg: %w", err)
	}
	return nil
}

// EncodeFrame streams one frame as raw RGBA to ffmpeg.
func (e *Encoder) EncodeFrame(img image.Image, timestampMs int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stdin == nil || e.closed {
		return ErrNotInitialized
	}

	rgba := image.NewRGBA(image.Rect(0, 0, e.width, e.height))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)

	if _, err := e.stdin.Write(rgba.Pix); err != nil {
		return fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}
	e.timestampsMs = append(e.timestampsMs, timestampMs)
	return nil
}

// End waits for ffmpeg, splits the elementary stream into access units
// and muxes them into an MP4 container.
func (e *Encoder) End() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stdin == nil || e.closed {
		return nil, ErrNotInitialized
	}
	e.stdin.Close()
	e.stdin = nil
	e.closed = true

	if err := e.cmd.Wait(); err != nil {
		os.Remove(e.tempPath)
		e.tempPath = ""
		return nil, fmt.Errorf("%w: %v\nstderr: %s", ErrEncodingFailed, err, e.stderr.String())
	}

	stream, err := os.ReadFile(e.tempPath)
	os.Remove(e.tempPath)
	e.tempPath = ""
	if err != nil {
		return nil, fmt.Errorf("read elementary stream: %w", err)
	}

	units := splitAccessUnits(stream)
	if len(units) == 0 {
		return nil, ErrNoFrames
	}
	return e.buildMP4(units)
}

var _ ports.VideoEncoder = (*Encoder)(nil)

// Package webmencoder encodes composed frames into a WebM container
// (VP9 video, Opus audio) through an external ffmpeg process. This is
// the primary output format: the narration track is muxed in during
// encoding, never as a separate pass.
package webmencoder

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

// Encoder implements ports.VideoEncoder producing WebM output.
type Encoder struct {
	mu sync.Mutex

	width    int
	height   int
	fps      float64
	opts     ports.EncoderOptions
	cmd      *exec.Cmd
	stdin    io.WriteCloser
	stderr   bytes.Buffer
	tempPath string
	closed   bool
}

// New creates a new WebM encoder.
func New() *Encoder {
	return &Encoder{}
}

// Begin starts the ffmpeg process. When opts.AudioPath is set, the
// audio file must exist: a run that cannot include its narration must
// fail here rather than produce a silent video.
func (e *Encoder) Begin(width, height int, fps float64, opts ports.EncoderOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ffmpeg, err := ffmpegpath.Find()
	if err != nil {
		return err
	}
	if opts.AudioPath != "" {
		if _, err := os.Stat(opts.AudioPath); err != nil {
			return fmt.Errorf("audio file unavailable: %w", err)
		}
	}

	e.width = width
	e.height = height
	e.fps = fps
	e.opts = opts
	e.closed = false

	tmpFile, err := os.CreateTemp("", "webmencode_*.webm")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	e.tempPath = tmpFile.Name()
	tmpFile.Close()

	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", fmt.Sprintf("%.2f", fps),
		"-i", "pipe:0",
	}
	if opts.AudioPath != "" {
		args = append(args, "-i", opts.AudioPath)
	}
	args = append(args,
		"-c:v", "libvpx-vp9",
		"-pix_fmt", "yuv420p",
		"-deadline", "realtime",
		"-cpu-used", "5",
	)
	if opts.Quality > 0 && opts.Quality <= 63 {
		args = append(args, "-crf", fmt.Sprintf("%d", opts.Quality), "-b:v", "0")
	} else {
		args = append(args, "-crf", "32", "-b:v", "0")
	}
	if opts.Bitrate > 0 {
		args = append(args, "-b:v", fmt.Sprintf("%dk", opts.Bitrate))
	}
	if opts.AudioPath != "" {
		args = append(args, "-c:a", "libopus", "-b:a", "96k")
		// Narration may be longer than the slideshow; clamp to video.
		if opts.DurationMs > 0 {
			args = append(args, "-t", fmt.Sprintf("%.3f", float64(opts.DurationMs)/1000))
		} else {
			args = append(args, "-shortest")
		}
	}
	args = append(args, e.tempPath)

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
	return nil
}

// End closes the stream, waits for ffmpeg and returns the WebM bytes.
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

	data, err := os.ReadFile(e.tempPath)
	os.Remove(e.tempPath)
	e.tempPath = ""
	if err != nil {
		return nil, fmt.Errorf("read output: %w", err)
	}
	return data, nil
}

var _ ports.VideoEncoder = (*Encoder)(nil)

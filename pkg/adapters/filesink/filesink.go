// Package filesink saves intermediate generation results to a debug
// directory.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/msuleman526/tripshow/pkg/ports"
)

// Sink saves debug output to files under a base directory.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new Sink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveStatsJSON saves the derived trip statistics as JSON.
func (s *Sink) SaveStatsJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "stats.json"), data)
}

// SavePagesJSON saves the declarative page description as JSON.
func (s *Sink) SavePagesJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "pages.json"), data)
}

// SaveTimelineJSON saves the video timeline as JSON.
func (s *Sink) SaveTimelineJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "timeline.json"), data)
}

// SavePreviewPage saves one rasterized preview page.
func (s *Sink) SavePreviewPage(index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, "preview")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode preview page: %w", err)
	}
	return s.fs.WriteFile(filepath.Join(dir, fmt.Sprintf("page-%03d.png", index)), data)
}

// SaveFrame saves one composed video frame.
func (s *Sink) SaveFrame(index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, "frames")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.renderer.EncodeImage(img, ports.FormatJPEG, 85)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return s.fs.WriteFile(filepath.Join(dir, fmt.Sprintf("frame-%05d.jpg", index)), data)
}

// SaveThumbnail saves the captured video thumbnail.
func (s *Sink) SaveThumbnail(img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatJPEG, 85)
	if err != nil {
		return fmt.Errorf("encode thumbnail: %w", err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, "thumbnail.jpg"), data)
}

var _ ports.DebugSink = (*Sink)(nil)

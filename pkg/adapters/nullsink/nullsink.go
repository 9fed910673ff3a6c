// Package nullsink provides a no-op debug sink for normal runs.
package nullsink

import (
	"image"

	"github.com/msuleman526/tripshow/pkg/ports"
)

// Sink discards all debug output.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards output.
func (s *Sink) Enabled() bool { return false }

func (s *Sink) SaveStatsJSON(data []byte) error                { return nil }
func (s *Sink) SavePagesJSON(data []byte) error                { return nil }
func (s *Sink) SaveTimelineJSON(data []byte) error             { return nil }
func (s *Sink) SavePreviewPage(index int, _ image.Image) error { return nil }
func (s *Sink) SaveFrame(index int, _ image.Image) error       { return nil }
func (s *Sink) SaveThumbnail(_ image.Image) error              { return nil }

var _ ports.DebugSink = (*Sink)(nil)

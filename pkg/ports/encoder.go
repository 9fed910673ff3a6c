package ports

import (
	"image"
)

// VideoEncoder abstracts video encoding and muxing operations.
type VideoEncoder interface {
	// Begin initializes the encoder with the output dimensions and frame
	// rate. If opts.AudioPath is set the adapter muxes that audio track
	// into the container; a missing or unreadable audio file fails Begin
	// so that no silent partial video is ever produced.
	Begin(width, height int, fps float64, opts EncoderOptions) error

	// EncodeFrame encodes a single frame at the specified timestamp.
	EncodeFrame(img image.Image, timestampMs int) error

	// End finalizes encoding and returns the container bytes.
	End() ([]byte, error)
}

// EncoderOptions configures video encoding parameters.
type EncoderOptions struct {
	Bitrate    int    // Target video bitrate in kbps (0 = encoder default)
	Quality    int    // CRF value: 0-63 (lower is higher quality)
	AudioPath  string // Optional narration/background audio file to mux
	DurationMs int    // Total output duration; audio is clamped to this
}

package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate generation results.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveStatsJSON saves the derived trip statistics as JSON.
	SaveStatsJSON(data []byte) error

	// SavePagesJSON saves the declarative page description as JSON.
	SavePagesJSON(data []byte) error

	// SaveTimelineJSON saves the video timeline as JSON.
	SaveTimelineJSON(data []byte) error

	// SavePreviewPage saves one rasterized preview page.
	SavePreviewPage(index int, img image.Image) error

	// SaveFrame saves one composed video frame.
	SaveFrame(index int, img image.Image) error

	// SaveThumbnail saves the captured video thumbnail.
	SaveThumbnail(img image.Image) error
}

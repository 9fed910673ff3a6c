package pipeline

import (
	"image"
	"image/color"

	"github.com/msuleman526/tripshow/pkg/ports"
	"github.com/msuleman526/tripshow/pkg/trip"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height in pixels.
type Dimension struct {
	Width  int
	Height int
}

// Rect represents a rectangular area in page units.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// FitMode selects how an image is sized into its box.
type FitMode string

const (
	// FitCover scales the image so it fully covers the box, center
	// cropping the overflow axis.
	FitCover FitMode = "cover"
	// FitContain scales the image to fit entirely within the box without
	// exceeding its native resolution, centered on both axes.
	FitContain FitMode = "contain"
)

// =============================================================================
// Page Description Types
// =============================================================================

// PageKind labels a page's role; the order of kinds within a built page
// list is fixed by the compositor.
type PageKind string

const (
	PageCover   PageKind = "cover"
	PageIntro   PageKind = "intro"
	PageSummary PageKind = "summary"
	PageMap     PageKind = "map"
	PagePoint   PageKind = "point"
	PageMedia   PageKind = "media"
	PageClosing PageKind = "closing"
)

// Page is one declarative page description, consumed independently by
// the PDF backend and the raster preview backend.
type Page struct {
	Kind     PageKind  `json:"kind"`
	Elements []Element `json:"elements"`
}

// ElementKind labels a drawable element.
type ElementKind string

const (
	ElementFill  ElementKind = "fill"
	ElementImage ElementKind = "image"
	ElementText  ElementKind = "text"
	ElementRule  ElementKind = "rule"
)

// SourceKind labels where an image element's pixels come from.
type SourceKind string

const (
	SourceRemote SourceKind = "remote" // Fetched by URL
	SourceFlag   SourceKind = "flag"   // Country flag asset
	SourceShape  SourceKind = "shape"  // Country boundary shape asset
	SourceIcon   SourceKind = "icon"   // Fixed icon asset
	SourceMap    SourceKind = "map"    // Static map generated from coordinates
)

// ImageSource identifies an image element's asset.
type ImageSource struct {
	Kind    SourceKind `json:"kind"`
	URL     string     `json:"url,omitempty"`
	Country string     `json:"country,omitempty"`
	Variant string     `json:"variant,omitempty"` // Shape color variant: "white" or "blue"
	Icon    string     `json:"icon,omitempty"`

	// MapPoints carries the coordinates of a SourceMap element.
	MapPoints []ports.MapPoint `json:"mapPoints,omitempty"`
}

// FallbackKind labels what replaces an image whose asset failed to load.
type FallbackKind string

const (
	FallbackFill FallbackKind = "fill" // Solid color fill
	FallbackText FallbackKind = "text" // Plain text in the box
	FallbackSkip FallbackKind = "skip" // Element silently omitted
)

// Fallback describes an image element's local failure recovery. Asset
// failures never abort page composition.
type Fallback struct {
	Kind  FallbackKind `json:"kind"`
	Color color.RGBA   `json:"color,omitempty"`
	Text  string       `json:"text,omitempty"`
}

// Element is one drawable item on a page. Flat by design so the whole
// page description serializes for debug output.
type Element struct {
	Kind ElementKind `json:"type"`
	Box  Rect        `json:"box"`

	// Fill / text color
	Color color.RGBA `json:"color,omitempty"`

	// Image fields
	Source   ImageSource `json:"source,omitempty"`
	Fit      FitMode     `json:"fit,omitempty"`
	Fallback Fallback    `json:"fallback,omitempty"`

	// Text fields
	Text     string  `json:"text,omitempty"`
	TextSize float64 `json:"textSize,omitempty"`
	Align    string  `json:"align,omitempty"` // "left", "center" or "right"
	Bold     bool    `json:"bold,omitempty"`
	Wrap     bool    `json:"wrap,omitempty"` // Wrap within the box instead of a single anchored line

	// Rule fields: the rule runs from (Box.X, Box.Y) to (X2, Y2).
	X2        float64 `json:"x2,omitempty"`
	Y2        float64 `json:"y2,omitempty"`
	LineWidth float64 `json:"lineWidth,omitempty"`
}

// =============================================================================
// Pages Stage Types
// =============================================================================

// PagesInput carries the trip graph into page description building.
type PagesInput struct {
	Bundle trip.Bundle

	// Page size in page units (PDF points).
	PageWidth  float64
	PageHeight float64
}

// DefaultPagesInput returns PagesInput with the portrait page size the
// travel book uses.
func DefaultPagesInput() PagesInput {
	return PagesInput{
		PageWidth:  595, // A4 portrait in points
		PageHeight: 842,
	}
}

// PagesResult contains the ordered page descriptions plus the stats that
// were derived while building them.
type PagesResult struct {
	Pages []Page
	Stats trip.DerivedStats
}

// =============================================================================
// Book Stage Types
// =============================================================================

// BookInput carries page descriptions into PDF composition.
type BookInput struct {
	Pages      []Page
	PageWidth  float64
	PageHeight float64
}

// BookResult contains the composed document.
type BookResult struct {
	PDFData   []byte
	PageCount int
	FileSize  int64
}

// =============================================================================
// Preview Stage Types
// =============================================================================

// PreviewInput carries page descriptions into raster preview rendering.
type PreviewInput struct {
	Pages       []Page
	PageWidth   float64 // Page units, same as BookInput
	PageHeight  float64
	RasterWidth int // Output raster width in pixels; height follows the page aspect
}

// DefaultPreviewInput returns PreviewInput with the fixed raster size of
// the flip-book preview.
func DefaultPreviewInput() PreviewInput {
	return PreviewInput{
		PageWidth:   595,
		PageHeight:  842,
		RasterWidth: 595,
	}
}

// PreviewResult is the ordered page raster sequence for the flip-book.
type PreviewResult struct {
	Pages []image.Image
}

// =============================================================================
// Video Timeline Types
// =============================================================================

// TimelineSpec fixes the timing constants of the video. The total
// duration is IntroSec + N*PerImageSec + OutroSec for N media items.
type TimelineSpec struct {
	IntroSec    float64 `json:"introSec"`
	PerImageSec float64 `json:"perImageSec"`
	OutroSec    float64 `json:"outroSec"`
	FadeSec     float64 `json:"fadeSec"` // Fade-to-black at each slide edge
}

// DefaultTimelineSpec returns the production timing constants.
func DefaultTimelineSpec() TimelineSpec {
	return TimelineSpec{
		IntroSec:    5.0,
		PerImageSec: 4.0,
		OutroSec:    3.0,
		FadeSec:     0.4,
	}
}

// =============================================================================
// Capture Stage Types
// =============================================================================

// CaptureInput carries the timeline and encoding parameters into the
// capture stage.
type CaptureInput struct {
	Bundle trip.Bundle
	Spec   TimelineSpec

	// Output frame size; the video is vertical.
	Width  int
	Height int

	FPS     float64
	Quality int // CRF 0-63
	Bitrate int // kbps, 0 = encoder default

	// AudioPath is the narration/background track muxed into the output.
	// The WebM encoder refuses to start without it; the MP4 encoder
	// rejects it entirely.
	AudioPath string

	// SettlingMs is held at the end of the recording beyond the computed
	// duration before the recorder is stopped.
	SettlingMs int
}

// DefaultCaptureInput returns CaptureInput with the production vertical
// frame size and encoding defaults.
func DefaultCaptureInput() CaptureInput {
	return CaptureInput{
		Spec:       DefaultTimelineSpec(),
		Width:      1080,
		Height:     1920,
		FPS:        30.0,
		Quality:    30,
		SettlingMs: 500,
	}
}

// CaptureResult contains the encoded video and its poster thumbnail.
type CaptureResult struct {
	VideoData  []byte
	DurationMs int
	FileSize   int64
	Thumbnail  image.Image
}

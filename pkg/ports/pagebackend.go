package ports

import (
	"image"
	"image/color"
)

// PageBackend consumes the declarative page description produced by the
// pages stage. One implementation emits paginated PDF primitives, the
// other rasterizes canvases for the flip-book preview; both receive the
// same call sequence so the two outputs stay structurally equivalent.
//
// Coordinates are in page units with the origin at the top-left corner.
// Image placement (cover/contain fit) is resolved by the caller before
// the backend is invoked; backends draw exactly the box they are given,
// clipped to the page.
type PageBackend interface {
	// BeginPage starts a new page of the given size in page units.
	BeginPage(width, height float64)

	// FillRect paints a filled rectangle.
	FillRect(x, y, w, h float64, c color.Color)

	// PlaceImage draws an image into the given box, clipped to the clip
	// rectangle.
	PlaceImage(img image.Image, x, y, w, h float64, clip PageClip)

	// PlaceText draws a single line of text anchored at (x, y); y is the
	// text baseline.
	PlaceText(text string, x, y float64, style PageTextStyle)

	// PlaceParagraph draws wrapped text starting at (x, y) within the
	// given width.
	PlaceParagraph(text string, x, y, w float64, style PageTextStyle)

	// Rule draws a horizontal or diagonal rule between two points.
	Rule(x1, y1, x2, y2 float64, c color.Color, width float64)
}

// PageClip bounds image drawing; cover-fit images overflow their box and
// must be cropped to it.
type PageClip struct {
	X, Y, W, H float64
}

// PageTextStyle defines text appearance on a page.
type PageTextStyle struct {
	Size  float64 // Font size in page units
	Color color.Color
	Align TextAlign
	Bold  bool
}

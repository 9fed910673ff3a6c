package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts raster image processing operations.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas with the specified
	// dimensions and background color.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// DecodeImage decodes image data into an image.Image.
	DecodeImage(data []byte) (image.Image, error)

	// EncodeImage encodes an image to the specified format. The quality
	// parameter applies to JPEG only.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int) image.Image
}

// Canvas provides drawing operations for compositing a single page or
// video frame.
type Canvas interface {
	// DrawImage draws an image with its top-left corner at (x, y).
	DrawImage(img image.Image, x, y int)

	// DrawImageScaled draws an image scaled to the given dimensions.
	// Negative x/y are allowed; the overflow is clipped at the canvas
	// edge (cover fit relies on this).
	DrawImageScaled(img image.Image, x, y, width, height int)

	// DrawRect draws a filled rectangle. The color's alpha is honored,
	// which is how scrims and fade-to-black transitions are painted.
	DrawRect(x, y, w, h int, c color.Color)

	// DrawText draws text anchored at (x, y) according to the style's
	// alignment.
	DrawText(text string, x, y int, style TextStyle)

	// MeasureText returns the rendered width and height of the text.
	MeasureText(text string, style TextStyle) (width, height float64)

	// DrawLine draws a line between two points.
	DrawLine(x1, y1, x2, y2 int, c color.Color, width float64)

	// ToImage returns the canvas contents as an image.Image.
	ToImage() image.Image
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize float64
	Color    color.Color
	Align    TextAlign
}

// TextAlign specifies horizontal text alignment relative to the anchor.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
)

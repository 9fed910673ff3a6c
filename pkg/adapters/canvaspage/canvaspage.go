// Package canvaspage rasterizes the declarative page primitives into
// in-memory images for the flip-book preview.
package canvaspage

import (
	"image"
	"image/color"
	"strings"

	"github.com/msuleman526/tripshow/pkg/ports"
)

// Backend implements ports.PageBackend by drawing onto raster
// canvases. It receives the same primitive sequence as the PDF
// backend; only the scale differs.
type Backend struct {
	renderer    ports.Renderer
	rasterWidth int

	scale   float64
	current ports.Canvas
	pages   []image.Image
}

// New creates a new Backend rendering pages at the given pixel width.
func New(renderer ports.Renderer, rasterWidth int) *Backend {
	return &Backend{renderer: renderer, rasterWidth: rasterWidth}
}

// BeginPage finalizes the previous page and starts a new canvas.
func (b *Backend) BeginPage(width, height float64) {
	b.flush()
	b.scale = float64(b.rasterWidth) / width
	b.current = b.renderer.CreateCanvas(b.rasterWidth, int(height*b.scale), color.White)
}

// FillRect paints a filled rectangle.
func (b *Backend) FillRect(x, y, w, h float64, c color.Color) {
	if b.current == nil {
		return
	}
	b.current.DrawRect(b.px(x), b.px(y), b.px(w), b.px(h), c)
}

// PlaceImage draws an image into the given box. Overflow past the clip
// rectangle is cropped by compositing through an intermediate canvas of
// the clip's size.
func (b *Backend) PlaceImage(img image.Image, x, y, w, h float64, clip ports.PageClip) {
	if b.current == nil || img == nil {
		return
	}
	clipW, clipH := b.px(clip.W), b.px(clip.H)
	if clipW <= 0 || clipH <= 0 {
		return
	}
	sub := b.renderer.CreateCanvas(clipW, clipH, color.Transparent)
	sub.DrawImageScaled(img, b.px(x-clip.X), b.px(y-clip.Y), b.px(w), b.px(h))
	b.current.DrawImage(sub.ToImage(), b.px(clip.X), b.px(clip.Y))
}

// PlaceText draws one line of text with its baseline at y.
func (b *Backend) PlaceText(text string, x, y float64, style ports.PageTextStyle) {
	if b.current == nil {
		return
	}
	size := style.Size * b.scale
	canvasStyle := ports.TextStyle{
		FontSize: size,
		Color:    style.Color,
		Align:    style.Align,
	}
	// Canvas text is anchored at its vertical center; the page model
	// hands us a baseline.
	cx, cy := b.px(x), int(float64(b.px(y))-size/3)
	b.current.DrawText(text, cx, cy, canvasStyle)
	if style.Bold {
		b.current.DrawText(text, cx+1, cy, canvasStyle)
	}
}

// PlaceParagraph draws greedily wrapped text starting at (x, y).
func (b *Backend) PlaceParagraph(text string, x, y, w float64, style ports.PageTextStyle) {
	if b.current == nil {
		return
	}
	size := style.Size * b.scale
	measure := ports.TextStyle{FontSize: size, Color: style.Color, Align: ports.AlignLeft}
	maxWidth := w * b.scale

	var line string
	lineY := y
	flushLine := func() {
		if line == "" {
			return
		}
		b.PlaceText(line, x, lineY+style.Size, style)
		lineY += style.Size * 1.4
		line = ""
	}
	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if width, _ := b.current.MeasureText(candidate, measure); width > maxWidth && line != "" {
			flushLine()
			line = word
			continue
		}
		line = candidate
	}
	flushLine()
}

// Rule draws a line between two points.
func (b *Backend) Rule(x1, y1, x2, y2 float64, c color.Color, width float64) {
	if b.current == nil {
		return
	}
	b.current.DrawLine(b.px(x1), b.px(y1), b.px(x2), b.px(y2), c, width*b.scale)
}

// Pages finalizes the last page and returns every rasterized page in
// order.
func (b *Backend) Pages() []image.Image {
	b.flush()
	return b.pages
}

func (b *Backend) flush() {
	if b.current != nil {
		b.pages = append(b.pages, b.current.ToImage())
		b.current = nil
	}
}

func (b *Backend) px(v float64) int {
	return int(v * b.scale)
}

var _ ports.PageBackend = (*Backend)(nil)

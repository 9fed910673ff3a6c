package mocks

import (
	"image"
	"image/color"

	"github.com/msuleman526/tripshow/pkg/ports"
)

// BackendOp records one primitive received by a RecordingBackend.
type BackendOp struct {
	Kind  string // "fill", "image", "text", "paragraph", "rule"
	Text  string
	X, Y  float64
	W, H  float64
	Color color.Color
	Style ports.PageTextStyle
	Clip  ports.PageClip
	Image image.Image
}

// RecordingBackend is a PageBackend that records the exact primitive
// sequence per page, so tests can compare what two backends would have
// been asked to draw.
type RecordingBackend struct {
	PageSizes []struct{ W, H float64 }
	Pages     [][]BackendOp
}

func (b *RecordingBackend) BeginPage(width, height float64) {
	b.PageSizes = append(b.PageSizes, struct{ W, H float64 }{width, height})
	b.Pages = append(b.Pages, nil)
}

func (b *RecordingBackend) FillRect(x, y, w, h float64, c color.Color) {
	b.record(BackendOp{Kind: "fill", X: x, Y: y, W: w, H: h, Color: c})
}

func (b *RecordingBackend) PlaceImage(img image.Image, x, y, w, h float64, clip ports.PageClip) {
	b.record(BackendOp{Kind: "image", X: x, Y: y, W: w, H: h, Clip: clip, Image: img})
}

func (b *RecordingBackend) PlaceText(text string, x, y float64, style ports.PageTextStyle) {
	b.record(BackendOp{Kind: "text", Text: text, X: x, Y: y, Style: style})
}

func (b *RecordingBackend) PlaceParagraph(text string, x, y, w float64, style ports.PageTextStyle) {
	b.record(BackendOp{Kind: "paragraph", Text: text, X: x, Y: y, W: w, Style: style})
}

func (b *RecordingBackend) Rule(x1, y1, x2, y2 float64, c color.Color, width float64) {
	b.record(BackendOp{Kind: "rule", X: x1, Y: y1, W: x2 - x1, H: y2 - y1, Color: c})
}

func (b *RecordingBackend) record(op BackendOp) {
	if len(b.Pages) == 0 {
		b.Pages = append(b.Pages, nil)
	}
	last := len(b.Pages) - 1
	b.Pages[last] = append(b.Pages[last], op)
}

// Texts returns every text and paragraph string across all pages, in
// draw order.
func (b *RecordingBackend) Texts() []string {
	var out []string
	for _, page := range b.Pages {
		for _, op := range page {
			if op.Kind == "text" || op.Kind == "paragraph" {
				out = append(out, op.Text)
			}
		}
	}
	return out
}

var _ ports.PageBackend = (*RecordingBackend)(nil)

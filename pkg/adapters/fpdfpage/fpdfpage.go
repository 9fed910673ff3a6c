// Package fpdfpage emits the declarative page primitives as a
// paginated PDF document.
package fpdfpage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/go-pdf/fpdf"

	"github.com/msuleman526/tripshow/pkg/ports"
)

const fontFamily = "Helvetica"

// Backend implements ports.PageBackend on go-pdf/fpdf. Page units map
// 1:1 to PDF points.
type Backend struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
	imageSeq  int
}

// New creates a new Backend. The document is created lazily on the
// first BeginPage, when the page size is known.
func New() *Backend {
	return &Backend{}
}

// BeginPage starts a new page of the given size in points.
func (b *Backend) BeginPage(width, height float64) {
	size := fpdf.SizeType{Wd: width, Ht: height}
	if b.pdf == nil {
		b.pdf = fpdf.NewCustom(&fpdf.InitType{
			OrientationStr: "P",
			UnitStr:        "pt",
			Size:           size,
		})
		b.pdf.SetMargins(0, 0, 0)
		b.pdf.SetAutoPageBreak(false, 0)
		// Core fonts are cp1252; the translator keeps "°C" intact.
		b.translate = b.pdf.UnicodeTranslatorFromDescriptor("")
	}
	b.pdf.AddPageFormat("P", size)
}

// FillRect paints a filled rectangle, honoring the color's alpha.
func (b *Backend) FillRect(x, y, w, h float64, c color.Color) {
	r, g, bl, a := rgba(c)
	b.pdf.SetFillColor(r, g, bl)
	if a < 1 {
		b.pdf.SetAlpha(a, "Normal")
		defer b.pdf.SetAlpha(1, "Normal")
	}
	b.pdf.Rect(x, y, w, h, "F")
}

// PlaceImage draws an image into the given box, cropped to the clip
// rectangle.
func (b *Backend) PlaceImage(img image.Image, x, y, w, h float64, clip ports.PageClip) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return
	}
	b.imageSeq++
	name := fmt.Sprintf("img-%d", b.imageSeq)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	b.pdf.RegisterImageOptionsReader(name, opts, &buf)

	b.pdf.ClipRect(clip.X, clip.Y, clip.W, clip.H, false)
	b.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	b.pdf.ClipEnd()
}

// PlaceText draws one line of text with its baseline at y.
func (b *Backend) PlaceText(text string, x, y float64, style ports.PageTextStyle) {
	b.applyTextStyle(style)
	translated := b.translate(text)
	switch style.Align {
	case ports.AlignCenter:
		x -= b.pdf.GetStringWidth(translated) / 2
	case ports.AlignRight:
		x -= b.pdf.GetStringWidth(translated)
	}
	b.pdf.Text(x, y, translated)
}

// PlaceParagraph draws wrapped text starting at (x, y) within w.
func (b *Backend) PlaceParagraph(text string, x, y, w float64, style ports.PageTextStyle) {
	b.applyTextStyle(style)
	b.pdf.SetXY(x, y)
	align := "L"
	switch style.Align {
	case ports.AlignCenter:
		align = "C"
	case ports.AlignRight:
		align = "R"
	}
	b.pdf.MultiCell(w, style.Size*1.4, b.translate(text), "", align, false)
}

// Rule draws a line between two points.
func (b *Backend) Rule(x1, y1, x2, y2 float64, c color.Color, width float64) {
	r, g, bl, _ := rgba(c)
	b.pdf.SetDrawColor(r, g, bl)
	b.pdf.SetLineWidth(width)
	b.pdf.Line(x1, y1, x2, y2)
}

// Output finalizes the document and returns its bytes.
func (b *Backend) Output() ([]byte, error) {
	if b.pdf == nil {
		return nil, fmt.Errorf("no pages were drawn")
	}
	if b.pdf.Err() {
		return nil, fmt.Errorf("pdf generation: %s", b.pdf.Error())
	}
	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// PageCount returns the number of pages drawn so far.
func (b *Backend) PageCount() int {
	if b.pdf == nil {
		return 0
	}
	return b.pdf.PageCount()
}

func (b *Backend) applyTextStyle(style ports.PageTextStyle) {
	variant := ""
	if style.Bold {
		variant = "B"
	}
	b.pdf.SetFont(fontFamily, variant, style.Size)
	r, g, bl, _ := rgba(style.Color)
	b.pdf.SetTextColor(r, g, bl)
}

func rgba(c color.Color) (int, int, int, float64) {
	if c == nil {
		return 0, 0, 0, 1
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return 0, 0, 0, 0
	}
	return int(r >> 8), int(g >> 8), int(b >> 8), float64(a) / 0xffff
}

var _ ports.PageBackend = (*Backend)(nil)

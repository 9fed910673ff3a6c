// Package mocks provides hand-written test doubles for the ports
// interfaces. Each mock records its calls and lets a test override any
// method through a function field.
package mocks

import (
	"image"
	"image/color"

	"github.com/msuleman526/tripshow/pkg/ports"
)

// CanvasOp records a single drawing call made against a MockCanvas.
type CanvasOp struct {
	Kind  string // "image", "rect", "text", "line"
	Text  string
	X, Y  int
	W, H  int
	Color color.Color
	Style ports.TextStyle
	Image image.Image
}

// MockCanvas is a Canvas that records every drawing call.
type MockCanvas struct {
	Ops         []CanvasOp
	ToImageFunc func() image.Image

	Width  int
	Height int
}

func (c *MockCanvas) DrawImage(img image.Image, x, y int) {
	c.Ops = append(c.Ops, CanvasOp{Kind: "image", X: x, Y: y, Image: img})
}

func (c *MockCanvas) DrawImageScaled(img image.Image, x, y, width, height int) {
	c.Ops = append(c.Ops, CanvasOp{Kind: "image", X: x, Y: y, W: width, H: height, Image: img})
}

func (c *MockCanvas) DrawRect(x, y, w, h int, col color.Color) {
	c.Ops = append(c.Ops, CanvasOp{Kind: "rect", X: x, Y: y, W: w, H: h, Color: col})
}

func (c *MockCanvas) DrawText(text string, x, y int, style ports.TextStyle) {
	c.Ops = append(c.Ops, CanvasOp{Kind: "text", Text: text, X: x, Y: y, Style: style})
}

func (c *MockCanvas) MeasureText(text string, style ports.TextStyle) (float64, float64) {
	return float64(len(text)) * style.FontSize * 0.5, style.FontSize
}

func (c *MockCanvas) DrawLine(x1, y1, x2, y2 int, col color.Color, width float64) {
	c.Ops = append(c.Ops, CanvasOp{Kind: "line", X: x1, Y: y1, W: x2 - x1, H: y2 - y1, Color: col})
}

func (c *MockCanvas) ToImage() image.Image {
	if c.ToImageFunc != nil {
		return c.ToImageFunc()
	}
	w, h := c.Width, c.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// Texts returns the text of every recorded text op, in draw order.
func (c *MockCanvas) Texts() []string {
	var out []string
	for _, op := range c.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// MockRenderer is a Renderer whose canvases record drawing calls.
type MockRenderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	DecodeImageFunc  func(data []byte) (image.Image, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image

	Canvases []*MockCanvas
}

func (r *MockRenderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if r.CreateCanvasFunc != nil {
		return r.CreateCanvasFunc(width, height, bg)
	}
	c := &MockCanvas{Width: width, Height: height}
	r.Canvases = append(r.Canvases, c)
	return c
}

func (r *MockRenderer) DecodeImage(data []byte) (image.Image, error) {
	if r.DecodeImageFunc != nil {
		return r.DecodeImageFunc(data)
	}
	return SolidImage(1, 1, color.White), nil
}

func (r *MockRenderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if r.EncodeImageFunc != nil {
		return r.EncodeImageFunc(img, format, quality)
	}
	return []byte("encoded"), nil
}

func (r *MockRenderer) ResizeImage(img image.Image, width, height int) image.Image {
	if r.ResizeImageFunc != nil {
		return r.ResizeImageFunc(img, width, height)
	}
	return img
}

// SolidImage builds a uniformly colored test image.
func SolidImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

var (
	_ ports.Canvas   = (*MockCanvas)(nil)
	_ ports.Renderer = (*MockRenderer)(nil)
)

package ggrenderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/msuleman526/tripshow/pkg/ports"
)

func TestRenderer_CreateCanvas(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(100, 100, color.White)
	if canvas == nil {
		t.Fatal("expected canvas to be created")
	}

	img := canvas.ToImage()
	bounds := img.Bounds()

	if bounds.Dx() != 100 || bounds.Dy() != 100 {
		t.Errorf("expected 100x100, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_EncodeDecodeJPEG(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	data, err := r.EncodeImage(img, ports.FormatJPEG, 80)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty data")
	}

	decoded, err := r.DecodeImage(data)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("expected 50x50, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderer_ResizeImage(t *testing.T) {
	r := New()

	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	resized := r.ResizeImage(img, 50, 25)

	bounds := resized.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 25 {
		t.Errorf("expected 50x25, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestCanvas_DrawRectHonorsAlpha(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(10, 10, color.White)
	canvas.DrawRect(0, 0, 10, 10, color.RGBA{A: 128})

	// A half-opaque black overlay on white must land between the two.
	out := canvas.ToImage()
	c := color.RGBAModel.Convert(out.At(5, 5)).(color.RGBA)
	if c.R < 100 || c.R > 160 {
		t.Errorf("expected mid-gray after 50%% overlay, got %+v", c)
	}
}

func TestCanvas_DrawText(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(200, 60, color.White)
	canvas.DrawText("Trip", 100, 30, ports.TextStyle{
		FontSize: 24,
		Color:    color.Black,
		Align:    ports.AlignCenter,
	})

	w, h := canvas.MeasureText("Trip", ports.TextStyle{FontSize: 24})
	if w <= 0 || h <= 0 {
		t.Errorf("expected positive text metrics, got %gx%g", w, h)
	}

	// Some pixels near the anchor must no longer be white.
	out := canvas.ToImage()
	painted := false
	for x := 80; x < 120 && !painted; x++ {
		for y := 20; y < 40; y++ {
			c := color.RGBAModel.Convert(out.At(x, y)).(color.RGBA)
			if c.R < 250 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Error("expected text pixels on the canvas")
	}
}

func TestCanvas_MeasureText(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(100, 40, color.White)

	style := ports.TextStyle{FontSize: 24}
	shortW, shortH := canvas.MeasureText("Day", style)
	longW, longH := canvas.MeasureText("Day 12 in Zermatt", style)

	if longW <= shortW {
		t.Errorf("longer text measured %g, shorter %g", longW, shortW)
	}
	if shortH != 24 || longH != 24 {
		t.Errorf("heights = %g/%g, want the font size", shortH, longH)
	}
}

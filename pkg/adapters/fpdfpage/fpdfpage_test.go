package fpdfpage

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/msuleman526/tripshow/pkg/mocks"
	"github.com/msuleman526/tripshow/pkg/ports"
)

func TestBackend_OutputWithoutPages(t *testing.T) {
	backend := New()
	if _, err := backend.Output(); err == nil {
		t.Error("expected error when no pages were drawn")
	}
	if got := backend.PageCount(); got != 0 {
		t.Errorf("PageCount = %d, want 0", got)
	}
}

func TestBackend_ProducesPDF(t *testing.T) {
	backend := New()

	backend.BeginPage(595, 842)
	backend.FillRect(0, 0, 595, 842, color.RGBA{23, 42, 58, 255})
	backend.PlaceText("Alps Crossing", 297.5, 420, ports.PageTextStyle{
		Size:  36,
		Color: color.White,
		Align: ports.AlignCenter,
		Bold:  true,
	})

	backend.BeginPage(595, 842)
	backend.PlaceImage(mocks.SolidImage(40, 30, color.RGBA{90, 140, 90, 255}),
		-20, 0, 635, 842, ports.PageClip{X: 0, Y: 0, W: 595, H: 842})
	backend.PlaceParagraph("A long description that needs wrapping across lines.",
		28, 500, 300, ports.PageTextStyle{Size: 11, Color: color.Black})
	backend.Rule(208, 100, 208, 300, color.RGBA{200, 200, 200, 255}, 1)

	if got := backend.PageCount(); got != 2 {
		t.Errorf("PageCount = %d, want 2", got)
	}

	data, err := backend.Output()
	if err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
	if len(data) < 1000 {
		t.Errorf("output suspiciously small: %d bytes", len(data))
	}
}

func TestBackend_DegreeSignSurvivesTranslation(t *testing.T) {
	backend := New()
	backend.BeginPage(595, 842)
	backend.PlaceText("21°C", 100, 100, ports.PageTextStyle{Size: 12, Color: color.Black})

	data, err := backend.Output()
	if err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty output")
	}
}

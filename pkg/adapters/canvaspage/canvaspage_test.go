package canvaspage

import (
	"image/color"
	"testing"

	"github.com/msuleman526/tripshow/pkg/adapters/ggrenderer"
	"github.com/msuleman526/tripshow/pkg/mocks"
	"github.com/msuleman526/tripshow/pkg/ports"
)

func TestBackend_PagesAreScaled(t *testing.T) {
	backend := New(ggrenderer.New(), 300)

	backend.BeginPage(595, 842)
	backend.FillRect(0, 0, 595, 842, color.RGBA{23, 42, 58, 255})
	backend.BeginPage(595, 842)

	pages := backend.Pages()
	if len(pages) != 2 {
		t.Fatalf("len(pages) = %d, want 2", len(pages))
	}
	bounds := pages[0].Bounds()
	if bounds.Dx() != 300 {
		t.Errorf("page width = %d, want 300", bounds.Dx())
	}
	// 842 * (300/595) = 424 px, allowing for integer truncation.
	if bounds.Dy() < 423 || bounds.Dy() > 425 {
		t.Errorf("page height = %d, want ~424", bounds.Dy())
	}
}

func TestBackend_FillRectCoversPage(t *testing.T) {
	backend := New(ggrenderer.New(), 100)
	backend.BeginPage(100, 100)
	backend.FillRect(0, 0, 100, 100, color.RGBA{255, 0, 0, 255})

	page := backend.Pages()[0]
	r, _, _, _ := page.At(50, 50).RGBA()
	if r>>8 != 255 {
		t.Errorf("center pixel red = %d, want 255", r>>8)
	}
}

func TestBackend_PlaceImageClips(t *testing.T) {
	renderer := &mocks.MockRenderer{}
	backend := New(renderer, 595)
	backend.BeginPage(595, 842)

	img := mocks.SolidImage(10, 10, color.White)
	// Cover fit: the image box overflows the clip on the left.
	backend.PlaceImage(img, -50, 0, 695, 842, ports.PageClip{X: 0, Y: 0, W: 595, H: 842})

	// Two canvases: the page itself plus the clip compositing canvas.
	if len(renderer.Canvases) != 2 {
		t.Fatalf("canvases = %d, want 2", len(renderer.Canvases))
	}
	sub := renderer.Canvases[1]
	if sub.Width != 595 || sub.Height != 842 {
		t.Errorf("clip canvas = %dx%d, want 595x842", sub.Width, sub.Height)
	}
	if len(sub.Ops) != 1 || sub.Ops[0].X != -50 {
		t.Errorf("clipped image ops = %+v, want draw at x=-50", sub.Ops)
	}
}

func TestBackend_ParagraphWraps(t *testing.T) {
	renderer := &mocks.MockRenderer{}
	backend := New(renderer, 595)
	backend.BeginPage(595, 842)

	backend.PlaceParagraph("one two three four five six seven eight nine ten",
		28, 500, 120, ports.PageTextStyle{Size: 11, Color: color.Black})

	page := renderer.Canvases[0]
	if len(page.Texts()) < 2 {
		t.Errorf("expected wrapped text across multiple lines, got %v", page.Texts())
	}
}

func TestBackend_DrawBeforeBeginPageIsIgnored(t *testing.T) {
	backend := New(ggrenderer.New(), 100)
	backend.FillRect(0, 0, 10, 10, color.Black)
	backend.PlaceText("stray", 0, 0, ports.PageTextStyle{Size: 10, Color: color.Black})

	if pages := backend.Pages(); len(pages) != 0 {
		t.Errorf("len(pages) = %d, want 0", len(pages))
	}
}

package frames

import (
	"context"
	"image"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/msuleman526/tripshow/pkg/adapters/logger"
	"github.com/msuleman526/tripshow/pkg/mocks"
	"github.com/msuleman526/tripshow/pkg/pipeline"
	"github.com/msuleman526/tripshow/pkg/stages/layout"
	"github.com/msuleman526/tripshow/pkg/trip"
)

func videoBundle() trip.Bundle {
	day1 := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 7, 2, 14, 0, 0, 0, time.UTC)
	return trip.Bundle{
		Trip: trip.Trip{
			ID:            "trip-9",
			Name:          "Alps Crossing",
			Countries:     []string{"Switzerland", "Italy"},
			CoverImageURL: "https://cdn.example.com/cover.jpg",
		},
		Points: []trip.Point{
			{
				Area: "Zermatt", Country: "Switzerland", CreatedAt: day1,
				Media: []trip.Media{{URL: "https://cdn.example.com/a.jpg"}, {URL: "https://cdn.example.com/b.jpg"}},
			},
			{
				Area: "Aosta", Country: "Italy", CreatedAt: day2,
				Media: []trip.Media{{URL: "https://cdn.example.com/c.jpg"}, {URL: ""}},
			},
		},
	}
}

func TestNewTimeline_SlidesForwardOrder(t *testing.T) {
	tl := NewTimeline(videoBundle(), pipeline.DefaultTimelineSpec())

	got := make([]string, len(tl.Slides))
	for i, s := range tl.Slides {
		got[i] = s.MediaURL
	}
	want := []string{
		"https://cdn.example.com/a.jpg",
		"https://cdn.example.com/b.jpg",
		"https://cdn.example.com/c.jpg",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("slide order = %v, want %v", got, want)
	}

	if tl.Slides[0].Day != 1 || tl.Slides[2].Day != 2 {
		t.Errorf("slide days = %d, %d; want 1, 2", tl.Slides[0].Day, tl.Slides[2].Day)
	}
}

func TestTimeline_Duration(t *testing.T) {
	spec := pipeline.DefaultTimelineSpec()
	tl := NewTimeline(videoBundle(), spec)

	// 3 usable media items: 5 + 3*4 + 3 = 20s.
	if got := tl.Duration(); math.Abs(got-20) > 1e-9 {
		t.Errorf("Duration() = %f, want 20", got)
	}

	empty := NewTimeline(trip.Bundle{Trip: trip.Trip{Name: "x"}}, spec)
	if got := empty.Duration(); math.Abs(got-8) > 1e-9 {
		t.Errorf("empty Duration() = %f, want 8", got)
	}
}

func TestTimeline_At(t *testing.T) {
	tl := NewTimeline(videoBundle(), pipeline.DefaultTimelineSpec())

	tests := []struct {
		elapsed float64
		phase   Phase
		slide   int
	}{
		{0, PhaseIntro, 0},
		{4.9, PhaseIntro, 0},
		{5.0, PhaseSlideshow, 0},
		{8.9, PhaseSlideshow, 0},
		{9.0, PhaseSlideshow, 1},
		{16.9, PhaseSlideshow, 2},
		{17.0, PhaseOutro, 0},
		{99, PhaseOutro, 0},
	}
	for _, tt := range tests {
		phase, slide, _ := tl.At(tt.elapsed)
		if phase != tt.phase || slide != tt.slide {
			t.Errorf("At(%v) = %s, %d; want %s, %d", tt.elapsed, phase, slide, tt.phase, tt.slide)
		}
	}
}

func TestTimeline_AtWithNoSlides(t *testing.T) {
	tl := NewTimeline(trip.Bundle{Trip: trip.Trip{Name: "x"}}, pipeline.DefaultTimelineSpec())

	phase, _, _ := tl.At(6)
	if phase != PhaseOutro {
		t.Errorf("At(6) with no slides = %s, want %s", phase, PhaseOutro)
	}
}

func TestEaseOutCubic(t *testing.T) {
	if got := easeOutCubic(0); got != 0 {
		t.Errorf("easeOutCubic(0) = %f, want 0", got)
	}
	if got := easeOutCubic(1); got != 1 {
		t.Errorf("easeOutCubic(1) = %f, want 1", got)
	}
	if got := easeOutCubic(2); got != 1 {
		t.Errorf("easeOutCubic(2) = %f, want 1 (clamped)", got)
	}
	// Fast start: halfway through time, more than halfway through motion.
	if got := easeOutCubic(0.5); got <= 0.5 {
		t.Errorf("easeOutCubic(0.5) = %f, want > 0.5", got)
	}
}

func loadedRenderer(t *testing.T) *Renderer {
	t.Helper()
	tl := NewTimeline(videoBundle(), pipeline.DefaultTimelineSpec())
	cache := LoadAssets(context.Background(), tl, AssetDeps{
		Loader: &mocks.MockImageLoader{},
		Assets: &mocks.MockAssetStore{},
		Logger: logger.NewNoop(),
	})
	return NewRenderer(tl, cache, 1080, 1920)
}

func TestRenderFrame_Deterministic(t *testing.T) {
	r := loadedRenderer(t)

	for _, elapsed := range []float64{0, 2.5, 6.0, 12.3, 18.0} {
		a := &mocks.MockCanvas{Width: 1080, Height: 1920}
		b := &mocks.MockCanvas{Width: 1080, Height: 1920}
		r.RenderFrame(a, elapsed)
		r.RenderFrame(b, elapsed)
		if !reflect.DeepEqual(a.Ops, b.Ops) {
			t.Errorf("RenderFrame(%v) not deterministic", elapsed)
		}
	}
}

func TestRenderFrame_IntroShowsTripName(t *testing.T) {
	r := loadedRenderer(t)
	canvas := &mocks.MockCanvas{Width: 1080, Height: 1920}

	r.RenderFrame(canvas, 4.0)

	found := false
	for _, text := range canvas.Texts() {
		if text == "Alps Crossing" {
			found = true
		}
	}
	if !found {
		t.Errorf("intro frame texts = %v, want trip name", canvas.Texts())
	}
}

func TestRenderFrame_SlideShowsDayAndArea(t *testing.T) {
	r := loadedRenderer(t)
	canvas := &mocks.MockCanvas{Width: 1080, Height: 1920}

	// 10s = slide index 1, second Zermatt photo.
	r.RenderFrame(canvas, 10.0)

	texts := canvas.Texts()
	wantTexts := map[string]bool{"Day 1": false, "Zermatt": false, "Switzerland": false}
	for _, text := range texts {
		if _, ok := wantTexts[text]; ok {
			wantTexts[text] = true
		}
	}
	for text, seen := range wantTexts {
		if !seen {
			t.Errorf("slide frame missing %q, got %v", text, texts)
		}
	}
}

func TestRenderFrame_MissingAssetsFallBack(t *testing.T) {
	tl := NewTimeline(videoBundle(), pipeline.DefaultTimelineSpec())
	cache := &AssetCache{
		Slides: make([]image.Image, len(tl.Slides)),
		Flags:  map[string]image.Image{},
	}
	r := NewRenderer(tl, cache, 1080, 1920)

	// Intro with no cover falls back to a solid fill, no panic.
	intro := &mocks.MockCanvas{Width: 1080, Height: 1920}
	r.RenderFrame(intro, 1.0)
	if len(intro.Ops) == 0 || intro.Ops[0].Kind != "rect" {
		t.Errorf("intro without cover should start with a fill, got %+v", intro.Ops)
	}

	// Slide with no image and no flag still draws its texts.
	slide := &mocks.MockCanvas{Width: 1080, Height: 1920}
	r.RenderFrame(slide, 7.0)
	if len(slide.Texts()) == 0 {
		t.Error("slide without assets should still draw texts")
	}

	// Outro with no logo falls back to wordmark text.
	outro := &mocks.MockCanvas{Width: 1080, Height: 1920}
	r.RenderFrame(outro, 19.0)
	texts := outro.Texts()
	if len(texts) != 1 || texts[0] != "YouGuide" {
		t.Errorf("outro fallback texts = %v, want [YouGuide]", texts)
	}
}

func TestRenderFrame_IntroFlagsFadeIn(t *testing.T) {
	r := loadedRenderer(t)

	flagImages := func(elapsed float64) []image.Image {
		canvas := &mocks.MockCanvas{Width: 1080, Height: 1920}
		r.RenderFrame(canvas, elapsed)
		var imgs []image.Image
		for _, op := range canvas.Ops {
			if op.Kind == "image" && op.W == layout.FlagSize {
				imgs = append(imgs, op.Image)
			}
		}
		return imgs
	}

	early := flagImages(0.2)
	late := flagImages(4.9)
	if len(early) == 0 || len(late) == 0 {
		t.Fatalf("flag draws missing: early=%d late=%d", len(early), len(late))
	}

	earlyAlpha := maxAlpha(early[0])
	lateAlpha := maxAlpha(late[0])
	if earlyAlpha >= lateAlpha {
		t.Errorf("flag alpha early=%d late=%d, want fade-in", earlyAlpha, lateAlpha)
	}
}

// maxAlpha returns the largest alpha component found in the image.
func maxAlpha(img image.Image) uint32 {
	var max uint32
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > max {
				max = a
			}
		}
	}
	return max
}

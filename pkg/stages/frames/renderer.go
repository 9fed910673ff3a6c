package frames

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/msuleman526/tripshow/pkg/ports"
	"github.com/msuleman526/tripshow/pkg/stages/layout"
)

var (
	frameCoverFill = color.RGBA{23, 42, 58, 255}
	frameSlideFill = color.RGBA{52, 58, 64, 255}
	frameOutroFill = color.RGBA{255, 255, 255, 255}
	frameInk       = color.RGBA{33, 37, 41, 255}
)

// Renderer maps elapsed seconds to drawn frames. It holds only
// immutable inputs, so the same (renderer, elapsed) pair always
// produces an identical frame.
type Renderer struct {
	timeline Timeline
	cache    *AssetCache
	metrics  layout.FrameMetrics
}

// NewRenderer wires a timeline and its preloaded assets to a target
// frame size.
func NewRenderer(t Timeline, cache *AssetCache, width, height int) *Renderer {
	return &Renderer{
		timeline: t,
		cache:    cache,
		metrics:  layout.FrameMetrics{Width: width, Height: height},
	}
}

// RenderFrame draws the frame at an elapsed time onto a blank canvas.
func (r *Renderer) RenderFrame(canvas ports.Canvas, elapsedSec float64) {
	phase, idx, local := r.timeline.At(elapsedSec)
	switch phase {
	case PhaseIntro:
		r.renderIntro(canvas, local)
	case PhaseSlideshow:
		r.renderSlide(canvas, idx, local)
	default:
		r.renderOutro(canvas)
	}
}

func (r *Renderer) renderIntro(canvas ports.Canvas, local float64) {
	w, h := r.metrics.Width, r.metrics.Height

	r.drawCoverFit(canvas, r.cache.Cover, frameCoverFill)
	canvas.DrawRect(0, 0, w, h, color.RGBA{0, 0, 0, 115})

	// Title scales up and fades in over the whole intro.
	p := easeOutCubic(local / r.timeline.Spec.IntroSec)
	size := 40 + (64-40)*p
	alpha := uint8(p * 255)
	canvas.DrawText(r.timeline.TripName, w/2, int(float64(h)*0.45), ports.TextStyle{
		FontSize: size,
		Color:    color.RGBA{255, 255, 255, alpha},
		Align:    ports.AlignCenter,
	})

	r.drawFlagRow(canvas, h-200, alpha)
}

func (r *Renderer) renderSlide(canvas ports.Canvas, idx int, local float64) {
	w, h := r.metrics.Width, r.metrics.Height
	slide := r.timeline.Slides[idx]
	spec := r.timeline.Spec

	r.drawCoverFit(canvas, r.cache.Slides[idx], frameSlideFill)
	canvas.DrawRect(0, 0, w, h, color.RGBA{0, 0, 0, 100})

	// Text eases in over the first 30% of the slide.
	p := easeOutCubic(local / (0.3 * spec.PerImageSec))
	alpha := uint8(p * 255)
	white := color.RGBA{255, 255, 255, alpha}

	textX := 72
	textY := int(float64(h) * 0.62)
	canvas.DrawText(fmt.Sprintf("Day %d", slide.Day), textX, textY, ports.TextStyle{
		FontSize: 36,
		Color:    white,
		Align:    ports.AlignLeft,
	})
	canvas.DrawText(slide.Area, textX, textY+70, ports.TextStyle{
		FontSize: 56,
		Color:    white,
		Align:    ports.AlignLeft,
	})

	countryX := textX
	if flag := r.cache.Flags[slide.Country]; flag != nil {
		canvas.DrawImageScaled(flag, textX, textY+130, 72, 48)
		countryX += 72 + 20
	}
	canvas.DrawText(slide.Country, countryX, textY+154, ports.TextStyle{
		FontSize: 34,
		Color:    white,
		Align:    ports.AlignLeft,
	})

	// Linear fade to black at both slide edges.
	if fade := r.edgeFade(local); fade > 0 {
		canvas.DrawRect(0, 0, w, h, color.RGBA{0, 0, 0, uint8(fade * 255)})
	}
}

func (r *Renderer) renderOutro(canvas ports.Canvas) {
	w, h := r.metrics.Width, r.metrics.Height
	canvas.DrawRect(0, 0, w, h, frameOutroFill)

	boxW := float64(w) * 0.5
	boxH := float64(h) * 0.16
	boxX := float64(w) * 0.25
	boxY := float64(h) * 0.42
	if r.cache.Logo != nil {
		b := r.cache.Logo.Bounds()
		pl := layout.ContainFit(float64(b.Dx()), float64(b.Dy()), boxW, boxH)
		canvas.DrawImageScaled(r.cache.Logo,
			int(boxX+pl.OffsetX), int(boxY+pl.OffsetY), int(pl.Width), int(pl.Height))
		return
	}
	canvas.DrawText("YouGuide", w/2, h/2, ports.TextStyle{
		FontSize: 48,
		Color:    frameInk,
		Align:    ports.AlignCenter,
	})
}

// edgeFade returns the black-overlay strength near the slide borders.
func (r *Renderer) edgeFade(local float64) float64 {
	fade := r.timeline.Spec.FadeSec
	per := r.timeline.Spec.PerImageSec
	if fade <= 0 {
		return 0
	}
	if local < fade {
		return linear(1 - local/fade)
	}
	if local > per-fade {
		return linear((local - (per - fade)) / fade)
	}
	return 0
}

// drawCoverFit paints a full-bleed center-cropped image, or a solid
// fill when the asset failed to load.
func (r *Renderer) drawCoverFit(canvas ports.Canvas, img image.Image, fill color.RGBA) {
	w, h := r.metrics.Width, r.metrics.Height
	if img == nil {
		canvas.DrawRect(0, 0, w, h, fill)
		return
	}
	b := img.Bounds()
	pl := layout.CoverFit(float64(b.Dx()), float64(b.Dy()), float64(w), float64(h))
	canvas.DrawImageScaled(img, int(pl.OffsetX), int(pl.OffsetY), int(pl.Width), int(pl.Height))
}

// drawFlagRow centers the distinct country flags near the bottom of
// the intro, faded in with the title. Countries whose flag failed to
// load are skipped.
func (r *Renderer) drawFlagRow(canvas ports.Canvas, y int, alpha uint8) {
	if alpha == 0 {
		return
	}
	var flags []image.Image
	for _, country := range r.timeline.Countries {
		if img := r.cache.Flags[country]; img != nil {
			flags = append(flags, img)
		}
	}
	if len(flags) == 0 {
		return
	}
	xs := r.metrics.FlagRow(len(flags))
	for i, img := range flags {
		canvas.DrawImageScaled(fadeImage(img, alpha), xs[i], y, layout.FlagSize, layout.FlagSize*2/3)
	}
}

// fadeImage multiplies an image's alpha without touching the original
// pixels. Full opacity returns the image unchanged.
func fadeImage(img image.Image, alpha uint8) image.Image {
	if alpha >= 255 {
		return img
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.DrawMask(out, b, img, b.Min, image.NewUniform(color.Alpha{A: alpha}), image.Point{}, draw.Over)
	return out
}

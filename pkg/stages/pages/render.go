package pages

import (
	"context"
	"image"

	"github.com/msuleman526/tripshow/pkg/pipeline"
	"github.com/msuleman526/tripshow/pkg/ports"
	"github.com/msuleman526/tripshow/pkg/stages/layout"
)

// RenderDeps carries the asset resolvers the walker needs.
type RenderDeps struct {
	Loader ports.ImageLoader
	Assets ports.AssetStore
	Maps   ports.MapProvider
	Logger ports.Logger
}

// Render walks a page description and replays it onto a backend. Every
// asset failure is absorbed by the element's declared fallback; Render
// only fails on context cancellation, never on a broken image.
func Render(ctx context.Context, doc []pipeline.Page, backend ports.PageBackend, pageW, pageH float64, deps RenderDeps) error {
	log := deps.Logger.WithComponent("render")

	for pi, page := range doc {
		if err := ctx.Err(); err != nil {
			return err
		}
		backend.BeginPage(pageW, pageH)
		for _, el := range page.Elements {
			switch el.Kind {
			case pipeline.ElementFill:
				backend.FillRect(el.Box.X, el.Box.Y, el.Box.W, el.Box.H, el.Color)
			case pipeline.ElementRule:
				backend.Rule(el.Box.X, el.Box.Y, el.X2, el.Y2, el.Color, el.LineWidth)
			case pipeline.ElementText:
				renderText(backend, el)
			case pipeline.ElementImage:
				img, err := resolveImage(ctx, el.Source, deps)
				if err != nil {
					log.Warn("Page %d: asset unavailable, using fallback: %s", pi+1, err)
					renderFallback(backend, el)
					continue
				}
				placeImage(backend, el, img)
			}
		}
	}
	return nil
}

func renderText(backend ports.PageBackend, el pipeline.Element) {
	style := ports.PageTextStyle{
		Size:  el.TextSize,
		Color: el.Color,
		Bold:  el.Bold,
		Align: parseAlign(el.Align),
	}
	if el.Wrap {
		backend.PlaceParagraph(el.Text, el.Box.X, el.Box.Y, el.Box.W, style)
		return
	}
	x, y := textAnchor(el, style)
	backend.PlaceText(el.Text, x, y, style)
}

// textAnchor derives the anchor point from the element's box: centered
// text anchors at the box center, left/right text at the box edge, with
// the baseline vertically centered.
func textAnchor(el pipeline.Element, style ports.PageTextStyle) (float64, float64) {
	y := el.Box.Y + el.Box.H/2 + style.Size/3
	switch style.Align {
	case ports.AlignCenter:
		return el.Box.X + el.Box.W/2, y
	case ports.AlignRight:
		return el.Box.X + el.Box.W, y
	default:
		return el.Box.X, y
	}
}

func placeImage(backend ports.PageBackend, el pipeline.Element, img image.Image) {
	bounds := img.Bounds()
	p := layout.Fit(el.Fit, float64(bounds.Dx()), float64(bounds.Dy()), el.Box.W, el.Box.H)
	backend.PlaceImage(
		img,
		el.Box.X+p.OffsetX,
		el.Box.Y+p.OffsetY,
		p.Width,
		p.Height,
		ports.PageClip{X: el.Box.X, Y: el.Box.Y, W: el.Box.W, H: el.Box.H},
	)
}

// renderFallback paints the element's declared failure recovery.
func renderFallback(backend ports.PageBackend, el pipeline.Element) {
	switch el.Fallback.Kind {
	case pipeline.FallbackFill:
		backend.FillRect(el.Box.X, el.Box.Y, el.Box.W, el.Box.H, el.Fallback.Color)
	case pipeline.FallbackText:
		backend.FillRect(el.Box.X, el.Box.Y, el.Box.W, el.Box.H, el.Fallback.Color)
		backend.PlaceText(el.Fallback.Text,
			el.Box.X+el.Box.W/2,
			el.Box.Y+el.Box.H/2,
			ports.PageTextStyle{Size: 14, Color: colorMuted, Align: ports.AlignCenter})
	case pipeline.FallbackSkip:
		// Element silently omitted.
	}
}

func resolveImage(ctx context.Context, src pipeline.ImageSource, deps RenderDeps) (image.Image, error) {
	switch src.Kind {
	case pipeline.SourceRemote:
		return deps.Loader.Load(ctx, src.URL)
	case pipeline.SourceFlag:
		return deps.Assets.Flag(src.Country)
	case pipeline.SourceShape:
		return deps.Assets.Shape(src.Country, ports.ShapeVariant(src.Variant))
	case pipeline.SourceIcon:
		return deps.Assets.Icon(ports.Icon(src.Icon))
	case pipeline.SourceMap:
		return deps.Maps.StaticMap(ctx, src.MapPoints, 1024, 1024)
	default:
		return deps.Loader.Load(ctx, src.URL)
	}
}

func parseAlign(s string) ports.TextAlign {
	switch s {
	case "center":
		return ports.AlignCenter
	case "right":
		return ports.AlignRight
	default:
		return ports.AlignLeft
	}
}

// Package pages builds the declarative page description of the travel
// book. The description is consumed twice and independently: once by the
// PDF backend and once by the raster preview backend.
package pages

import (
	"context"
	"fmt"
	"image/color"

	"github.com/msuleman526/tripshow/pkg/pipeline"
	"github.com/msuleman526/tripshow/pkg/ports"
	"github.com/msuleman526/tripshow/pkg/stages/layout"
	"github.com/msuleman526/tripshow/pkg/trip"
)

// Palette of the travel book.
var (
	colorWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorInk       = color.RGBA{R: 33, G: 37, B: 41, A: 255}
	colorMuted     = color.RGBA{R: 108, G: 117, B: 125, A: 255}
	colorCoverFill = color.RGBA{R: 23, G: 42, B: 58, A: 255}
	colorAccent    = color.RGBA{R: 235, G: 110, B: 75, A: 255}
	colorPanelGray = color.RGBA{R: 222, G: 224, B: 227, A: 255}
	colorMediaFill = color.RGBA{R: 206, G: 210, B: 214, A: 255}
)

// maxShapeCountries is the cutoff above which the summary page lists
// country names as plain text instead of boundary shapes.
const maxShapeCountries = 4

// Stage builds the ordered page description from a trip bundle.
type Stage struct {
	enricher Enricher
	logger   ports.Logger
}

// NewStage creates a pages stage. The enricher decides whether weather
// and altitude are resolved live or stubbed (preview).
func NewStage(enricher Enricher, logger ports.Logger) *Stage {
	return &Stage{
		enricher: enricher,
		logger:   logger.WithComponent("pages"),
	}
}

// Execute builds the page description in the fixed book order: cover,
// intro, countries & summary, map, per-point spreads in reverse supplied
// order (each followed by one full-bleed page per extra media item), and
// the closing logo page.
func (s *Stage) Execute(ctx context.Context, input pipeline.PagesInput) (pipeline.PagesResult, error) {
	b := input.Bundle
	m := layout.NewPageMetrics(input.PageWidth, input.PageHeight)
	stats := trip.ComputeStats(b.Trip, b.Points)
	days := trip.DayNumbers(b.Points)

	s.logger.Debug("Building pages for %d points, %d photos", stats.Steps, stats.Photos)

	doc := []pipeline.Page{
		s.coverPage(b, m),
		s.introPage(b, m),
		s.summaryPage(b, stats, m),
		s.mapPage(b, m),
	}

	// Per-point pages run in reverse supplied order: the most recent
	// point is rendered first. The video slideshow runs forward; the two
	// orders intentionally differ.
	for i := len(b.Points) - 1; i >= 0; i-- {
		p := b.Points[i]
		doc = append(doc, s.pointPage(ctx, p, trip.DayNumber(p, days), m))
		for _, media := range extraMedia(p) {
			doc = append(doc, s.mediaPage(media, m))
		}
	}

	doc = append(doc, s.closingPage(m))

	return pipeline.PagesResult{Pages: doc, Stats: stats}, nil
}

// coverPage is a full-bleed cover image with the trip name centered in
// large white text.
func (s *Stage) coverPage(b trip.Bundle, m layout.PageMetrics) pipeline.Page {
	full := m.FullBleed()
	page := pipeline.Page{Kind: pipeline.PageCover}

	page.Elements = append(page.Elements, pipeline.Element{
		Kind:     pipeline.ElementImage,
		Box:      full,
		Source:   pipeline.ImageSource{Kind: pipeline.SourceRemote, URL: b.Trip.CoverImageURL},
		Fit:      pipeline.FitCover,
		Fallback: pipeline.Fallback{Kind: pipeline.FallbackFill, Color: colorCoverFill},
	})
	page.Elements = append(page.Elements, centeredText(b.Trip.Name, full, 36, colorWhite, true))

	return page
}

// introPage is a full-bleed world map with the traveler's name and the
// trip name centered in black text over a white fallback.
func (s *Stage) introPage(b trip.Bundle, m layout.PageMetrics) pipeline.Page {
	full := m.FullBleed()
	page := pipeline.Page{Kind: pipeline.PageIntro}

	page.Elements = append(page.Elements, pipeline.Element{
		Kind:     pipeline.ElementImage,
		Box:      full,
		Source:   pipeline.ImageSource{Kind: pipeline.SourceIcon, Icon: string(ports.IconWorldMap)},
		Fit:      pipeline.FitCover,
		Fallback: pipeline.Fallback{Kind: pipeline.FallbackFill, Color: colorWhite},
	})

	nameBox := pipeline.Rect{X: 0, Y: full.H * 0.40, W: full.W, H: full.H * 0.10}
	tripBox := pipeline.Rect{X: 0, Y: full.H * 0.50, W: full.W, H: full.H * 0.08}
	page.Elements = append(page.Elements,
		centeredText(b.User.FullName(), nameBox, 24, colorInk, true),
		centeredText(b.Trip.Name, tripBox, 18, colorInk, false),
	)

	return page
}

// summaryPage is the two-column countries & stats page.
func (s *Stage) summaryPage(b trip.Bundle, stats trip.DerivedStats, m layout.PageMetrics) pipeline.Page {
	page := pipeline.Page{Kind: pipeline.PageSummary}
	left := m.LeftColumn()
	right := m.RightColumn()

	page.Elements = append(page.Elements, pipeline.Element{
		Kind:  pipeline.ElementFill,
		Box:   m.FullBleed(),
		Color: colorWhite,
	})

	// Left column: boundary shapes for few countries, a plain list for
	// many.
	countries := b.Trip.Countries
	if len(countries) <= maxShapeCountries && len(countries) > 0 {
		shapeH := left.H / float64(maxShapeCountries)
		for i, c := range countries {
			box := pipeline.Rect{X: left.X, Y: left.Y + float64(i)*shapeH, W: left.W, H: shapeH * 0.9}
			page.Elements = append(page.Elements, pipeline.Element{
				Kind: pipeline.ElementImage,
				Box:  box,
				Source: pipeline.ImageSource{
					Kind:    pipeline.SourceShape,
					Country: c,
					Variant: string(ports.ShapeBlue),
				},
				Fit:      pipeline.FitContain,
				Fallback: pipeline.Fallback{Kind: pipeline.FallbackText, Text: c, Color: colorPanelGray},
			})
		}
	} else {
		for i, c := range countries {
			page.Elements = append(page.Elements, pipeline.Element{
				Kind:     pipeline.ElementText,
				Box:      pipeline.Rect{X: left.X, Y: left.Y + float64(i)*22, W: left.W, H: 22},
				Text:     c,
				TextSize: 13,
				Color:    colorInk,
				Align:    "left",
			})
		}
	}

	// Right column: 2x2 icon+value stats grid.
	cells := m.StatsGrid(right)
	entries := []struct {
		icon  ports.Icon
		value string
		label string
	}{
		{ports.IconGlobe, fmt.Sprintf("%d", stats.Kilometers), "Kilometers"},
		{ports.IconCalendar, fmt.Sprintf("%d", stats.Days), "Days"},
		{ports.IconLocation, fmt.Sprintf("%d", stats.Steps), "Steps"},
		{ports.IconCamera, fmt.Sprintf("%d", stats.Photos), "Photos"},
	}
	for i, e := range entries {
		cell := cells[i]
		iconBox := pipeline.Rect{X: cell.X, Y: cell.Y, W: 28, H: 28}
		page.Elements = append(page.Elements,
			pipeline.Element{
				Kind:     pipeline.ElementImage,
				Box:      iconBox,
				Source:   pipeline.ImageSource{Kind: pipeline.SourceIcon, Icon: string(e.icon)},
				Fit:      pipeline.FitContain,
				Fallback: pipeline.Fallback{Kind: pipeline.FallbackSkip},
			},
			pipeline.Element{
				Kind:     pipeline.ElementText,
				Box:      pipeline.Rect{X: cell.X + 36, Y: cell.Y, W: cell.W - 36, H: cell.H / 2},
				Text:     e.value,
				TextSize: 20,
				Color:    colorInk,
				Align:    "left",
				Bold:     true,
			},
			pipeline.Element{
				Kind:     pipeline.ElementText,
				Box:      pipeline.Rect{X: cell.X + 36, Y: cell.Y + cell.H/2, W: cell.W - 36, H: cell.H / 2},
				Text:     e.label,
				TextSize: 11,
				Color:    colorMuted,
				Align:    "left",
			},
		)
	}

	// Home and destination row beneath the grid, joined by a rule.
	if len(b.Points) > 0 {
		home := b.Points[0].Area
		dest := b.Points[len(b.Points)-1].Area
		rowY := right.Y + right.H*0.45
		page.Elements = append(page.Elements,
			pipeline.Element{
				Kind:     pipeline.ElementImage,
				Box:      pipeline.Rect{X: right.X, Y: rowY, W: 24, H: 24},
				Source:   pipeline.ImageSource{Kind: pipeline.SourceIcon, Icon: string(ports.IconHome)},
				Fit:      pipeline.FitContain,
				Fallback: pipeline.Fallback{Kind: pipeline.FallbackSkip},
			},
			pipeline.Element{
				Kind:     pipeline.ElementText,
				Box:      pipeline.Rect{X: right.X + 32, Y: rowY, W: right.W - 32, H: 24},
				Text:     home,
				TextSize: 13,
				Color:    colorInk,
				Align:    "left",
			},
			pipeline.Element{
				Kind:      pipeline.ElementRule,
				Box:       pipeline.Rect{X: right.X + 12, Y: rowY + 36},
				X2:        right.X + 12,
				Y2:        rowY + 60,
				Color:     colorMuted,
				LineWidth: 1,
			},
			pipeline.Element{
				Kind:     pipeline.ElementImage,
				Box:      pipeline.Rect{X: right.X, Y: rowY + 72, W: 24, H: 24},
				Source:   pipeline.ImageSource{Kind: pipeline.SourceIcon, Icon: string(ports.IconDestination)},
				Fit:      pipeline.FitContain,
				Fallback: pipeline.Fallback{Kind: pipeline.FallbackSkip},
			},
			pipeline.Element{
				Kind:     pipeline.ElementText,
				Box:      pipeline.Rect{X: right.X + 32, Y: rowY + 72, W: right.W - 32, H: 24},
				Text:     dest,
				TextSize: 13,
				Color:    colorInk,
				Align:    "left",
			},
		)
	}

	return page
}

// mapPage is a single full-bleed static map of all point coordinates.
func (s *Stage) mapPage(b trip.Bundle, m layout.PageMetrics) pipeline.Page {
	points := make([]ports.MapPoint, 0, len(b.Points))
	for _, p := range b.Points {
		points = append(points, ports.MapPoint{Lat: p.Lat, Lng: p.Lng})
	}

	return pipeline.Page{
		Kind: pipeline.PageMap,
		Elements: []pipeline.Element{
			{Kind: pipeline.ElementFill, Box: m.FullBleed(), Color: colorWhite},
			{
				Kind:     pipeline.ElementImage,
				Box:      m.FullBleed(),
				Source:   pipeline.ImageSource{Kind: pipeline.SourceMap, MapPoints: points},
				Fit:      pipeline.FitCover,
				Fallback: pipeline.Fallback{Kind: pipeline.FallbackText, Text: "Map Not Available", Color: colorPanelGray},
			},
		},
	}
}

// pointPage is the two-column spread of one trip point: info column on
// the left, the first media image contain-fit on the right.
func (s *Stage) pointPage(ctx context.Context, p trip.Point, day int, m layout.PageMetrics) pipeline.Page {
	page := pipeline.Page{Kind: pipeline.PagePoint}
	left := m.LeftColumn()
	right := m.RightColumn()

	page.Elements = append(page.Elements, pipeline.Element{
		Kind:  pipeline.ElementFill,
		Box:   m.FullBleed(),
		Color: colorWhite,
	})

	// Country shape and flag at the top of the info column.
	shapeBox := pipeline.Rect{X: left.X, Y: left.Y, W: left.W, H: left.H * 0.18}
	page.Elements = append(page.Elements, pipeline.Element{
		Kind: pipeline.ElementImage,
		Box:  shapeBox,
		Source: pipeline.ImageSource{
			Kind:    pipeline.SourceShape,
			Country: p.Country,
			Variant: string(ports.ShapeBlue),
		},
		Fit:      pipeline.FitContain,
		Fallback: pipeline.Fallback{Kind: pipeline.FallbackText, Text: p.Country, Color: colorPanelGray},
	})
	page.Elements = append(page.Elements, pipeline.Element{
		Kind:     pipeline.ElementImage,
		Box:      pipeline.Rect{X: left.X, Y: left.Y + left.H*0.19, W: 36, H: 24},
		Source:   pipeline.ImageSource{Kind: pipeline.SourceFlag, Country: p.Country},
		Fit:      pipeline.FitContain,
		Fallback: pipeline.Fallback{Kind: pipeline.FallbackSkip},
	})

	// Area name and description.
	page.Elements = append(page.Elements,
		pipeline.Element{
			Kind:     pipeline.ElementText,
			Box:      pipeline.Rect{X: left.X, Y: left.Y + left.H*0.25, W: left.W, H: 24},
			Text:     p.Area,
			TextSize: 17,
			Color:    colorInk,
			Align:    "left",
			Bold:     true,
		},
		pipeline.Element{
			Kind:     pipeline.ElementText,
			Box:      pipeline.Rect{X: left.X, Y: left.Y + left.H*0.30, W: left.W, H: left.H * 0.35},
			Text:     p.Description,
			TextSize: 11,
			Color:    colorInk,
			Align:    "left",
			Wrap:     true,
		},
	)

	// Date, weather and altitude stat row. Weather and altitude are
	// advisory; the enricher absorbs every failure into "N/A".
	weather := s.enricher.Weather(ctx, p.Lat, p.Lng, p.CreatedAt)
	altitude := s.enricher.Altitude(ctx, p.Lat, p.Lng)
	statY := left.Y + left.H*0.70
	statRow := []string{
		p.CreatedAt.UTC().Format("Jan 2, 2006"),
		weather,
		altitude,
	}
	for i, v := range statRow {
		page.Elements = append(page.Elements, pipeline.Element{
			Kind:     pipeline.ElementText,
			Box:      pipeline.Rect{X: left.X, Y: statY + float64(i)*18, W: left.W, H: 18},
			Text:     v,
			TextSize: 11,
			Color:    colorMuted,
			Align:    "left",
		})
	}

	// Colored DAY N badge.
	badge := pipeline.Rect{X: left.X, Y: left.Y + left.H*0.88, W: 72, H: 26}
	page.Elements = append(page.Elements,
		pipeline.Element{Kind: pipeline.ElementFill, Box: badge, Color: colorAccent},
		centeredText(fmt.Sprintf("DAY %d", day), badge, 12, colorWhite, true),
	)

	// First media image on the right, contain-fit and centered.
	if first, ok := firstMedia(p); ok {
		page.Elements = append(page.Elements, pipeline.Element{
			Kind:     pipeline.ElementImage,
			Box:      right,
			Source:   pipeline.ImageSource{Kind: pipeline.SourceRemote, URL: first.URL},
			Fit:      pipeline.FitContain,
			Fallback: pipeline.Fallback{Kind: pipeline.FallbackFill, Color: colorMediaFill},
		})
	}

	return page
}

// mediaPage is one full-bleed page for an additional media item.
func (s *Stage) mediaPage(m2 trip.Media, m layout.PageMetrics) pipeline.Page {
	return pipeline.Page{
		Kind: pipeline.PageMedia,
		Elements: []pipeline.Element{
			{Kind: pipeline.ElementFill, Box: m.FullBleed(), Color: colorWhite},
			{
				Kind:     pipeline.ElementImage,
				Box:      m.FullBleed(),
				Source:   pipeline.ImageSource{Kind: pipeline.SourceRemote, URL: m2.URL},
				Fit:      pipeline.FitContain,
				Fallback: pipeline.Fallback{Kind: pipeline.FallbackFill, Color: colorMediaFill},
			},
		},
	}
}

// closingPage is white with the centered logo.
func (s *Stage) closingPage(m layout.PageMetrics) pipeline.Page {
	full := m.FullBleed()
	logoBox := pipeline.Rect{
		X: full.W * 0.3,
		Y: full.H * 0.42,
		W: full.W * 0.4,
		H: full.H * 0.16,
	}
	return pipeline.Page{
		Kind: pipeline.PageClosing,
		Elements: []pipeline.Element{
			{Kind: pipeline.ElementFill, Box: full, Color: colorWhite},
			{
				Kind:     pipeline.ElementImage,
				Box:      logoBox,
				Source:   pipeline.ImageSource{Kind: pipeline.SourceIcon, Icon: string(ports.IconLogo)},
				Fit:      pipeline.FitContain,
				Fallback: pipeline.Fallback{Kind: pipeline.FallbackText, Text: "YouGuide", Color: colorWhite},
			},
		},
	}
}

// centeredText builds a text element centered in a box.
func centeredText(text string, box pipeline.Rect, size float64, c color.RGBA, bold bool) pipeline.Element {
	return pipeline.Element{
		Kind:     pipeline.ElementText,
		Box:      box,
		Text:     text,
		TextSize: size,
		Color:    c,
		Align:    "center",
		Bold:     bold,
	}
}

// firstMedia returns the point's first media item with a non-empty URL.
func firstMedia(p trip.Point) (trip.Media, bool) {
	for _, m := range p.Media {
		if m.URL != "" {
			return m, true
		}
	}
	return trip.Media{}, false
}

// extraMedia returns the point's renderable media beyond the first one,
// in media array order.
func extraMedia(p trip.Point) []trip.Media {
	var usable []trip.Media
	for _, m := range p.Media {
		if m.URL != "" {
			usable = append(usable, m)
		}
	}
	if len(usable) <= 1 {
		return nil
	}
	return usable[1:]
}

// Package frames renders the trip video: a pure mapping from elapsed
// seconds to a fully drawn vertical frame across three phases (intro,
// slideshow, outro).
package frames

import (
	"github.com/msuleman526/tripshow/pkg/pipeline"
	"github.com/msuleman526/tripshow/pkg/trip"
)

// Slide is one slideshow entry: a media item with its owning point's
// display data.
type Slide struct {
	MediaURL string `json:"mediaUrl"`
	Day      int    `json:"day"`
	Area     string `json:"area"`
	Country  string `json:"country"`
}

// Timeline is the derived, purely functional schedule of the video.
// It is computed once per generation and never mutated.
type Timeline struct {
	Spec      pipeline.TimelineSpec `json:"spec"`
	TripName  string                `json:"tripName"`
	CoverURL  string                `json:"coverUrl"`
	Countries []string              `json:"countries"`
	Slides    []Slide               `json:"slides"`
}

// NewTimeline builds the timeline from a trip bundle. Slides follow the
// points' supplied order and each point's media array order — forward,
// unlike the book's reversed point pages.
func NewTimeline(b trip.Bundle, spec pipeline.TimelineSpec) Timeline {
	days := trip.DayNumbers(b.Points)

	var slides []Slide
	for _, p := range b.Points {
		for _, m := range p.Media {
			if m.URL == "" {
				continue
			}
			slides = append(slides, Slide{
				MediaURL: m.URL,
				Day:      trip.DayNumber(p, days),
				Area:     p.Area,
				Country:  p.Country,
			})
		}
	}

	return Timeline{
		Spec:      spec,
		TripName:  b.Trip.Name,
		CoverURL:  b.Trip.CoverImageURL,
		Countries: b.Trip.Countries,
		Slides:    slides,
	}
}

// Duration returns the exact total length in seconds:
// intro + N*perImage + outro.
func (t Timeline) Duration() float64 {
	return t.Spec.IntroSec + float64(len(t.Slides))*t.Spec.PerImageSec + t.Spec.OutroSec
}

// Phase labels the segment of the timeline a timestamp falls into.
type Phase string

const (
	PhaseIntro     Phase = "intro"
	PhaseSlideshow Phase = "slideshow"
	PhaseOutro     Phase = "outro"
)

// At resolves the phase at an elapsed time, and for the slideshow phase
// the slide index and the local time within that slide. Times beyond
// the end clamp to the outro.
func (t Timeline) At(elapsedSec float64) (phase Phase, slide int, local float64) {
	if elapsedSec < 0 {
		elapsedSec = 0
	}
	if elapsedSec < t.Spec.IntroSec {
		return PhaseIntro, 0, elapsedSec
	}
	slideshowEnd := t.Spec.IntroSec + float64(len(t.Slides))*t.Spec.PerImageSec
	if elapsedSec < slideshowEnd && len(t.Slides) > 0 {
		offset := elapsedSec - t.Spec.IntroSec
		idx := int(offset / t.Spec.PerImageSec)
		if idx >= len(t.Slides) {
			idx = len(t.Slides) - 1
		}
		return PhaseSlideshow, idx, offset - float64(idx)*t.Spec.PerImageSec
	}
	return PhaseOutro, 0, elapsedSec - slideshowEnd
}

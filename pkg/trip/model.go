// Package trip defines the typed trip graph and the statistics derived
// from it. The fetch boundary validates and normalizes the raw JSON once;
// downstream stages never have to defend against malformed data.
package trip

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrDataUnavailable indicates that the trip graph could not be fetched
// or was malformed. It is fatal: no partial rendering is attempted.
var ErrDataUnavailable = errors.New("trip data unavailable")

// Trip identifies a journey. Immutable once fetched.
type Trip struct {
	ID            string
	Name          string
	DistanceKm    float64
	Countries     []string // Parsed from the comma-separated source field
	CoverImageURL string
}

// Point is an ordered waypoint within a trip.
type Point struct {
	Lat         float64
	Lng         float64
	Country     string
	Area        string
	Description string
	CreatedAt   time.Time
	Media       []Media
}

// Media belongs to exactly one Point. A media item with an empty URL is
// kept in the model but excluded from photo counts and rendering.
type Media struct {
	URL string
}

// User is the trip owner; the name is used for display only.
type User struct {
	FirstName string
	LastName  string
}

// FullName returns the display name of the trip owner.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Bundle is the normalized trip graph returned by a TripSource.
type Bundle struct {
	Trip   Trip
	Points []Point
	User   User
}

// RawBundle mirrors the wire shape of the video-data endpoint.
type RawBundle struct {
	Trip struct {
		ID         string  `json:"id"`
		Name       string  `json:"name"`
		Distance   float64 `json:"distance"`
		Countries  string  `json:"countries"`
		CoverImage string  `json:"coverImage"`
	} `json:"trip"`
	TripPoints []struct {
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		Country     string  `json:"country"`
		Area        string  `json:"area"`
		Description string  `json:"description"`
		CreatedAt   string  `json:"createdAt"`
		Media       []struct {
			URL string `json:"url"`
		} `json:"media"`
	} `json:"tripPoints"`
	User struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"user"`
}

// Normalize validates a raw bundle and converts it into the typed model.
// Timestamps must parse; a point without a usable timestamp makes the
// whole bundle unusable because day numbering depends on it.
func Normalize(raw RawBundle) (Bundle, error) {
	if raw.Trip.Name == "" {
		return Bundle{}, fmt.Errorf("%w: trip name missing", ErrDataUnavailable)
	}

	b := Bundle{
		Trip: Trip{
			ID:            raw.Trip.ID,
			Name:          raw.Trip.Name,
			DistanceKm:    raw.Trip.Distance,
			Countries:     SplitCountries(raw.Trip.Countries),
			CoverImageURL: raw.Trip.CoverImage,
		},
		User: User{
			FirstName: raw.User.FirstName,
			LastName:  raw.User.LastName,
		},
	}

	b.Points = make([]Point, 0, len(raw.TripPoints))
	for i, rp := range raw.TripPoints {
		ts, err := parseTimestamp(rp.CreatedAt)
		if err != nil {
			return Bundle{}, fmt.Errorf("%w: point %d: %v", ErrDataUnavailable, i, err)
		}
		p := Point{
			Lat:         rp.Latitude,
			Lng:         rp.Longitude,
			Country:     strings.TrimSpace(rp.Country),
			Area:        strings.TrimSpace(rp.Area),
			Description: rp.Description,
			CreatedAt:   ts,
		}
		for _, m := range rp.Media {
			p.Media = append(p.Media, Media{URL: strings.TrimSpace(m.URL)})
		}
		b.Points = append(b.Points, p)
	}

	return b, nil
}

// SplitCountries parses the comma-separated country list, dropping empty
// entries.
func SplitCountries(s string) []string {
	parts := strings.Split(s, ",")
	countries := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			countries = append(countries, c)
		}
	}
	return countries
}

// timestampLayouts are the formats the backend has been observed to emit.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// Chronological returns the points sorted by creation time, earliest
// first. The input slice is not modified.
func Chronological(points []Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}

// AllMedia flattens the media of all points in supplied per-point and
// per-media order, skipping items with empty URLs. This is the slideshow
// order of the video.
func AllMedia(points []Point) []Media {
	var media []Media
	for _, p := range points {
		for _, m := range p.Media {
			if m.URL != "" {
				media = append(media, m)
			}
		}
	}
	return media
}

package trip

import (
	"math"
	"time"
)

// DerivedStats holds trip-level aggregates computed once per generation
// run and never mutated in place.
type DerivedStats struct {
	Kilometers int `json:"kilometers"`
	Days       int `json:"days"`
	Steps      int `json:"steps"`
	Photos     int `json:"photos"`
}

// ComputeStats derives the trip aggregates. Deterministic for a given
// input regardless of call order.
func ComputeStats(t Trip, points []Point) DerivedStats {
	return DerivedStats{
		Kilometers: int(math.Floor(t.DistanceKm)),
		Days:       len(distinctDates(points)),
		Steps:      len(points),
		Photos:     len(AllMedia(points)),
	}
}

// DayNumbers computes the 1-based day number of every point: the index
// of its calendar date among the trip's distinct dates, in order of
// first occurrence after sorting all points chronologically. The map is
// computed once per generation run and reused so that numbering stays
// referentially consistent mid-render.
//
// Two points sharing a calendar date always receive the same number, and
// numbers are non-decreasing along the chronological order.
func DayNumbers(points []Point) map[time.Time]int {
	numbers := make(map[time.Time]int)
	day := 0
	for _, p := range Chronological(points) {
		date := calendarDate(p.CreatedAt)
		if _, seen := numbers[date]; !seen {
			day++
			numbers[date] = day
		}
	}
	return numbers
}

// DayNumber returns the day number of a single point given the
// precomputed map from DayNumbers.
func DayNumber(p Point, numbers map[time.Time]int) int {
	return numbers[calendarDate(p.CreatedAt)]
}

func distinctDates(points []Point) map[time.Time]struct{} {
	dates := make(map[time.Time]struct{})
	for _, p := range points {
		dates[calendarDate(p.CreatedAt)] = struct{}{}
	}
	return dates
}

// calendarDate truncates a timestamp to its UTC calendar date.
func calendarDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Package types contains the shared record types for the ride log, timed
// segments, and road-coverage data.
package types

import "fmt"

// Derived holds the columns computed from a row's duration, distance, and
// climb. Speeds are mph, climb rate (VAM) is feet per hour, grade is feet per
// mile and percent of horizontal distance.
type Derived struct {
	MPH float64 `json:"mph"`
	VAM float64 `json:"vam"`
	FPM float64 `json:"fpm"`
	Pct float64 `json:"pct"`
	Kms float64 `json:"kms"`
}

// Ride is one row of the ride log plus its derived columns.
type Ride struct {
	Date  string  `json:"date"`
	Year  int     `json:"year"`
	Title string  `json:"title"`
	Hours float64 `json:"hours"`
	Miles float64 `json:"miles"`
	Feet  float64 `json:"feet"`
	Derived
}

// Attempt is one timed ride of a segment. A segment line with N times
// expands into N attempts sharing the segment's length and climb.
type Attempt struct {
	Segment string  `json:"segment"`
	Hours   float64 `json:"hours"`
	Miles   float64 `json:"miles"`
	Feet    float64 `json:"feet"`
	Derived
}

// PlaceEntry is one place tracked for road coverage: its total road miles
// and the cumulative percentage ridden, one value per month.
type PlaceEntry struct {
	Name        string    `json:"name"`
	Miles       float64   `json:"miles"`
	Percentages []float64 `json:"percentages"`
}

// Latest returns the most recent recorded percentage, or 0 if none.
func (p PlaceEntry) Latest() float64 {
	if len(p.Percentages) == 0 {
		return 0
	}
	return p.Percentages[len(p.Percentages)-1]
}

// Month is a zero-based offset from a configured start month. It replaces
// raw column indexes when labeling coverage series.
type Month struct {
	Index      int
	StartYear  int
	StartMonth int // 1-12
}

// String formats the month as "YYYY-M", e.g. index 0 with start 2019-6 is
// "2019-6" and index 7 is "2020-1".
func (m Month) String() string {
	total := m.StartMonth - 1 + m.Index
	return fmt.Sprintf("%d-%d", m.StartYear+total/12, total%12+1)
}

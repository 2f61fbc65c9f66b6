// Package interval provides time interval arithmetic for the scheduling core.
// All session intervals are half-open [start, end): the end instant is
// excluded, so back-to-back slots do not overlap.
package interval

import (
	"fmt"
	"time"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// New creates an interval and validates that it is non-empty.
func New(start, end time.Time) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// Validate checks that the interval is non-empty (start strictly before end).
func (iv Interval) Validate() error {
	if !iv.Start.Before(iv.End) {
		return fmt.Errorf("interval start %s must be before end %s",
			iv.Start.Format(time.RFC3339), iv.End.Format(time.RFC3339))
	}
	return nil
}

// Overlaps reports whether two half-open intervals intersect:
// startA < endB && startB < endA. Intervals that merely touch do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Duration returns the length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Hours returns the interval length in hours.
func (iv Interval) Hours() float64 {
	return iv.Duration().Hours()
}

// Weekday returns the interval's starting day of week as 0-6 (Sunday=0),
// matching the availability rule encoding.
func (iv Interval) Weekday() int {
	return int(iv.Start.Weekday())
}

// MinuteOfDay is a wall-clock time of day expressed as minutes since
// midnight. Availability rules are authored as "HH:mm" strings and compared
// purely on this value, with no timezone normalization.
type MinuteOfDay int

// ParseClock parses an "HH:mm" string into minutes since midnight.
func ParseClock(s string) (MinuteOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return MinuteOfDay(t.Hour()*60 + t.Minute()), nil
}

// ClockOf extracts the wall-clock minute of day from a timestamp.
func ClockOf(t time.Time) MinuteOfDay {
	return MinuteOfDay(t.Hour()*60 + t.Minute())
}

// String formats the minute of day back to "HH:mm".
func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// WithinWindow reports whether the minute of day lies inside [start, end],
// both ends inclusive. Window boundaries are valid booking boundaries.
func (m MinuteOfDay) WithinWindow(start, end MinuteOfDay) bool {
	return m >= start && m <= end
}

// Distance returns the absolute distance in minutes to another minute of day.
func (m MinuteOfDay) Distance(other MinuteOfDay) int {
	d := int(m) - int(other)
	if d < 0 {
		return -d
	}
	return d
}

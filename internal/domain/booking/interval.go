package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidInterval = errors.New("interval end must be after start")

// Interval is a half-open time range [start, end).
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

func (iv Interval) Start() time.Time {
	return iv.start
}

func (iv Interval) End() time.Time {
	return iv.end
}

func (iv Interval) Duration() time.Duration {
	return iv.end.Sub(iv.start)
}

// Overlaps reports whether two half-open intervals intersect.
// Touching endpoints (a.end == b.start) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start.Before(other.end) && iv.end.After(other.start)
}

func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.start) && t.Before(iv.end)
}

// DurationHours returns the billable hour count. Any fractional hour is
// billed as a full hour.
func (iv Interval) DurationHours() int {
	secs := int64(iv.Duration() / time.Second)
	hours := secs / 3600
	if secs%3600 != 0 {
		hours++
	}
	return int(hours)
}

func (iv Interval) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", iv.start.Format(time.RFC3339), iv.end.Format(time.RFC3339))
}

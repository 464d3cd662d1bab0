package daterange

import (
	"errors"
	"fmt"
	"time"
)

var ErrEndBeforeStart = errors.New("daterange: end date before start date")

// DateRange is an inclusive range of calendar dates. Both endpoints are
// normalized to UTC midnight so a range carries no time-of-day component.
type DateRange struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) (DateRange, error) {
	s := Truncate(start)
	e := Truncate(end)
	if e.Before(s) {
		return DateRange{}, ErrEndBeforeStart
	}
	return DateRange{start: s, end: e}, nil
}

// Truncate drops the time-of-day component, keeping the calendar date in UTC.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Days returns the inclusive day count: a one-day rental spans one day.
func (r DateRange) Days() int64 {
	if r.start.IsZero() && r.end.IsZero() {
		return 0
	}
	return int64(r.end.Sub(r.start)/(24*time.Hour)) + 1
}

// Overlaps reports whether two inclusive ranges share at least one day.
// A booking ending the day another starts counts as an overlap; there is
// no same-day turnover.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s]", r.start.Format(time.DateOnly), r.end.Format(time.DateOnly))
}

package booking

import (
	"fmt"
	"time"
)

type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, ErrInvalidPeriod
	}
	if start.After(end) || start.Equal(end) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{
		start: start,
		end:   end,
	}, nil
}

// ReconstructPeriod rebuilds a Period from persisted values without
// validation.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// Overlaps treats periods as half-open intervals [start, end):
// back-to-back bookings sharing a boundary instant do not collide.
func (p Period) Overlaps(other Period) bool {
	return p.start.Before(other.end) && p.end.After(other.start)
}

// Covers reports whether t falls inside the period, boundaries included.
func (p Period) Covers(t time.Time) bool {
	return !t.Before(p.start) && !t.After(p.end)
}

func (p Period) EndedBefore(t time.Time) bool {
	return p.end.Before(t)
}

func (p Period) StartsAfter(t time.Time) bool {
	return p.start.After(t)
}

func (p Period) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", p.start.Format(time.RFC3339), p.end.Format(time.RFC3339))
}

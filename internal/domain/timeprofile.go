package domain

import (
	"fmt"
	"time"

	"github.com/alexanderramin/horizon/internal/timedomain"
)

// Window is an intra-day eligibility window, half-open [start, end) in
// hour:minute of a single day. Cross-midnight windows are not
// representable — callers split those into two windows. Hours run 0..23
// and the end must follow the start on the same day, so the latest a
// window can end is 23:59; the last minute before midnight is not covered.
type Window struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// Validate checks the window's hour/minute ranges and that it does not
// span past midnight.
func (w Window) Validate() error {
	if w.StartHour < 0 || w.StartHour > 23 || w.EndHour < 0 || w.EndHour > 23 {
		return fmt.Errorf("window hour out of range [0,23]: start=%d end=%d", w.StartHour, w.EndHour)
	}
	if w.StartMinute < 0 || w.StartMinute > 59 || w.EndMinute < 0 || w.EndMinute > 59 {
		return fmt.Errorf("window minute out of range [0,59]: start=%d end=%d", w.StartMinute, w.EndMinute)
	}
	startMin := w.StartHour*60 + w.StartMinute
	endMin := w.EndHour*60 + w.EndMinute
	if endMin <= startMin {
		return fmt.Errorf("window end (%02d:%02d) must be after start (%02d:%02d); split cross-midnight windows in two",
			w.EndHour, w.EndMinute, w.StartHour, w.StartMinute)
	}
	return nil
}

// TimeProfile is a weekly template of allowed intra-day windows. It
// projects onto a horizon to produce a weight-1 interval domain over the
// matching slices of each day (spec section 3).
type TimeProfile struct {
	ID      string
	Name    string
	Windows map[Weekday][]Window
}

// Validate checks every window across every day.
func (p TimeProfile) Validate() error {
	for day, windows := range p.Windows {
		if !day.Valid() {
			return fmt.Errorf("time profile %q: invalid weekday %d", p.ID, int(day))
		}
		for i, w := range windows {
			if err := w.Validate(); err != nil {
				return fmt.Errorf("time profile %q: %s window %d: %w", p.ID, day, i, err)
			}
		}
	}
	return nil
}

// Project builds the weight-1 interval domain for this profile over
// [horizonStart, horizonStart+days), using horizonStart's location for
// every generated instant.
func (p TimeProfile) Project(horizonStart time.Time, days int) timedomain.Domain {
	result := timedomain.Empty()
	loc := horizonStart.Location()
	for offset := 0; offset < days; offset++ {
		day := horizonStart.AddDate(0, 0, offset)
		wd := WeekdayFromTime(day)
		for _, w := range p.Windows[wd] {
			start := time.Date(day.Year(), day.Month(), day.Day(), w.StartHour, w.StartMinute, 0, 0, loc)
			end := time.Date(day.Year(), day.Month(), day.Day(), w.EndHour, w.EndMinute, 0, 0, loc)
			result = result.Union(timedomain.Single(start, end, 1))
		}
	}
	return result
}

// IntersectProfiles intersects the horizon projections of every profile in
// profiles pairwise; an empty slice means "any time in horizon" and the
// caller is expected to substitute the full horizon domain in that case
// (spec section 4.3 step 2a).
func IntersectProfiles(profiles []TimeProfile, horizonStart time.Time, days int) timedomain.Domain {
	if len(profiles) == 0 {
		return timedomain.Empty()
	}
	result := profiles[0].Project(horizonStart, days)
	for _, p := range profiles[1:] {
		result = result.Intersection(p.Project(horizonStart, days))
	}
	return result
}

package availability

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// TimeRange is one window of a weekly schedule. Inactive ranges are kept so
// a provider can pause a window without losing it.
type TimeRange struct {
	Start  Clock `json:"start"`
	End    Clock `json:"end"`
	Active bool  `json:"active"`
}

func (r TimeRange) overlaps(o TimeRange) bool {
	return r.Start < o.End && o.Start < r.End
}

// Contains reports whether [start, end) lies within the range.
func (r TimeRange) Contains(start, end Clock) bool {
	return r.Start <= start && end <= r.End
}

type DaySchedule struct {
	DayOfWeek time.Weekday `json:"day_of_week"`
	Ranges    []TimeRange  `json:"ranges"`
}

// ActiveRanges returns the active ranges ordered by start.
func (d DaySchedule) ActiveRanges() []TimeRange {
	out := make([]TimeRange, 0, len(d.Ranges))
	for _, r := range d.Ranges {
		if r.Active {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b TimeRange) int { return int(a.Start - b.Start) })
	return out
}

// Template is a provider's recurring weekly availability.
type Template struct {
	ProviderID             uuid.UUID     `json:"provider_id"`
	SessionDurationMinutes int           `json:"session_duration_minutes"`
	Timezone               string        `json:"timezone"`
	Schedule               []DaySchedule `json:"schedule"`
	UpdatedAt              time.Time     `json:"updated_at"`
}

// Day returns the schedule for wd, if one is declared.
func (t Template) Day(wd time.Weekday) (DaySchedule, bool) {
	for _, d := range t.Schedule {
		if d.DayOfWeek == wd {
			return d, true
		}
	}
	return DaySchedule{}, false
}

// Location loads the template's IANA time zone.
func (t Template) Location() (*time.Location, error) {
	if t.Timezone == "" {
		return nil, invalid("timezone is required")
	}
	loc, err := time.LoadLocation(t.Timezone)
	if err != nil {
		return nil, invalid("unknown timezone %q", t.Timezone)
	}
	return loc, nil
}

// Validate returns an *InvalidAvailabilityError for malformed templates.
func (t Template) Validate() error {
	if t.SessionDurationMinutes < 1 || t.SessionDurationMinutes > int(EndOfDay) {
		return invalid("session duration must be between 1 and 1440 minutes, got %d", t.SessionDurationMinutes)
	}
	if _, err := t.Location(); err != nil {
		return err
	}

	seen := make(map[time.Weekday]bool, 7)
	for _, day := range t.Schedule {
		if day.DayOfWeek < time.Sunday || day.DayOfWeek > time.Saturday {
			return invalid("day of week %d is outside 0..6", int(day.DayOfWeek))
		}
		if seen[day.DayOfWeek] {
			return invalidOn(day.DayOfWeek, "day is declared more than once")
		}
		seen[day.DayOfWeek] = true

		for _, r := range day.Ranges {
			if r.Start < Midnight || r.End > EndOfDay {
				return invalidOn(day.DayOfWeek, "range %s-%s is outside the day", r.Start, r.End)
			}
			if r.Start >= r.End {
				return invalidOn(day.DayOfWeek, "range start %s is not before end %s", r.Start, r.End)
			}
		}

		active := day.ActiveRanges()
		for i := 1; i < len(active); i++ {
			if active[i-1].overlaps(active[i]) {
				return invalidOn(day.DayOfWeek, "active ranges %s-%s and %s-%s overlap",
					active[i-1].Start, active[i-1].End, active[i].Start, active[i].End)
			}
		}
	}
	return nil
}

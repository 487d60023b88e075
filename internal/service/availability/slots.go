package availability

import "fmt"

// Slot is a computed, never persisted, bookable window.
type Slot struct {
	StartTime Clock `json:"start_time"`
	EndTime   Clock `json:"end_time"`
}

func (s Slot) String() string { return fmt.Sprintf("%s-%s", s.StartTime, s.EndTime) }

// Overlaps reports whether the half-open windows of s and o intersect.
func (s Slot) Overlaps(o Slot) bool {
	return s.StartTime < o.EndTime && o.StartTime < s.EndTime
}

// GenerateSlots tiles every active range of date's weekday into consecutive
// sessions of the template's duration. A trailing remainder shorter than one
// session is dropped. A day without active ranges yields an empty slice.
// The output is ascending by start and identical for identical inputs.
func GenerateSlots(t Template, date Date) ([]Slot, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	slots := []Slot{}
	day, ok := t.Day(date.Weekday())
	if !ok {
		return slots, nil
	}

	step := t.SessionDurationMinutes
	for _, r := range day.ActiveRanges() {
		for start := r.Start; start.Add(step) <= r.End; start = start.Add(step) {
			slots = append(slots, Slot{StartTime: start, EndTime: start.Add(step)})
		}
	}
	return slots, nil
}

// FindSlot reports whether [start, end) is exactly one of the generated slots.
func FindSlot(slots []Slot, start, end Clock) (Slot, bool) {
	for _, s := range slots {
		if s.StartTime == start && s.EndTime == end {
			return s, true
		}
	}
	return Slot{}, false
}

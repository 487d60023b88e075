package availability

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

// 2026-03-02 is a Monday.
var monday = Date{Year: 2026, Month: time.March, Day: 2}

func rng(start, end string) TimeRange {
	return TimeRange{Start: MustClock(start), End: MustClock(end), Active: true}
}

func slot(start, end string) Slot {
	return Slot{StartTime: MustClock(start), EndTime: MustClock(end)}
}

func template(duration int, days ...DaySchedule) Template {
	return Template{
		ProviderID:             uuid.New(),
		SessionDurationMinutes: duration,
		Timezone:               "UTC",
		Schedule:               days,
	}
}

func TestGenerateSlots(t *testing.T) {
	paused := rng("13:00", "15:00")
	paused.Active = false

	tests := []struct {
		name string
		tmpl Template
		date Date
		want []Slot
	}{
		{
			name: "trailing remainder dropped",
			tmpl: template(60, DaySchedule{DayOfWeek: time.Monday, Ranges: []TimeRange{rng("09:00", "10:30")}}),
			date: monday,
			want: []Slot{slot("09:00", "10:00")},
		},
		{
			name: "exact tiling",
			tmpl: template(30, DaySchedule{DayOfWeek: time.Monday, Ranges: []TimeRange{rng("09:00", "10:30")}}),
			date: monday,
			want: []Slot{slot("09:00", "09:30"), slot("09:30", "10:00"), slot("10:00", "10:30")},
		},
		{
			name: "ranges sorted and inactive skipped",
			tmpl: template(45, DaySchedule{DayOfWeek: time.Monday, Ranges: []TimeRange{
				rng("16:00", "17:30"), paused, rng("08:00", "09:00"),
			}}),
			date: monday,
			want: []Slot{slot("08:00", "08:45"), slot("16:00", "16:45"), slot("16:45", "17:30")},
		},
		{
			name: "range ending at midnight",
			tmpl: template(60, DaySchedule{DayOfWeek: time.Monday, Ranges: []TimeRange{rng("22:00", "24:00")}}),
			date: monday,
			want: []Slot{slot("22:00", "23:00"), slot("23:00", "24:00")},
		},
		{
			name: "no schedule for weekday",
			tmpl: template(60, DaySchedule{DayOfWeek: time.Tuesday, Ranges: []TimeRange{rng("09:00", "17:00")}}),
			date: monday,
			want: []Slot{},
		},
		{
			name: "only inactive ranges",
			tmpl: template(60, DaySchedule{DayOfWeek: time.Monday, Ranges: []TimeRange{paused}}),
			date: monday,
			want: []Slot{},
		},
		{
			name: "range shorter than a session",
			tmpl: template(90, DaySchedule{DayOfWeek: time.Monday, Ranges: []TimeRange{rng("09:00", "10:00")}}),
			date: monday,
			want: []Slot{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateSlots(tt.tmpl, tt.date)
			if err != nil {
				t.Fatalf("GenerateSlots: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GenerateSlots = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateSlots_WeekdayIgnoresTimezone(t *testing.T) {
	tmpl := template(60, DaySchedule{DayOfWeek: time.Monday, Ranges: []TimeRange{rng("09:00", "11:00")}})
	for _, tz := range []string{"UTC", "Pacific/Kiritimati", "Pacific/Pago_Pago"} {
		tmpl.Timezone = tz
		if _, err := tmpl.Location(); err != nil {
			t.Skipf("tzdata unavailable: %v", err)
		}
		got, err := GenerateSlots(tmpl, monday)
		if err != nil {
			t.Fatalf("%s: %v", tz, err)
		}
		if len(got) != 2 {
			t.Errorf("%s: got %d slots, want 2", tz, len(got))
		}
	}
}

func TestGenerateSlots_Properties(t *testing.T) {
	tmpl := template(50, DaySchedule{DayOfWeek: time.Monday, Ranges: []TimeRange{
		rng("13:10", "18:00"), rng("07:00", "09:05"), rng("09:05", "12:00"),
	}})
	day, _ := tmpl.Day(time.Monday)

	first, err := GenerateSlots(tmpl, monday)
	if err != nil {
		t.Fatalf("GenerateSlots: %v", err)
	}

	for i := 0; i < 10; i++ {
		again, _ := GenerateSlots(tmpl, monday)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, again, first)
		}
	}

	for i, s := range first {
		if int(s.EndTime-s.StartTime) != tmpl.SessionDurationMinutes {
			t.Errorf("slot %s has wrong length", s)
		}
		contained := false
		for _, r := range day.ActiveRanges() {
			if r.Contains(s.StartTime, s.EndTime) {
				contained = true
			}
		}
		if !contained {
			t.Errorf("slot %s is not inside an active range", s)
		}
		if i > 0 {
			prev := first[i-1]
			if prev.StartTime >= s.StartTime {
				t.Errorf("slots out of order: %s then %s", prev, s)
			}
			if prev.Overlaps(s) {
				t.Errorf("slots overlap: %s and %s", prev, s)
			}
		}
	}
}

func TestGenerateSlots_InvalidTemplate(t *testing.T) {
	tests := []struct {
		name string
		tmpl Template
	}{
		{
			name: "overlapping active ranges",
			tmpl: template(60, DaySchedule{DayOfWeek: time.Monday, Ranges: []TimeRange{rng("09:00", "12:00"), rng("11:00", "13:00")}}),
		},
		{
			name: "start not before end",
			tmpl: template(60, DaySchedule{DayOfWeek: time.Monday, Ranges: []TimeRange{rng("12:00", "12:00")}}),
		},
		{
			name: "zero duration",
			tmpl: template(0, DaySchedule{DayOfWeek: time.Monday, Ranges: []TimeRange{rng("09:00", "10:00")}}),
		},
		{
			name: "duplicate day",
			tmpl: template(60,
				DaySchedule{DayOfWeek: time.Monday, Ranges: []TimeRange{rng("09:00", "10:00")}},
				DaySchedule{DayOfWeek: time.Monday, Ranges: []TimeRange{rng("11:00", "12:00")}},
			),
		},
		{
			name: "unknown timezone",
			tmpl: func() Template {
				tm := template(60)
				tm.Timezone = "Mars/Olympus_Mons"
				return tm
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSlots(tt.tmpl, monday)
			if !errors.Is(err, ErrInvalidAvailability) {
				t.Fatalf("err = %v, want ErrInvalidAvailability", err)
			}
			var invErr *InvalidAvailabilityError
			if !errors.As(err, &invErr) {
				t.Fatalf("err %T is not *InvalidAvailabilityError", err)
			}
		})
	}
}

func TestValidate_InactiveOverlapAllowed(t *testing.T) {
	paused := rng("09:30", "11:00")
	paused.Active = false
	tmpl := template(30, DaySchedule{DayOfWeek: time.Monday, Ranges: []TimeRange{rng("09:00", "10:00"), paused}})
	if err := tmpl.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

package availability

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 9*60 + 30},
		{in: "23:59", want: 23*60 + 59},
		{in: "24:00", want: EndOfDay},
		{in: "24:01", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "9:30", wantErr: true},
		{in: "09-30", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTime) {
					t.Fatalf("ParseClock(%q) err = %v, want ErrInvalidTime", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestClockJSON(t *testing.T) {
	r := TimeRange{Start: MustClock("09:00"), End: MustClock("10:30"), Active: true}
	raw, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"start":"09:00","end":"10:30","active":true}` {
		t.Errorf("json = %s", raw)
	}

	var back TimeRange
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != r {
		t.Errorf("round trip = %+v, want %+v", back, r)
	}
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2026-03-02")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Weekday() != time.Monday {
		t.Errorf("weekday = %s, want Monday", d.Weekday())
	}
	if got := d.AddDays(-2).String(); got != "2026-02-28" {
		t.Errorf("AddDays(-2) = %s", got)
	}
	if !d.Before(d.AddDays(1)) || d.Before(d) {
		t.Error("Before is not a strict ordering")
	}

	if _, err := ParseDate("2026-02-30"); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("ParseDate(2026-02-30) err = %v", err)
	}
}

func TestDateAt(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	d := Date{Year: 2026, Month: time.March, Day: 8}

	// Clocks move forward at 02:00 local on this date.
	got := d.At(MustClock("09:00"), loc)
	if want := time.Date(2026, time.March, 8, 13, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("At(09:00) = %s, want %s", got.UTC(), want)
	}

	midnight := d.At(EndOfDay, loc)
	if DateOf(midnight) != d.AddDays(1) || midnight.Hour() != 0 {
		t.Errorf("At(24:00) = %s, want next day midnight", midnight)
	}
}

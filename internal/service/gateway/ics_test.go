package gateway

import (
	"strings"
	"testing"
	"time"
)

func TestCalendarEvent_ICS(t *testing.T) {
	ev := CalendarEvent{
		UID:         "b1@psychapp",
		Method:      MethodCancel,
		Sequence:    3,
		Summary:     "Session; with, commas",
		Description: "Line one\nLine two",
		Start:       time.Date(2026, time.March, 2, 14, 0, 0, 0, time.UTC),
		End:         time.Date(2026, time.March, 2, 14, 50, 0, 0, time.UTC),
		Stamp:       time.Date(2026, time.February, 1, 9, 30, 0, 0, time.UTC),
		Organizer:   Participant{Name: "Dr. Lee", Email: "lee@example.com"},
		Attendees:   []Participant{{Name: "Sam, Jr.", Email: "sam@example.com"}, {Name: "No Mail"}},
	}

	out := string(ev.ICS())
	for _, want := range []string{
		"BEGIN:VCALENDAR\r\n",
		"METHOD:CANCEL\r\n",
		"SEQUENCE:3\r\n",
		"DTSTART:20260302T140000Z\r\n",
		"DTEND:20260302T145000Z\r\n",
		`SUMMARY:Session\; with\, commas` + "\r\n",
		`DESCRIPTION:Line one\nLine two` + "\r\n",
		"ORGANIZER;CN=Dr. Lee:mailto:lee@example.com\r\n",
		`ATTENDEE;CN="Sam, Jr.";ROLE=REQ-PARTICIPANT;RSVP=FALSE:mailto:sam@example.com` + "\r\n",
		"STATUS:CANCELLED\r\n",
		"END:VCALENDAR\r\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ICS missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "No Mail") {
		t.Error("attendee without email was rendered")
	}
}

func TestWriteFolded(t *testing.T) {
	long := "DESCRIPTION:" + strings.Repeat("é", 60)
	ev := CalendarEvent{Description: strings.Repeat("é", 60)}
	out := string(ev.ICS())

	for _, line := range strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n") {
		if len(line) > icsLineLimit {
			t.Errorf("line exceeds %d octets: %d", icsLineLimit, len(line))
		}
	}

	unfolded := strings.ReplaceAll(out, "\r\n ", "")
	if !strings.Contains(unfolded, long) {
		t.Error("unfolded output does not reproduce the original line")
	}
}

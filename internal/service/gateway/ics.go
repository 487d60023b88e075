package gateway

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

const (
	MethodRequest = "REQUEST"
	MethodCancel  = "CANCEL"

	icsTimeLayout = "20060102T150405Z"
	icsLineLimit  = 75
)

// CalendarEvent is a single-session iCalendar event in absolute time.
type CalendarEvent struct {
	UID         string
	Method      string
	Sequence    int
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Stamp       time.Time
	Organizer   Participant
	Attendees   []Participant
}

// ICS renders the event as an RFC 5545 VCALENDAR with CRLF line endings.
func (e CalendarEvent) ICS() []byte {
	var b bytes.Buffer
	w := func(line string) { writeFolded(&b, line) }

	method := e.Method
	if method == "" {
		method = MethodRequest
	}
	status := "CONFIRMED"
	if method == MethodCancel {
		status = "CANCELLED"
	}

	w("BEGIN:VCALENDAR")
	w("VERSION:2.0")
	w("PRODID:-//psychapp//booking//EN")
	w("CALSCALE:GREGORIAN")
	w("METHOD:" + method)
	w("BEGIN:VEVENT")
	w("UID:" + escapeText(e.UID))
	w(fmt.Sprintf("SEQUENCE:%d", e.Sequence))
	w("DTSTAMP:" + e.Stamp.UTC().Format(icsTimeLayout))
	w("DTSTART:" + e.Start.UTC().Format(icsTimeLayout))
	w("DTEND:" + e.End.UTC().Format(icsTimeLayout))
	w("SUMMARY:" + escapeText(e.Summary))
	if e.Description != "" {
		w("DESCRIPTION:" + escapeText(e.Description))
	}
	if e.Location != "" {
		w("LOCATION:" + escapeText(e.Location))
	}
	if e.Organizer.Email != "" {
		w(fmt.Sprintf("ORGANIZER;CN=%s:mailto:%s", paramValue(e.Organizer.Name), e.Organizer.Email))
	}
	for _, a := range e.Attendees {
		if a.Email == "" {
			continue
		}
		w(fmt.Sprintf("ATTENDEE;CN=%s;ROLE=REQ-PARTICIPANT;RSVP=FALSE:mailto:%s", paramValue(a.Name), a.Email))
	}
	w("STATUS:" + status)
	w("END:VEVENT")
	w("END:VCALENDAR")

	return b.Bytes()
}

func escapeText(s string) string {
	r := strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\r\n", `\n`, "\n", `\n`)
	return r.Replace(s)
}

// paramValue quotes a property parameter value when it contains separators.
func paramValue(s string) string {
	s = strings.ReplaceAll(s, `"`, "'")
	if strings.ContainsAny(s, ";:,") {
		return `"` + s + `"`
	}
	return s
}

// writeFolded writes line folded at 75 octets without splitting UTF-8 sequences.
func writeFolded(b *bytes.Buffer, line string) {
	limit := icsLineLimit
	for len(line) > limit {
		cut := limit
		for cut > 0 && !isRuneStart(line[cut]) {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
		// continuation lines carry a leading space
		limit = icsLineLimit - 1
	}
	b.WriteString(line)
	b.WriteString("\r\n")
}

func isRuneStart(c byte) bool { return c&0xC0 != 0x80 }

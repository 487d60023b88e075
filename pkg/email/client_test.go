package email

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestBuildMessage(t *testing.T) {
	ics := []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")
	msg, err := buildMessage("noreply@psychapp.test", Message{
		To:       []string{" client@example.com ", ""},
		Subject:  "Your session",
		TextBody: "See you soon",
		Calendar: &Attachment{ContentType: "text/calendar; method=REQUEST; charset=UTF-8", Data: ics},
		Attachments: []Attachment{
			{Filename: "invite.ics", ContentType: "application/ics", Data: ics},
		},
	})
	if err != nil {
		t.Fatalf("buildMessage: %v", err)
	}

	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"To: client@example.com",
		"Subject: Your session",
		"text/calendar; method=REQUEST",
		`filename="invite.ics"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestBuildMessage_Invalid(t *testing.T) {
	tests := []struct {
		name string
		from string
		msg  Message
	}{
		{name: "no from", msg: Message{To: []string{"a@b.c"}, Subject: "s", TextBody: "b"}},
		{name: "no recipients", from: "x@y.z", msg: Message{Subject: "s", TextBody: "b"}},
		{name: "no subject", from: "x@y.z", msg: Message{To: []string{"a@b.c"}, TextBody: "b"}},
		{name: "no body", from: "x@y.z", msg: Message{To: []string{"a@b.c"}, Subject: "s"}},
		{name: "empty attachment", from: "x@y.z", msg: Message{
			To: []string{"a@b.c"}, Subject: "s", TextBody: "b",
			Attachments: []Attachment{{Filename: "a.ics"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMessage(tt.from, tt.msg)
			var invalid *InvalidMessageError
			if !errors.As(err, &invalid) {
				t.Errorf("err = %v, want *InvalidMessageError", err)
			}
		})
	}
}

func TestSend_Disabled(t *testing.T) {
	c, err := New(Config{Enabled: false})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = c.Send(context.Background(), Message{To: []string{"a@b.c"}, Subject: "s", TextBody: "b"})
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("err = %v, want ErrDisabled", err)
	}
}

func TestNew_EnabledNeedsRelay(t *testing.T) {
	_, err := New(Config{Enabled: true, From: "noreply@psychapp.test"})
	var invalid *InvalidMessageError
	if !errors.As(err, &invalid) || invalid.Field != "config" {
		t.Errorf("err = %v, want config InvalidMessageError", err)
	}
}

func TestSend_RelayUnreachable(t *testing.T) {
	c, err := New(Config{
		Enabled:            true,
		From:               "noreply@psychapp.test",
		SMTPHost:           "127.0.0.1",
		SMTPPort:           1,
		SMTPTimeoutSeconds: 5,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = c.Send(context.Background(), Message{To: []string{"a@b.c"}, Subject: "s", TextBody: "b"})
	var sendErr *SendError
	if !errors.As(err, &sendErr) {
		t.Fatalf("err = %v, want *SendError", err)
	}
	if sendErr.Host != "127.0.0.1" || sendErr.Port != 1 || sendErr.Unwrap() == nil {
		t.Errorf("SendError = %+v", sendErr)
	}
}

func TestTemplates(t *testing.T) {
	data := SessionEmailData{
		RecipientName:   "Sam <script>",
		CounterpartName: "Dr. Lee",
		Date:            "2026-03-02",
		StartTime:       "09:00",
		EndTime:         "10:00",
		Timezone:        "America/New_York",
		JoinURL:         "https://zoom.us/j/1",
	}

	invite := BuildSessionInviteEmail(data)
	if !strings.Contains(invite.TextBody, "https://zoom.us/j/1") || !strings.Contains(invite.TextBody, "booked") {
		t.Errorf("invite text = %q", invite.TextBody)
	}
	if strings.Contains(invite.HTMLBody, "<script>") {
		t.Error("invite html is not escaped")
	}

	data.Rescheduled = true
	if moved := BuildSessionInviteEmail(data); !strings.Contains(moved.Subject, "rescheduled") {
		t.Errorf("reschedule subject = %q", moved.Subject)
	}

	data.Reason = "illness"
	if c := BuildCancellationEmail(data); !strings.Contains(c.TextBody, "Reason: illness") {
		t.Errorf("cancellation text = %q", c.TextBody)
	}

	if r := BuildReminderEmail(data); !strings.Contains(r.Subject, "09:00") {
		t.Errorf("reminder subject = %q", r.Subject)
	}
}

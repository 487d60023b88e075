package gateway

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jasimarif/psychology-app/pkg/email"
)

type fakeMail struct {
	sent    []email.Message
	failFor string
}

func (f *fakeMail) Enabled() bool   { return true }
func (f *fakeMail) AppName() string { return "Psychapp" }
func (f *fakeMail) Send(_ context.Context, m email.Message) error {
	if len(m.To) == 1 && m.To[0] == f.failFor {
		return errors.New("mailbox full")
	}
	f.sent = append(f.sent, m)
	return nil
}

type fakeTexts struct {
	sent []string
}

func (f *fakeTexts) IsEnabled() bool { return true }
func (f *fakeTexts) SendTemplate(_ context.Context, phone, templateID string, params map[string]string) error {
	f.sent = append(f.sent, phone+"|"+templateID+"|"+params["date"]+" "+params["time"])
	return nil
}

func notice(t *testing.T) Notice {
	return Notice{
		Client:      Participant{Name: "Sam", Email: "sam@example.com", Phone: "+12015550123"},
		Provider:    Participant{Name: "Dr. Lee", Email: "lee@example.com"},
		Appointment: appointment(t, "UTC"),
		JoinURL:     "https://video.test/m1",
	}
}

func TestMailNotifier_InviteBothParties(t *testing.T) {
	mail := &fakeMail{}
	n := NewMailNotifier(mail, nil, TextTemplates{})

	nt := notice(t)
	nt.Event = &CalendarEvent{UID: "x", Method: MethodRequest}
	if err := n.SendInvite(context.Background(), nt); err != nil {
		t.Fatalf("SendInvite: %v", err)
	}

	if len(mail.sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(mail.sent))
	}
	if mail.sent[0].To[0] != "sam@example.com" || !strings.Contains(mail.sent[0].TextBody, "Dr. Lee") {
		t.Errorf("client email = %+v", mail.sent[0])
	}
	if mail.sent[1].To[0] != "lee@example.com" || !strings.Contains(mail.sent[1].TextBody, "Sam") {
		t.Errorf("provider email = %+v", mail.sent[1])
	}
	if len(mail.sent[0].Attachments) != 1 || mail.sent[0].Calendar == nil {
		t.Error("invite has no calendar attachment")
	}
}

func TestMailNotifier_CancellationTextsAndPartialFailure(t *testing.T) {
	mail := &fakeMail{failFor: "sam@example.com"}
	texts := &fakeTexts{}
	n := NewMailNotifier(mail, texts, TextTemplates{Cancellation: "tpl-cancel"})

	err := n.SendCancellationNotice(context.Background(), notice(t))
	if err == nil || !strings.Contains(err.Error(), "mailbox full") {
		t.Fatalf("err = %v, want joined mail failure", err)
	}
	if len(mail.sent) != 1 || mail.sent[0].To[0] != "lee@example.com" {
		t.Errorf("provider email not sent after client failure: %+v", mail.sent)
	}
	if len(texts.sent) != 1 || texts.sent[0] != "+12015550123|tpl-cancel|2026-03-02 09:00" {
		t.Errorf("texts = %v", texts.sent)
	}
}

func TestMailNotifier_ReminderWithoutTemplateSkipsText(t *testing.T) {
	texts := &fakeTexts{}
	n := NewMailNotifier(&fakeMail{}, texts, TextTemplates{})
	if err := n.SendReminder(context.Background(), notice(t)); err != nil {
		t.Fatalf("SendReminder: %v", err)
	}
	if len(texts.sent) != 0 {
		t.Errorf("texts = %v", texts.sent)
	}
}

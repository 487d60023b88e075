package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/jasimarif/psychology-app/pkg/email"
)

// MailSender is satisfied by *email.Client.
type MailSender interface {
	Enabled() bool
	AppName() string
	Send(ctx context.Context, m email.Message) error
}

// TextSender is satisfied by *sms.Client.
type TextSender interface {
	IsEnabled() bool
	SendTemplate(ctx context.Context, phone, templateID string, params map[string]string) error
}

// TextTemplates names the sms.ir templates for each notice. An empty ID
// disables texts for that notice.
type TextTemplates struct {
	Cancellation string
	Reminder     string
}

// MailNotifier is the NotificationProvider that emails both participants,
// attaching an iCalendar file to invites and cancellations, and optionally
// texts them cancellation and reminder notices.
type MailNotifier struct {
	mail      MailSender
	texts     TextSender
	templates TextTemplates
}

// NewMailNotifier builds the notifier. texts may be nil.
func NewMailNotifier(mail MailSender, texts TextSender, templates TextTemplates) *MailNotifier {
	return &MailNotifier{mail: mail, texts: texts, templates: templates}
}

func (n *MailNotifier) IsAvailable() bool {
	return (n.mail != nil && n.mail.Enabled()) || n.textsEnabled()
}

func (n *MailNotifier) textsEnabled() bool {
	return n.texts != nil && n.texts.IsEnabled()
}

func (n *MailNotifier) SendInvite(ctx context.Context, notice Notice) error {
	return n.eachParticipant(notice, func(to, other Participant) error {
		msg := email.BuildSessionInviteEmail(n.emailData(notice, to, other))
		attachCalendar(&msg, notice.Event)
		return n.sendMail(ctx, to, msg)
	})
}

func (n *MailNotifier) SendCancellationNotice(ctx context.Context, notice Notice) error {
	return n.eachParticipant(notice, func(to, other Participant) error {
		msg := email.BuildCancellationEmail(n.emailData(notice, to, other))
		attachCalendar(&msg, notice.Event)
		return errors.Join(
			n.sendMail(ctx, to, msg),
			n.sendText(ctx, to, n.templates.Cancellation, notice),
		)
	})
}

func (n *MailNotifier) SendReminder(ctx context.Context, notice Notice) error {
	return n.eachParticipant(notice, func(to, other Participant) error {
		msg := email.BuildReminderEmail(n.emailData(notice, to, other))
		return errors.Join(
			n.sendMail(ctx, to, msg),
			n.sendText(ctx, to, n.templates.Reminder, notice),
		)
	})
}

// eachParticipant runs fn for the client then the provider and joins failures,
// so one bad address does not stop the other participant's notice.
func (n *MailNotifier) eachParticipant(notice Notice, fn func(to, other Participant) error) error {
	return errors.Join(
		fn(notice.Client, notice.Provider),
		fn(notice.Provider, notice.Client),
	)
}

func (n *MailNotifier) emailData(notice Notice, to, other Participant) email.SessionEmailData {
	appName := ""
	if n.mail != nil {
		appName = n.mail.AppName()
	}
	return email.SessionEmailData{
		RecipientName:   to.Name,
		CounterpartName: other.Name,
		AppName:         appName,
		Date:            notice.Appointment.Date.String(),
		StartTime:       notice.Appointment.Start.String(),
		EndTime:         notice.Appointment.End.String(),
		Timezone:        notice.Appointment.Timezone,
		JoinURL:         notice.JoinURL,
		Password:        notice.MeetingPassword,
		Reason:          notice.Reason,
		Rescheduled:     notice.Rescheduled,
	}
}

func (n *MailNotifier) sendMail(ctx context.Context, to Participant, msg email.Message) error {
	if n.mail == nil || !n.mail.Enabled() || to.Email == "" {
		return nil
	}
	msg.To = []string{to.Email}
	if err := n.mail.Send(ctx, msg); err != nil {
		return fmt.Errorf("email %s: %w", to.Email, err)
	}
	return nil
}

func (n *MailNotifier) sendText(ctx context.Context, to Participant, templateID string, notice Notice) error {
	if !n.textsEnabled() || templateID == "" || to.Phone == "" {
		return nil
	}
	params := map[string]string{
		"date": notice.Appointment.Date.String(),
		"time": notice.Appointment.Start.String(),
	}
	if err := n.texts.SendTemplate(ctx, to.Phone, templateID, params); err != nil {
		return fmt.Errorf("sms %s: %w", to.Phone, err)
	}
	return nil
}

func attachCalendar(msg *email.Message, ev *CalendarEvent) {
	if ev == nil {
		return
	}
	ics := ev.ICS()
	msg.Calendar = &email.Attachment{
		ContentType: "text/calendar; method=" + ev.Method + "; charset=UTF-8",
		Data:        ics,
	}
	msg.Attachments = append(msg.Attachments, email.Attachment{
		Filename:    "session.ics",
		ContentType: "application/ics",
		Data:        ics,
	})
}

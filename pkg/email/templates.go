package email

import (
	"fmt"
	"html"
	"strings"
)

// SessionEmailData contains the data needed for session email templates.
// Date and times are already formatted in the provider's time zone.
type SessionEmailData struct {
	RecipientName   string
	CounterpartName string
	AppName         string
	Date            string
	StartTime       string
	EndTime         string
	Timezone        string
	JoinURL         string
	Password        string
	Reason          string
	Rescheduled     bool
	PrimaryColor    string
}

func (d SessionEmailData) defaults() SessionEmailData {
	if d.AppName == "" {
		d.AppName = "Psychapp"
	}
	if d.RecipientName == "" {
		d.RecipientName = "there"
	}
	if d.CounterpartName == "" {
		d.CounterpartName = "your provider"
	}
	if d.PrimaryColor == "" {
		d.PrimaryColor = "#2563eb"
	}
	return d
}

func (d SessionEmailData) when() string {
	return fmt.Sprintf("%s, %s-%s (%s)", d.Date, d.StartTime, d.EndTime, d.Timezone)
}

// BuildSessionInviteEmail announces a newly booked or rescheduled session.
func BuildSessionInviteEmail(data SessionEmailData) Message {
	data = data.defaults()

	verb := "booked"
	subject := fmt.Sprintf("Your %s session on %s", data.AppName, data.Date)
	if data.Rescheduled {
		verb = "moved"
		subject = fmt.Sprintf("Your %s session was rescheduled to %s", data.AppName, data.Date)
	}

	var join strings.Builder
	if data.JoinURL != "" {
		fmt.Fprintf(&join, "\nJoin the video session: %s\n", data.JoinURL)
		if data.Password != "" {
			fmt.Fprintf(&join, "Meeting password: %s\n", data.Password)
		}
	}

	textBody := fmt.Sprintf(`Hi %s,

Your session with %s has been %s.

When: %s
%s
A calendar invitation is attached.

Thanks,
The %s Team`,
		data.RecipientName, data.CounterpartName, verb, data.when(), join.String(), data.AppName)

	htmlJoin := ""
	if data.JoinURL != "" {
		htmlJoin = fmt.Sprintf(`<p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: %s; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Join session</a>
    </p>`, html.EscapeString(data.JoinURL), data.PrimaryColor)
	}

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: %s;">Hi %s,</h2>
    <p>Your session with <strong>%s</strong> has been %s.</p>
    <p><strong>When:</strong> %s</p>
    %s
    <p style="color: #666; font-size: 14px;">A calendar invitation is attached.</p>
    <p>Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.PrimaryColor, html.EscapeString(data.RecipientName), html.EscapeString(data.CounterpartName), verb,
		html.EscapeString(data.when()), htmlJoin, html.EscapeString(data.AppName))

	return Message{Subject: subject, TextBody: textBody, HTMLBody: htmlBody}
}

// BuildCancellationEmail tells a participant that a session was cancelled.
func BuildCancellationEmail(data SessionEmailData) Message {
	data = data.defaults()

	subject := fmt.Sprintf("Your %s session on %s was cancelled", data.AppName, data.Date)

	reason := ""
	if data.Reason != "" {
		reason = fmt.Sprintf("\nReason: %s\n", data.Reason)
	}

	textBody := fmt.Sprintf(`Hi %s,

Your session with %s on %s has been cancelled.
%s
Thanks,
The %s Team`,
		data.RecipientName, data.CounterpartName, data.when(), reason, data.AppName)

	htmlReason := ""
	if data.Reason != "" {
		htmlReason = fmt.Sprintf(`<p><strong>Reason:</strong> %s</p>`, html.EscapeString(data.Reason))
	}

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: %s;">Hi %s,</h2>
    <p>Your session with <strong>%s</strong> on %s has been cancelled.</p>
    %s
    <p>Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.PrimaryColor, html.EscapeString(data.RecipientName), html.EscapeString(data.CounterpartName),
		html.EscapeString(data.when()), htmlReason, html.EscapeString(data.AppName))

	return Message{Subject: subject, TextBody: textBody, HTMLBody: htmlBody}
}

// BuildReminderEmail reminds a participant of an upcoming session.
func BuildReminderEmail(data SessionEmailData) Message {
	data = data.defaults()

	subject := fmt.Sprintf("Reminder: %s session on %s at %s", data.AppName, data.Date, data.StartTime)

	join := ""
	if data.JoinURL != "" {
		join = fmt.Sprintf("\nJoin the video session: %s\n", data.JoinURL)
	}

	textBody := fmt.Sprintf(`Hi %s,

This is a reminder of your upcoming session with %s.

When: %s
%s
Thanks,
The %s Team`,
		data.RecipientName, data.CounterpartName, data.when(), join, data.AppName)

	return Message{Subject: subject, TextBody: textBody}
}

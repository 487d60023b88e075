package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/jasimarif/psychology-app/pkg/observability"
)

// Timeouts bounds each collaborator call independently.
type Timeouts struct {
	Payment      time.Duration
	Video        time.Duration
	Notification time.Duration
}

// DefaultTimeouts is used for any zero field.
var DefaultTimeouts = Timeouts{
	Payment:      10 * time.Second,
	Video:        10 * time.Second,
	Notification: 15 * time.Second,
}

// Gateway is the only path from the booking engine to external systems.
// Every call checks availability first, runs under its collaborator's
// timeout and returns failures as *IntegrationError.
type Gateway struct {
	payment  PaymentProvider
	video    VideoMeetingProvider
	notify   NotificationProvider
	timeouts Timeouts
	metrics  *observability.BookingMetrics
	now      func() time.Time
	app      string
}

type Option func(*Gateway)

func WithMetrics(m *observability.BookingMetrics) Option {
	return func(g *Gateway) { g.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(g *Gateway) { g.now = now }
}

// WithProductName sets the name used in meeting topics and calendar entries.
func WithProductName(name string) Option {
	return func(g *Gateway) { g.app = name }
}

// New builds a Gateway. A nil collaborator is treated as unavailable.
func New(payment PaymentProvider, video VideoMeetingProvider, notify NotificationProvider, timeouts Timeouts, opts ...Option) *Gateway {
	if timeouts.Payment <= 0 {
		timeouts.Payment = DefaultTimeouts.Payment
	}
	if timeouts.Video <= 0 {
		timeouts.Video = DefaultTimeouts.Video
	}
	if timeouts.Notification <= 0 {
		timeouts.Notification = DefaultTimeouts.Notification
	}

	g := &Gateway{
		payment:  payment,
		video:    video,
		notify:   notify,
		timeouts: timeouts,
		now:      time.Now,
		app:      "Psychapp",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) PaymentAvailable() bool {
	return g.payment != nil && g.payment.IsAvailable()
}

func (g *Gateway) VideoAvailable() bool {
	return g.video != nil && g.video.IsAvailable()
}

func (g *Gateway) NotificationAvailable() bool {
	return g.notify != nil && g.notify.IsAvailable()
}

func (g *Gateway) call(ctx context.Context, who Collaborator, op string, available bool, timeout time.Duration, fn func(context.Context) error) error {
	if !available {
		return &IntegrationError{Collaborator: who, Operation: op, Err: ErrUnavailable}
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := fn(callCtx); err != nil {
		g.metrics.IntegrationFailure(ctx, string(who), op)
		return &IntegrationError{Collaborator: who, Operation: op, Err: err}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Payment
// ---------------------------------------------------------------------------

func (g *Gateway) CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error) {
	var out *Checkout
	err := g.call(ctx, CollaboratorPayment, "create_checkout", g.PaymentAvailable(), g.timeouts.Payment, func(ctx context.Context) error {
		var err error
		out, err = g.payment.CreateCheckout(ctx, req)
		return err
	})
	return out, err
}

func (g *Gateway) Refund(ctx context.Context, req RefundRequest) (string, error) {
	var refundID string
	err := g.call(ctx, CollaboratorPayment, "refund", g.PaymentAvailable(), g.timeouts.Payment, func(ctx context.Context) error {
		var err error
		refundID, err = g.payment.Refund(ctx, req)
		return err
	})
	return refundID, err
}

// ---------------------------------------------------------------------------
// Video
// ---------------------------------------------------------------------------

func (g *Gateway) CreateMeeting(ctx context.Context, appt Appointment) (*Meeting, error) {
	var out *Meeting
	err := g.call(ctx, CollaboratorVideo, "create_meeting", g.VideoAvailable(), g.timeouts.Video, func(ctx context.Context) error {
		start, _, err := appt.Interval()
		if err != nil {
			return fmt.Errorf("resolve appointment: %w", err)
		}
		out, err = g.video.CreateMeeting(ctx, MeetingRequest{
			BookingID:       appt.BookingID,
			Topic:           g.app + " session",
			Start:           start.UTC(),
			DurationMinutes: appt.DurationMinutes(),
			Timezone:        appt.Timezone,
		})
		return err
	})
	return out, err
}

func (g *Gateway) UpdateMeeting(ctx context.Context, meetingID string, appt Appointment) error {
	return g.call(ctx, CollaboratorVideo, "update_meeting", g.VideoAvailable(), g.timeouts.Video, func(ctx context.Context) error {
		start, _, err := appt.Interval()
		if err != nil {
			return fmt.Errorf("resolve appointment: %w", err)
		}
		return g.video.UpdateMeeting(ctx, meetingID, start.UTC(), appt.DurationMinutes(), appt.Timezone)
	})
}

func (g *Gateway) DeleteMeeting(ctx context.Context, meetingID string) error {
	return g.call(ctx, CollaboratorVideo, "delete_meeting", g.VideoAvailable(), g.timeouts.Video, func(ctx context.Context) error {
		return g.video.DeleteMeeting(ctx, meetingID)
	})
}

// ---------------------------------------------------------------------------
// Notification
// ---------------------------------------------------------------------------

func (g *Gateway) SendInvite(ctx context.Context, n Notice) error {
	return g.call(ctx, CollaboratorNotification, "send_invite", g.NotificationAvailable(), g.timeouts.Notification, func(ctx context.Context) error {
		ev, err := g.calendarEvent(n, MethodRequest)
		if err != nil {
			return err
		}
		n.Event = ev
		return g.notify.SendInvite(ctx, n)
	})
}

func (g *Gateway) SendCancellationNotice(ctx context.Context, n Notice) error {
	return g.call(ctx, CollaboratorNotification, "send_cancellation", g.NotificationAvailable(), g.timeouts.Notification, func(ctx context.Context) error {
		ev, err := g.calendarEvent(n, MethodCancel)
		if err != nil {
			return err
		}
		n.Event = ev
		return g.notify.SendCancellationNotice(ctx, n)
	})
}

func (g *Gateway) SendReminder(ctx context.Context, n Notice) error {
	return g.call(ctx, CollaboratorNotification, "send_reminder", g.NotificationAvailable(), g.timeouts.Notification, func(ctx context.Context) error {
		return g.notify.SendReminder(ctx, n)
	})
}

func (g *Gateway) calendarEvent(n Notice, method string) (*CalendarEvent, error) {
	start, end, err := n.Appointment.Interval()
	if err != nil {
		return nil, fmt.Errorf("resolve appointment: %w", err)
	}

	desc := "Therapy session booked through " + g.app + "."
	if n.JoinURL != "" {
		desc += "\nJoin: " + n.JoinURL
	}
	if n.Reason != "" {
		desc += "\nReason: " + n.Reason
	}

	return &CalendarEvent{
		UID:         n.Appointment.BookingID.String() + "@psychapp",
		Method:      method,
		Sequence:    n.Sequence,
		Summary:     g.app + " session",
		Description: desc,
		Location:    n.JoinURL,
		Start:       start,
		End:         end,
		Stamp:       g.now(),
		Organizer:   n.Provider,
		Attendees:   []Participant{n.Client, n.Provider},
	}, nil
}

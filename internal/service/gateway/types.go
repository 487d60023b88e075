package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/internal/service/availability"
)

// Appointment is the zone-naive session time carried by a booking. It is
// resolved to absolute instants only inside this package.
type Appointment struct {
	BookingID uuid.UUID
	Date      availability.Date
	Start     availability.Clock
	End       availability.Clock
	Timezone  string
}

// Interval resolves the appointment to absolute start and end instants.
func (a Appointment) Interval() (time.Time, time.Time, error) {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return a.Date.At(a.Start, loc), a.Date.At(a.End, loc), nil
}

func (a Appointment) DurationMinutes() int { return int(a.End - a.Start) }

// ---------------------------------------------------------------------------
// Payment
// ---------------------------------------------------------------------------

type CheckoutRequest struct {
	BookingID     uuid.UUID
	Amount        int64
	Currency      string
	Description   string
	CustomerEmail string
	Metadata      map[string]string
}

type Checkout struct {
	SessionID   string
	RedirectURL string
}

type RefundRequest struct {
	BookingID        uuid.UUID
	PaymentReference string
}

// PaymentProvider starts checkouts and issues refunds. Confirmation of a
// payment always arrives asynchronously as a PaymentEvent.
type PaymentProvider interface {
	IsAvailable() bool
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error)
	Refund(ctx context.Context, req RefundRequest) (refundID string, err error)
}

// PaymentEvent is a verified payment-completed notification.
type PaymentEvent struct {
	EventID          string
	BookingID        uuid.UUID
	PaymentReference string
}

// ---------------------------------------------------------------------------
// Video
// ---------------------------------------------------------------------------

type MeetingRequest struct {
	BookingID       uuid.UUID
	Topic           string
	Start           time.Time
	DurationMinutes int
	Timezone        string
}

type Meeting struct {
	ID       string
	JoinURL  string
	Password string
}

type VideoMeetingProvider interface {
	IsAvailable() bool
	CreateMeeting(ctx context.Context, req MeetingRequest) (*Meeting, error)
	UpdateMeeting(ctx context.Context, meetingID string, start time.Time, durationMinutes int, timezone string) error
	DeleteMeeting(ctx context.Context, meetingID string) error
}

// ---------------------------------------------------------------------------
// Notification
// ---------------------------------------------------------------------------

type Participant struct {
	Name  string
	Email string
	Phone string
}

// Notice describes one session announcement to both participants.
type Notice struct {
	Client          Participant
	Provider        Participant
	Appointment     Appointment
	JoinURL         string
	MeetingPassword string
	Reason          string
	Rescheduled     bool
	// Sequence orders successive calendar updates for the same booking.
	Sequence int
	// Event is filled in by the Gateway before the provider is called.
	Event *CalendarEvent
}

type NotificationProvider interface {
	IsAvailable() bool
	SendInvite(ctx context.Context, n Notice) error
	SendCancellationNotice(ctx context.Context, n Notice) error
	SendReminder(ctx context.Context, n Notice) error
}

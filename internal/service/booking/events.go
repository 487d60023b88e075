package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

type Event string

const (
	EventCreated     Event = "created"
	EventConfirmed   Event = "confirmed"
	EventCancelled   Event = "cancelled"
	EventRescheduled Event = "rescheduled"
	EventCompleted   Event = "completed"
	EventRefunded    Event = "refunded"
)

// EventPublisher announces committed lifecycle changes.
type EventPublisher interface {
	Publish(ctx context.Context, event Event, b *Booking) error
}

// EventPayload is the body of a booking event message.
type EventPayload struct {
	Event         Event         `json:"event"`
	BookingID     string        `json:"booking_id"`
	UserID        string        `json:"user_id"`
	ProviderID    string        `json:"provider_id"`
	Date          string        `json:"appointment_date"`
	StartTime     string        `json:"start_time"`
	EndTime       string        `json:"end_time"`
	Timezone      string        `json:"timezone"`
	Status        Status        `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	OccurredAt    time.Time     `json:"occurred_at"`
}

type natsPublisher struct {
	nc     *nats.Conn
	prefix string
}

// NewNatsPublisher publishes to "<prefix>.booking.<event>.<bookingID>".
func NewNatsPublisher(nc *nats.Conn, prefix string) EventPublisher {
	return &natsPublisher{nc: nc, prefix: prefix}
}

func Subject(prefix string, event Event, b *Booking) string {
	return fmt.Sprintf("%s.booking.%s.%s", prefix, event, b.ID)
}

func (p *natsPublisher) Publish(_ context.Context, event Event, b *Booking) error {
	body, err := json.Marshal(EventPayload{
		Event:         event,
		BookingID:     b.ID.String(),
		UserID:        b.UserID.String(),
		ProviderID:    b.ProviderID.String(),
		Date:          b.Date.String(),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		Timezone:      b.Timezone,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		OccurredAt:    b.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("encode booking event: %w", err)
	}
	return p.nc.Publish(Subject(p.prefix, event, b), body)
}

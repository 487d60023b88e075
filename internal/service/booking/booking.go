package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/internal/service/availability"
	"github.com/jasimarif/psychology-app/internal/service/gateway"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Active reports whether the booking still holds its slot.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type ProvisionStatus string

const (
	ProvisionPending     ProvisionStatus = "pending"
	ProvisionProvisioned ProvisionStatus = "provisioned"
	ProvisionFailed      ProvisionStatus = "failed"
	ProvisionSkipped     ProvisionStatus = "skipped"
)

type Role string

const (
	RoleClient   Role = "client"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
	RoleSystem   Role = "system"
)

// Actor is the party on whose behalf an operation runs. Provider actors are
// identified by their provider id.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// SystemActor is used by cron sweeps and background workers.
var SystemActor = Actor{Role: RoleSystem}

// Booking is a reservation of one slot by one client with one provider.
// Date and times are zone-naive and interpreted in Timezone.
type Booking struct {
	ID               uuid.UUID          `json:"id"`
	UserID           uuid.UUID          `json:"user_id"`
	ProviderID       uuid.UUID          `json:"provider_id"`
	Date             availability.Date  `json:"appointment_date"`
	StartTime        availability.Clock `json:"start_time"`
	EndTime          availability.Clock `json:"end_time"`
	Timezone         string             `json:"timezone"`
	Price            int64              `json:"price"`
	Currency         string             `json:"currency"`
	Status           Status             `json:"status"`
	PaymentStatus    PaymentStatus      `json:"payment_status"`
	PaymentReference string             `json:"payment_reference,omitempty"`
	RefundID         string             `json:"refund_id,omitempty"`
	Notes            string             `json:"notes,omitempty"`

	MeetingID              string          `json:"meeting_id,omitempty"`
	MeetingJoinURL         string          `json:"meeting_join_url,omitempty"`
	MeetingPassword        string          `json:"meeting_password,omitempty"`
	MeetingProvisionStatus ProvisionStatus `json:"meeting_provision_status"`

	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CancelledBy        *uuid.UUID `json:"cancelled_by,omitempty"`
	CancelledByRole    Role       `json:"cancelled_by_role,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) Slot() availability.Slot {
	return availability.Slot{StartTime: b.StartTime, EndTime: b.EndTime}
}

// Appointment is the zone-naive session handed to the integration gateway.
func (b *Booking) Appointment() gateway.Appointment {
	return gateway.Appointment{
		BookingID: b.ID,
		Date:      b.Date,
		Start:     b.StartTime,
		End:       b.EndTime,
		Timezone:  b.Timezone,
	}
}

// StartsAt resolves the session start in the booking's timezone.
func (b *Booking) StartsAt() (time.Time, error) {
	start, _, err := b.Appointment().Interval()
	return start, err
}

// EndsAt resolves the session end in the booking's timezone.
func (b *Booking) EndsAt() (time.Time, error) {
	_, end, err := b.Appointment().Interval()
	return end, err
}

// IsAt reports whether the booking occupies the given slot on date.
func (b *Booking) IsAt(date availability.Date, start, end availability.Clock) bool {
	return b.Date == date && b.StartTime == start && b.EndTime == end
}

func (b *Booking) clone() *Booking {
	c := *b
	if b.CancelledBy != nil {
		id := *b.CancelledBy
		c.CancelledBy = &id
	}
	if b.CancelledAt != nil {
		t := *b.CancelledAt
		c.CancelledAt = &t
	}
	if b.CompletedAt != nil {
		t := *b.CompletedAt
		c.CompletedAt = &t
	}
	return &c
}

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type CreateRequest struct {
	ProviderID uuid.UUID
	Date       availability.Date
	StartTime  availability.Clock
	EndTime    availability.Clock
	Notes      string
}

type RescheduleRequest struct {
	Date      availability.Date
	StartTime availability.Clock
	EndTime   availability.Clock
}

// PaymentCompleted is the inbound event that confirms a pending booking.
type PaymentCompleted struct {
	BookingID  uuid.UUID `json:"booking_id"`
	PaymentRef string    `json:"payment_ref"`
}

// ListFilter narrows ListBookings. Zero values mean no constraint.
type ListFilter struct {
	UserID     *uuid.UUID
	ProviderID *uuid.UUID
	Status     *Status
	From       availability.Date
	To         availability.Date
	Page       int
	PerPage    int
}

func (f *ListFilter) normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 || f.PerPage > 100 {
		f.PerPage = 20
	}
}

func (f ListFilter) offset() int { return (f.Page - 1) * f.PerPage }

// MeetingUpdate records the outcome of meeting provisioning.
type MeetingUpdate struct {
	MeetingID string
	JoinURL   string
	Password  string
	Status    ProvisionStatus
}

// Reminder is a scheduled notice for a confirmed session.
type Reminder struct {
	BookingID uuid.UUID
	Date      availability.Date
	StartTime availability.Clock
	At        time.Time
}

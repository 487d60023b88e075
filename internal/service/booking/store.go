package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/internal/service/availability"
)

// Store is the durable record of bookings and the only synchronization
// point for slot ownership.
type Store interface {
	// Insert atomically reserves the booking's slot. It fails with
	// errDuplicateSlot when another active booking holds it.
	Insert(ctx context.Context, b *Booking) error
	Get(ctx context.Context, id uuid.UUID) (*Booking, error)
	// Update writes the mutable lifecycle fields when the stored version
	// still equals b.Version, then advances b.Version. Meeting fields are
	// left untouched.
	Update(ctx context.Context, b *Booking) error
	// SetMeeting records provisioning output on an active booking. It
	// reports false when the booking is no longer active.
	SetMeeting(ctx context.Context, id uuid.UUID, m MeetingUpdate) (bool, error)
	// ListActive returns pending and confirmed bookings of a provider on date.
	ListActive(ctx context.Context, providerID uuid.UUID, date availability.Date) ([]Booking, error)
	List(ctx context.Context, f ListFilter) ([]Booking, error)
	// ListConfirmedUntil returns confirmed bookings dated on or before date.
	ListConfirmedUntil(ctx context.Context, date availability.Date) ([]Booking, error)
}

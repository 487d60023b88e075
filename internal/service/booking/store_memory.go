package booking

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/internal/service/availability"
)

// MemoryStore is an in-process Store. A single mutex stands in for the
// partial unique index of the SQL store.
type MemoryStore struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*Booking
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bookings: make(map[uuid.UUID]*Booking)}
}

func (s *MemoryStore) slotTaken(except uuid.UUID, providerID uuid.UUID, date availability.Date, start availability.Clock) bool {
	for id, b := range s.bookings {
		if id == except || !b.Status.Active() {
			continue
		}
		if b.ProviderID == providerID && b.Date == date && b.StartTime == start {
			return true
		}
	}
	return false
}

func (s *MemoryStore) Insert(_ context.Context, b *Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.Status.Active() && s.slotTaken(b.ID, b.ProviderID, b.Date, b.StartTime) {
		return errDuplicateSlot
	}
	s.bookings[b.ID] = b.clone()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return b.clone(), nil
}

func (s *MemoryStore) Update(_ context.Context, b *Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.bookings[b.ID]
	if !ok {
		return ErrBookingNotFound
	}
	if cur.Version != b.Version {
		return errVersionMismatch
	}
	if b.Status.Active() && s.slotTaken(b.ID, b.ProviderID, b.Date, b.StartTime) {
		return errDuplicateSlot
	}

	next := b.clone()
	next.MeetingID = cur.MeetingID
	next.MeetingJoinURL = cur.MeetingJoinURL
	next.MeetingPassword = cur.MeetingPassword
	next.MeetingProvisionStatus = cur.MeetingProvisionStatus
	next.Version = cur.Version + 1
	s.bookings[b.ID] = next

	b.Version = next.Version
	return nil
}

func (s *MemoryStore) SetMeeting(_ context.Context, id uuid.UUID, m MeetingUpdate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.bookings[id]
	if !ok {
		return false, ErrBookingNotFound
	}
	if !cur.Status.Active() {
		return false, nil
	}
	cur.MeetingID = m.MeetingID
	cur.MeetingJoinURL = m.JoinURL
	cur.MeetingPassword = m.Password
	cur.MeetingProvisionStatus = m.Status
	cur.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (s *MemoryStore) ListActive(_ context.Context, providerID uuid.UUID, date availability.Date) ([]Booking, error) {
	return s.collect(func(b *Booking) bool {
		return b.ProviderID == providerID && b.Date == date && b.Status.Active()
	}, ascending), nil
}

func (s *MemoryStore) List(_ context.Context, f ListFilter) ([]Booking, error) {
	f.normalize()
	out := s.collect(func(b *Booking) bool {
		switch {
		case f.UserID != nil && b.UserID != *f.UserID:
			return false
		case f.ProviderID != nil && b.ProviderID != *f.ProviderID:
			return false
		case f.Status != nil && b.Status != *f.Status:
			return false
		case !f.From.IsZero() && b.Date.Before(f.From):
			return false
		case !f.To.IsZero() && f.To.Before(b.Date):
			return false
		}
		return true
	}, descending)

	lo := min(f.offset(), len(out))
	hi := min(lo+f.PerPage, len(out))
	return out[lo:hi], nil
}

func (s *MemoryStore) ListConfirmedUntil(_ context.Context, date availability.Date) ([]Booking, error) {
	return s.collect(func(b *Booking) bool {
		return b.Status == StatusConfirmed && !date.Before(b.Date)
	}, ascending), nil
}

func (s *MemoryStore) collect(keep func(*Booking) bool, order func(a, b Booking) int) []Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []Booking{}
	for _, b := range s.bookings {
		if keep(b) {
			out = append(out, *b.clone())
		}
	}
	slices.SortFunc(out, order)
	return out
}

func ascending(a, b Booking) int {
	if a.Date != b.Date {
		if a.Date.Before(b.Date) {
			return -1
		}
		return 1
	}
	return cmp.Compare(a.StartTime, b.StartTime)
}

func descending(a, b Booking) int { return ascending(b, a) }

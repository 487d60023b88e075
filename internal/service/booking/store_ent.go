package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/internal/repo"
	entbooking "github.com/jasimarif/psychology-app/internal/repo/booking"
	"github.com/jasimarif/psychology-app/internal/repo/predicate"
	"github.com/jasimarif/psychology-app/internal/schema"
	"github.com/jasimarif/psychology-app/internal/service/availability"
	"github.com/jasimarif/psychology-app/pkg/crypto"
	"github.com/jasimarif/psychology-app/pkg/database"
)

var activeStatuses = []entbooking.Status{entbooking.StatusPending, entbooking.StatusConfirmed}

type entStore struct {
	db     *repo.Client
	sealer *crypto.Sealer
}

// NewEntStore returns a Store over the bookings table. Meeting passwords are
// sealed with sealer before they are written.
func NewEntStore(db *repo.Client, sealer *crypto.Sealer) Store {
	return &entStore{db: db, sealer: sealer}
}

// dateValue maps a zone-naive date onto the UTC midnight stored in the date
// column.
func dateValue(d availability.Date) time.Time {
	return d.At(0, time.UTC)
}

// isSlotConflict reports whether err came from the active slot index.
func isSlotConflict(err error) bool {
	return repo.IsConstraintError(err) && database.IsUniqueViolation(err, schema.ActiveSlotIndex)
}

func (s *entStore) toBooking(row *repo.Booking) (*Booking, error) {
	b := &Booking{
		ID:                     row.ID,
		UserID:                 row.UserID,
		ProviderID:             row.ProviderID,
		Date:                   availability.DateOf(row.AppointmentDate),
		Timezone:               row.Timezone,
		Price:                  row.Price,
		Currency:               row.Currency,
		Status:                 Status(row.Status),
		PaymentStatus:          PaymentStatus(row.PaymentStatus),
		PaymentReference:       row.PaymentReference,
		RefundID:               row.RefundID,
		Notes:                  row.Notes,
		MeetingID:              row.MeetingID,
		MeetingJoinURL:         row.MeetingJoinURL,
		MeetingProvisionStatus: ProvisionStatus(row.MeetingProvisionStatus),
		CancellationReason:     row.CancellationReason,
		CancelledBy:            row.CancelledBy,
		CancelledByRole:        Role(row.CancelledByRole),
		CancelledAt:            row.CancelledAt,
		CompletedAt:            row.CompletedAt,
		Version:                row.Version,
		CreatedAt:              row.CreatedAt,
		UpdatedAt:              row.UpdatedAt,
	}

	var err error
	if b.StartTime, err = availability.ParseClock(row.StartTime); err != nil {
		return nil, fmt.Errorf("decode start_time: %w", err)
	}
	if b.EndTime, err = availability.ParseClock(row.EndTime); err != nil {
		return nil, fmt.Errorf("decode end_time: %w", err)
	}
	if b.MeetingPassword, err = s.sealer.Open(row.MeetingPassword); err != nil {
		return nil, fmt.Errorf("open meeting password: %w", err)
	}
	return b, nil
}

func (s *entStore) toBookings(rows []*repo.Booking) ([]Booking, error) {
	out := make([]Booking, 0, len(rows))
	for _, row := range rows {
		b, err := s.toBooking(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

func (s *entStore) Insert(ctx context.Context, b *Booking) error {
	password, err := s.sealer.Seal(b.MeetingPassword)
	if err != nil {
		return fmt.Errorf("seal meeting password: %w", err)
	}

	_, err = s.db.Booking.Create().
		SetID(b.ID).
		SetUserID(b.UserID).
		SetProviderID(b.ProviderID).
		SetAppointmentDate(dateValue(b.Date)).
		SetStartTime(b.StartTime.String()).
		SetEndTime(b.EndTime.String()).
		SetTimezone(b.Timezone).
		SetPrice(b.Price).
		SetCurrency(b.Currency).
		SetStatus(entbooking.Status(b.Status)).
		SetPaymentStatus(entbooking.PaymentStatus(b.PaymentStatus)).
		SetPaymentReference(b.PaymentReference).
		SetRefundID(b.RefundID).
		SetNotes(b.Notes).
		SetMeetingID(b.MeetingID).
		SetMeetingJoinURL(b.MeetingJoinURL).
		SetMeetingPassword(password).
		SetMeetingProvisionStatus(entbooking.MeetingProvisionStatus(b.MeetingProvisionStatus)).
		SetCancellationReason(b.CancellationReason).
		SetNillableCancelledBy(b.CancelledBy).
		SetCancelledByRole(string(b.CancelledByRole)).
		SetNillableCancelledAt(b.CancelledAt).
		SetNillableCompletedAt(b.CompletedAt).
		SetVersion(b.Version).
		SetCreatedAt(b.CreatedAt).
		SetUpdatedAt(b.UpdatedAt).
		Save(ctx)
	if isSlotConflict(err) {
		return errDuplicateSlot
	}
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// Update is a compare-and-swap on the version column: zero affected rows
// means another writer got there first.
func (s *entStore) Update(ctx context.Context, b *Booking) error {
	upd := s.db.Booking.Update().
		Where(entbooking.ID(b.ID), entbooking.Version(b.Version)).
		SetAppointmentDate(dateValue(b.Date)).
		SetStartTime(b.StartTime.String()).
		SetEndTime(b.EndTime.String()).
		SetTimezone(b.Timezone).
		SetStatus(entbooking.Status(b.Status)).
		SetPaymentStatus(entbooking.PaymentStatus(b.PaymentStatus)).
		SetPaymentReference(b.PaymentReference).
		SetRefundID(b.RefundID).
		SetNotes(b.Notes).
		SetCancellationReason(b.CancellationReason).
		SetCancelledByRole(string(b.CancelledByRole)).
		SetUpdatedAt(b.UpdatedAt).
		AddVersion(1)

	if b.CancelledBy != nil {
		upd.SetCancelledBy(*b.CancelledBy)
	} else {
		upd.ClearCancelledBy()
	}
	if b.CancelledAt != nil {
		upd.SetCancelledAt(*b.CancelledAt)
	} else {
		upd.ClearCancelledAt()
	}
	if b.CompletedAt != nil {
		upd.SetCompletedAt(*b.CompletedAt)
	} else {
		upd.ClearCompletedAt()
	}

	n, err := upd.Save(ctx)
	if isSlotConflict(err) {
		return errDuplicateSlot
	}
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	if n == 0 {
		exists, err := s.db.Booking.Query().Where(entbooking.ID(b.ID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("update booking: %w", err)
		}
		if !exists {
			return ErrBookingNotFound
		}
		return errVersionMismatch
	}
	b.Version++
	return nil
}

func (s *entStore) SetMeeting(ctx context.Context, id uuid.UUID, m MeetingUpdate) (bool, error) {
	password, err := s.sealer.Seal(m.Password)
	if err != nil {
		return false, fmt.Errorf("seal meeting password: %w", err)
	}

	n, err := s.db.Booking.Update().
		Where(entbooking.ID(id), entbooking.StatusIn(activeStatuses...)).
		SetMeetingID(m.MeetingID).
		SetMeetingJoinURL(m.JoinURL).
		SetMeetingPassword(password).
		SetMeetingProvisionStatus(entbooking.MeetingProvisionStatus(m.Status)).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("set booking meeting: %w", err)
	}
	return n > 0, nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

func (s *entStore) Get(ctx context.Context, id uuid.UUID) (*Booking, error) {
	row, err := s.db.Booking.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return s.toBooking(row)
}

func (s *entStore) ListActive(ctx context.Context, providerID uuid.UUID, date availability.Date) ([]Booking, error) {
	rows, err := s.db.Booking.Query().
		Where(
			entbooking.ProviderID(providerID),
			entbooking.AppointmentDate(dateValue(date)),
			entbooking.StatusIn(activeStatuses...),
		).
		Order(repo.Asc(entbooking.FieldStartTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active bookings: %w", err)
	}
	return s.toBookings(rows)
}

func (s *entStore) List(ctx context.Context, f ListFilter) ([]Booking, error) {
	f.normalize()

	var where []predicate.Booking
	if f.UserID != nil {
		where = append(where, entbooking.UserID(*f.UserID))
	}
	if f.ProviderID != nil {
		where = append(where, entbooking.ProviderID(*f.ProviderID))
	}
	if f.Status != nil {
		where = append(where, entbooking.StatusEQ(entbooking.Status(*f.Status)))
	}
	if !f.From.IsZero() {
		where = append(where, entbooking.AppointmentDateGTE(dateValue(f.From)))
	}
	if !f.To.IsZero() {
		where = append(where, entbooking.AppointmentDateLTE(dateValue(f.To)))
	}

	rows, err := s.db.Booking.Query().
		Where(where...).
		Order(repo.Desc(entbooking.FieldAppointmentDate, entbooking.FieldStartTime)).
		Limit(f.PerPage).
		Offset(f.offset()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return s.toBookings(rows)
}

func (s *entStore) ListConfirmedUntil(ctx context.Context, date availability.Date) ([]Booking, error) {
	rows, err := s.db.Booking.Query().
		Where(
			entbooking.StatusEQ(entbooking.StatusConfirmed),
			entbooking.AppointmentDateLTE(dateValue(date)),
		).
		Order(repo.Asc(entbooking.FieldAppointmentDate, entbooking.FieldStartTime)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list confirmed bookings: %w", err)
	}
	return s.toBookings(rows)
}

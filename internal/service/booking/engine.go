package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/internal/service/availability"
	"github.com/jasimarif/psychology-app/internal/service/gateway"
	"github.com/jasimarif/psychology-app/pkg/observability"
)

// confirmAttempts bounds optimistic retries of a webhook confirmation.
const confirmAttempts = 3

// Gateway is the subset of *gateway.Gateway the engine calls.
type Gateway interface {
	CreateCheckout(ctx context.Context, req gateway.CheckoutRequest) (*gateway.Checkout, error)
	Refund(ctx context.Context, req gateway.RefundRequest) (string, error)
	CreateMeeting(ctx context.Context, appt gateway.Appointment) (*gateway.Meeting, error)
	UpdateMeeting(ctx context.Context, meetingID string, appt gateway.Appointment) error
	DeleteMeeting(ctx context.Context, meetingID string) error
	SendInvite(ctx context.Context, n gateway.Notice) error
	SendCancellationNotice(ctx context.Context, n gateway.Notice) error
	SendReminder(ctx context.Context, n gateway.Notice) error
}

// ReminderScheduler enqueues a delayed session reminder.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, r Reminder) error
}

type Config struct {
	CancellationWindow time.Duration
	ReminderLead       time.Duration
	SideEffectTimeout  time.Duration
	DefaultCurrency    string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	GetAvailableSlots(ctx context.Context, providerID uuid.UUID, date availability.Date) ([]availability.Slot, error)
	CreateBooking(ctx context.Context, actor Actor, req CreateRequest) (*Booking, error)
	// ConfirmBooking applies a payment confirmation. Replays for an already
	// confirmed booking return it unchanged.
	ConfirmBooking(ctx context.Context, ev PaymentCompleted) (*Booking, error)
	CancelBooking(ctx context.Context, actor Actor, id uuid.UUID, reason string) (*Booking, error)
	RescheduleBooking(ctx context.Context, actor Actor, id uuid.UUID, req RescheduleRequest) (*Booking, error)
	CompleteBooking(ctx context.Context, actor Actor, id uuid.UUID) (*Booking, error)
	// CompleteElapsed completes every confirmed booking whose session has ended.
	CompleteElapsed(ctx context.Context) (int, error)
	StartCheckout(ctx context.Context, actor Actor, id uuid.UUID) (*gateway.Checkout, error)
	RefundBooking(ctx context.Context, actor Actor, id uuid.UUID) (*Booking, error)
	GetBooking(ctx context.Context, actor Actor, id uuid.UUID) (*Booking, error)
	ListBookings(ctx context.Context, actor Actor, f ListFilter) ([]Booking, error)
	// SendReminder notifies both parties when the booking is still confirmed
	// for the given slot.
	SendReminder(ctx context.Context, id uuid.UUID, date availability.Date, start availability.Clock) error
	// Drain waits for in-flight side effects.
	Drain(ctx context.Context) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type engine struct {
	store     Store
	dir       Directory
	avail     availability.Service
	gw        Gateway
	events    EventPublisher
	reminders ReminderScheduler
	metrics   *observability.BookingMetrics
	cfg       Config
	now       func() time.Time

	wg sync.WaitGroup
}

type Option func(*engine)

func WithEvents(p EventPublisher) Option { return func(e *engine) { e.events = p } }

func WithReminders(r ReminderScheduler) Option { return func(e *engine) { e.reminders = r } }

func WithMetrics(m *observability.BookingMetrics) Option { return func(e *engine) { e.metrics = m } }

func WithClock(now func() time.Time) Option { return func(e *engine) { e.now = now } }

func New(store Store, dir Directory, avail availability.Service, gw Gateway, cfg Config, opts ...Option) Service {
	if cfg.CancellationWindow <= 0 {
		cfg.CancellationWindow = 24 * time.Hour
	}
	if cfg.SideEffectTimeout <= 0 {
		cfg.SideEffectTimeout = 30 * time.Second
	}
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = "usd"
	}

	e := &engine{
		store: store,
		dir:   dir,
		avail: avail,
		gw:    gw,
		cfg:   cfg,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// liveSlots loads the provider's template and the slots it yields on date.
// A provider without a template offers nothing.
func (e *engine) liveSlots(ctx context.Context, providerID uuid.UUID, date availability.Date) (*availability.Template, []availability.Slot, error) {
	t, slots, err := e.avail.Slots(ctx, providerID, date)
	if errors.Is(err, availability.ErrTemplateNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return t, slots, nil
}

// validateSlot re-checks a requested slot against the live template and
// the clock. It returns the template's timezone.
func (e *engine) validateSlot(ctx context.Context, providerID uuid.UUID, date availability.Date, start, end availability.Clock) (string, error) {
	if date.IsZero() {
		return "", invalid("date", "is required")
	}
	if end <= start {
		return "", invalid("end_time", "must be after start_time")
	}

	t, slots, err := e.liveSlots(ctx, providerID, date)
	if err != nil {
		return "", err
	}
	if t == nil {
		return "", invalid("provider_id", "provider has no availability")
	}
	if _, ok := availability.FindSlot(slots, start, end); !ok {
		return "", invalid("start_time", "%s-%s on %s is not an offered slot", start, end, date)
	}

	loc, err := t.Location()
	if err != nil {
		return "", err
	}
	if !date.At(start, loc).After(e.now()) {
		return "", invalid("start_time", "slot has already started")
	}
	return t.Timezone, nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func (e *engine) GetAvailableSlots(ctx context.Context, providerID uuid.UUID, date availability.Date) ([]availability.Slot, error) {
	if _, err := e.dir.Provider(ctx, providerID); err != nil {
		return nil, err
	}

	t, slots, err := e.liveSlots(ctx, providerID, date)
	if err != nil {
		return nil, err
	}
	if t == nil || len(slots) == 0 {
		return []availability.Slot{}, nil
	}
	loc, err := t.Location()
	if err != nil {
		return nil, err
	}

	taken, err := e.store.ListActive(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	now := e.now()
	free := make([]availability.Slot, 0, len(slots))
	for _, s := range slots {
		if !date.At(s.StartTime, loc).After(now) {
			continue
		}
		if overlapsAny(s, taken) {
			continue
		}
		free = append(free, s)
	}
	return free, nil
}

func overlapsAny(s availability.Slot, bookings []Booking) bool {
	for i := range bookings {
		if s.Overlaps(bookings[i].Slot()) {
			return true
		}
	}
	return false
}

func (e *engine) GetBooking(ctx context.Context, actor Actor, id uuid.UUID) (*Booking, error) {
	b, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canRead(actor, b) {
		return nil, ErrForbidden
	}
	return b, nil
}

func (e *engine) ListBookings(ctx context.Context, actor Actor, f ListFilter) ([]Booking, error) {
	switch actor.Role {
	case RoleClient:
		f.UserID = &actor.ID
	case RoleProvider:
		f.ProviderID = &actor.ID
	case RoleAdmin, RoleSystem:
	default:
		return nil, ErrForbidden
	}
	if f.Status != nil && !f.Status.Valid() {
		return nil, invalid("status", "unknown status %q", *f.Status)
	}
	return e.store.List(ctx, f)
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func (e *engine) CreateBooking(ctx context.Context, actor Actor, req CreateRequest) (*Booking, error) {
	if actor.Role != RoleClient {
		return nil, ErrForbidden
	}
	if req.ProviderID == uuid.Nil {
		return nil, invalid("provider_id", "is required")
	}

	provider, err := e.dir.Provider(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	tz, err := e.validateSlot(ctx, req.ProviderID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate booking id: %w", err)
	}
	currency := provider.Currency
	if currency == "" {
		currency = e.cfg.DefaultCurrency
	}
	now := e.now().UTC()

	b := &Booking{
		ID:                     id,
		UserID:                 actor.ID,
		ProviderID:             req.ProviderID,
		Date:                   req.Date,
		StartTime:              req.StartTime,
		EndTime:                req.EndTime,
		Timezone:               tz,
		Price:                  provider.SessionPrice,
		Currency:               strings.ToLower(currency),
		Status:                 StatusPending,
		PaymentStatus:          PaymentUnpaid,
		Notes:                  strings.TrimSpace(req.Notes),
		MeetingProvisionStatus: ProvisionPending,
		Version:                1,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := e.store.Insert(ctx, b); err != nil {
		if errors.Is(err, errDuplicateSlot) {
			e.metrics.Conflict(ctx)
			return nil, &SlotAlreadyBookedError{ProviderID: b.ProviderID, Date: b.Date, Slot: b.Slot()}
		}
		return nil, err
	}

	e.metrics.Created(ctx)
	slog.InfoContext(ctx, "booking created",
		"booking_id", b.ID, "provider_id", b.ProviderID, "date", b.Date, "start", b.StartTime)
	e.publish(ctx, EventCreated, b)

	e.spawn(ctx, "provision", b.ID, func(ctx context.Context) {
		e.provisionMeeting(ctx, b.ID)
		e.sendInvite(ctx, b.ID, false)
	})
	return b, nil
}

// ---------------------------------------------------------------------------
// Confirm
// ---------------------------------------------------------------------------

func (e *engine) ConfirmBooking(ctx context.Context, ev PaymentCompleted) (*Booking, error) {
	for attempt := 0; attempt < confirmAttempts; attempt++ {
		b, err := e.store.Get(ctx, ev.BookingID)
		if err != nil {
			return nil, err
		}

		switch b.Status {
		case StatusConfirmed:
			slog.DebugContext(ctx, "booking already confirmed", "booking_id", b.ID, "payment_ref", ev.PaymentRef)
			return b, nil
		case StatusPending:
		default:
			return nil, transitionError(b.Status, StatusConfirmed)
		}

		b.Status = StatusConfirmed
		b.PaymentStatus = PaymentPaid
		if ev.PaymentRef != "" {
			b.PaymentReference = ev.PaymentRef
		}
		b.UpdatedAt = e.now().UTC()

		err = e.store.Update(ctx, b)
		if errors.Is(err, errVersionMismatch) {
			continue
		}
		if err != nil {
			return nil, err
		}

		e.metrics.Transition(ctx, string(StatusPending), string(StatusConfirmed))
		slog.InfoContext(ctx, "booking confirmed", "booking_id", b.ID, "payment_ref", b.PaymentReference)
		e.publish(ctx, EventConfirmed, b)

		snapshot := b.clone()
		e.spawn(ctx, "schedule_reminder", b.ID, func(ctx context.Context) {
			e.scheduleReminder(ctx, snapshot)
		})
		return b, nil
	}
	return nil, ErrStateChanged
}

// ---------------------------------------------------------------------------
// Cancel
// ---------------------------------------------------------------------------

func (e *engine) CancelBooking(ctx context.Context, actor Actor, id uuid.UUID, reason string) (*Booking, error) {
	b, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(actor, b) {
		return nil, ErrForbidden
	}
	if !canTransition(b.Status, StatusCancelled) {
		return nil, transitionError(b.Status, StatusCancelled)
	}

	now := e.now()
	if err := checkWindow(b, actor, now, e.cfg.CancellationWindow, "cancellation"); err != nil {
		return nil, err
	}

	from := b.Status
	at := now.UTC()
	b.Status = StatusCancelled
	b.CancellationReason = strings.TrimSpace(reason)
	b.CancelledByRole = actor.Role
	if actor.ID != uuid.Nil {
		by := actor.ID
		b.CancelledBy = &by
	}
	b.CancelledAt = &at
	b.UpdatedAt = at

	if err := e.update(ctx, b); err != nil {
		return nil, err
	}

	e.metrics.Transition(ctx, string(from), string(StatusCancelled))
	slog.InfoContext(ctx, "booking cancelled", "booking_id", b.ID, "by_role", actor.Role)
	e.publish(ctx, EventCancelled, b)

	e.spawn(ctx, "cancel", b.ID, func(ctx context.Context) {
		e.teardown(ctx, b.ID)
	})
	return b, nil
}

// ---------------------------------------------------------------------------
// Reschedule
// ---------------------------------------------------------------------------

func (e *engine) RescheduleBooking(ctx context.Context, actor Actor, id uuid.UUID, req RescheduleRequest) (*Booking, error) {
	b, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(actor, b) {
		return nil, ErrForbidden
	}
	if !b.Status.Active() {
		return nil, fmt.Errorf("%w: cannot reschedule a %s booking", ErrInvalidTransition, b.Status)
	}

	now := e.now()
	if err := checkWindow(b, actor, now, e.cfg.CancellationWindow, "reschedule"); err != nil {
		return nil, err
	}
	if b.IsAt(req.Date, req.StartTime, req.EndTime) {
		return b, nil
	}

	tz, err := e.validateSlot(ctx, b.ProviderID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	b.Date = req.Date
	b.StartTime = req.StartTime
	b.EndTime = req.EndTime
	b.Timezone = tz
	b.UpdatedAt = now.UTC()

	if err := e.update(ctx, b); err != nil {
		if errors.Is(err, errDuplicateSlot) {
			e.metrics.Conflict(ctx)
			return nil, &SlotAlreadyBookedError{ProviderID: b.ProviderID, Date: b.Date, Slot: b.Slot()}
		}
		return nil, err
	}

	slog.InfoContext(ctx, "booking rescheduled",
		"booking_id", b.ID, "date", b.Date, "start", b.StartTime)
	e.publish(ctx, EventRescheduled, b)

	snapshot := b.clone()
	e.spawn(ctx, "reschedule", b.ID, func(ctx context.Context) {
		e.moveMeeting(ctx, snapshot)
		e.sendInvite(ctx, snapshot.ID, true)
		if snapshot.Status == StatusConfirmed {
			e.scheduleReminder(ctx, snapshot)
		}
	})
	return b, nil
}

// ---------------------------------------------------------------------------
// Complete
// ---------------------------------------------------------------------------

func (e *engine) CompleteBooking(ctx context.Context, actor Actor, id uuid.UUID) (*Booking, error) {
	b, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canComplete(actor, b) {
		return nil, ErrForbidden
	}
	if !canTransition(b.Status, StatusCompleted) {
		return nil, transitionError(b.Status, StatusCompleted)
	}

	start, err := b.StartsAt()
	if err != nil {
		return nil, fmt.Errorf("resolve booking start: %w", err)
	}
	now := e.now()
	if now.Before(start) {
		return nil, invalid("", "session has not started yet")
	}

	if err := e.complete(ctx, b, now); err != nil {
		return nil, err
	}
	return b, nil
}

func (e *engine) complete(ctx context.Context, b *Booking, now time.Time) error {
	at := now.UTC()
	b.Status = StatusCompleted
	b.CompletedAt = &at
	b.UpdatedAt = at

	if err := e.update(ctx, b); err != nil {
		return err
	}
	e.metrics.Transition(ctx, string(StatusConfirmed), string(StatusCompleted))
	slog.InfoContext(ctx, "booking completed", "booking_id", b.ID)
	e.publish(ctx, EventCompleted, b)
	return nil
}

func (e *engine) CompleteElapsed(ctx context.Context) (int, error) {
	now := e.now()
	// Zones run up to UTC+14, so tomorrow's UTC date bounds every ended session.
	candidates, err := e.store.ListConfirmedUntil(ctx, availability.DateOf(now.UTC()).AddDays(1))
	if err != nil {
		return 0, err
	}

	done := 0
	for i := range candidates {
		b := &candidates[i]
		end, err := b.EndsAt()
		if err != nil {
			slog.WarnContext(ctx, "skipping booking with unresolvable time", "booking_id", b.ID, "error", err)
			continue
		}
		if end.After(now) {
			continue
		}
		if err := e.complete(ctx, b, now); err != nil {
			if errors.Is(err, ErrStateChanged) {
				continue
			}
			return done, err
		}
		done++
	}
	return done, nil
}

// ---------------------------------------------------------------------------
// Payment
// ---------------------------------------------------------------------------

func (e *engine) StartCheckout(ctx context.Context, actor Actor, id uuid.UUID) (*gateway.Checkout, error) {
	b, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isOwner(actor, b) {
		return nil, ErrForbidden
	}
	if b.Status != StatusPending || b.PaymentStatus != PaymentUnpaid {
		return nil, fmt.Errorf("%w: checkout requires a pending unpaid booking", ErrInvalidTransition)
	}

	user, err := e.dir.User(ctx, b.UserID)
	if err != nil {
		return nil, err
	}

	checkout, err := e.gw.CreateCheckout(ctx, gateway.CheckoutRequest{
		BookingID:     b.ID,
		Amount:        b.Price,
		Currency:      b.Currency,
		Description:   fmt.Sprintf("Session on %s at %s (%s)", b.Date, b.StartTime, b.Timezone),
		CustomerEmail: user.Email,
		Metadata: map[string]string{
			"booking_id":  b.ID.String(),
			"provider_id": b.ProviderID.String(),
		},
	})
	if err != nil {
		slog.WarnContext(ctx, "checkout failed", "booking_id", b.ID, "error", err)
		return nil, err
	}
	return checkout, nil
}

func (e *engine) RefundBooking(ctx context.Context, actor Actor, id uuid.UUID) (*Booking, error) {
	b, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canRefund(actor, b) {
		return nil, ErrForbidden
	}
	if b.Status != StatusCancelled || b.PaymentStatus != PaymentPaid {
		return nil, fmt.Errorf("%w: refund requires a cancelled paid booking", ErrInvalidTransition)
	}

	refundID, err := e.gw.Refund(ctx, gateway.RefundRequest{
		BookingID:        b.ID,
		PaymentReference: b.PaymentReference,
	})
	if err != nil {
		slog.WarnContext(ctx, "refund failed", "booking_id", b.ID, "error", err)
		return nil, err
	}

	b.PaymentStatus = PaymentRefunded
	b.RefundID = refundID
	b.UpdatedAt = e.now().UTC()
	if err := e.update(ctx, b); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "booking refunded", "booking_id", b.ID, "refund_id", refundID)
	e.publish(ctx, EventRefunded, b)
	return b, nil
}

// ---------------------------------------------------------------------------
// Reminders
// ---------------------------------------------------------------------------

func (e *engine) SendReminder(ctx context.Context, id uuid.UUID, date availability.Date, start availability.Clock) error {
	b, err := e.store.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		slog.WarnContext(ctx, "reminder for unknown booking", "booking_id", id)
		return nil
	}
	if err != nil {
		return err
	}
	if b.Status != StatusConfirmed || b.Date != date || b.StartTime != start {
		slog.DebugContext(ctx, "reminder no longer applies", "booking_id", id, "status", b.Status)
		return nil
	}

	n, err := e.notice(ctx, b)
	if err != nil {
		return err
	}
	err = e.gw.SendReminder(ctx, n)
	if errors.Is(err, gateway.ErrUnavailable) {
		return nil
	}
	return err
}

func (e *engine) scheduleReminder(ctx context.Context, b *Booking) {
	if e.reminders == nil {
		return
	}
	start, err := b.StartsAt()
	if err != nil {
		slog.WarnContext(ctx, "cannot schedule reminder", "booking_id", b.ID, "error", err)
		return
	}
	now := e.now()
	if !start.After(now) {
		return
	}
	at := start.Add(-e.cfg.ReminderLead)
	if at.Before(now) {
		at = now
	}

	err = e.reminders.ScheduleReminder(ctx, Reminder{
		BookingID: b.ID,
		Date:      b.Date,
		StartTime: b.StartTime,
		At:        at,
	})
	if err != nil {
		slog.WarnContext(ctx, "reminder scheduling failed", "booking_id", b.ID, "error", err)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// update writes b and maps a lost version race to ErrStateChanged.
func (e *engine) update(ctx context.Context, b *Booking) error {
	err := e.store.Update(ctx, b)
	if errors.Is(err, errVersionMismatch) {
		return ErrStateChanged
	}
	return err
}

func (e *engine) publish(ctx context.Context, event Event, b *Booking) {
	if e.events == nil {
		return
	}
	if err := e.events.Publish(ctx, event, b); err != nil {
		slog.WarnContext(ctx, "booking event publish failed", "event", event, "booking_id", b.ID, "error", err)
	}
}

func (e *engine) notice(ctx context.Context, b *Booking) (gateway.Notice, error) {
	user, err := e.dir.User(ctx, b.UserID)
	if err != nil {
		return gateway.Notice{}, err
	}
	provider, err := e.dir.Provider(ctx, b.ProviderID)
	if err != nil {
		return gateway.Notice{}, err
	}
	return gateway.Notice{
		Client:          user.Participant(),
		Provider:        provider.Participant(),
		Appointment:     b.Appointment(),
		JoinURL:         b.MeetingJoinURL,
		MeetingPassword: b.MeetingPassword,
		Reason:          b.CancellationReason,
		Sequence:        b.Version,
	}, nil
}

package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/internal/service/availability"
	"github.com/jasimarif/psychology-app/internal/service/gateway"
)

const testZone = "America/New_York"

// monday is a Monday after the end of US daylight saving time.
var monday = availability.Date{Year: 2026, Month: time.November, Day: 2}

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

type fakeGateway struct {
	mu            sync.Mutex
	videoErr      error
	refundErr     error
	meetings      int
	updates       int
	deletes       int
	invites       []gateway.Notice
	cancellations []gateway.Notice
	reminders     []gateway.Notice
	checkouts     []gateway.CheckoutRequest

	meetingStarts []availability.Clock
	updateStarts  []availability.Clock
	// When gate is set CreateMeeting signals entered and blocks until gate
	// is closed.
	entered chan struct{}
	gate    chan struct{}
}

func (g *fakeGateway) CreateCheckout(_ context.Context, req gateway.CheckoutRequest) (*gateway.Checkout, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.checkouts = append(g.checkouts, req)
	return &gateway.Checkout{SessionID: "cs_1", RedirectURL: "https://pay.example/cs_1"}, nil
}

func (g *fakeGateway) Refund(_ context.Context, req gateway.RefundRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.refundErr != nil {
		return "", g.refundErr
	}
	return "re_" + req.PaymentReference, nil
}

func (g *fakeGateway) CreateMeeting(_ context.Context, a gateway.Appointment) (*gateway.Meeting, error) {
	g.mu.Lock()
	g.meetingStarts = append(g.meetingStarts, a.Start)
	entered, gate := g.entered, g.gate
	g.mu.Unlock()
	if gate != nil {
		entered <- struct{}{}
		<-gate
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.videoErr != nil {
		return nil, g.videoErr
	}
	g.meetings++
	return &gateway.Meeting{ID: fmt.Sprintf("m-%d", g.meetings), JoinURL: "https://video.example/j", Password: "pw"}, nil
}

func (g *fakeGateway) UpdateMeeting(_ context.Context, _ string, a gateway.Appointment) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updates++
	g.updateStarts = append(g.updateStarts, a.Start)
	return nil
}

func (g *fakeGateway) DeleteMeeting(context.Context, string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deletes++
	return nil
}

func (g *fakeGateway) SendInvite(_ context.Context, n gateway.Notice) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.invites = append(g.invites, n)
	return nil
}

func (g *fakeGateway) SendCancellationNotice(_ context.Context, n gateway.Notice) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cancellations = append(g.cancellations, n)
	return nil
}

func (g *fakeGateway) SendReminder(_ context.Context, n gateway.Notice) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reminders = append(g.reminders, n)
	return nil
}

type fakeEvents struct {
	mu     sync.Mutex
	events []Event
}

func (f *fakeEvents) Publish(_ context.Context, ev Event, _ *Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return nil
}

func (f *fakeEvents) count(ev Event) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.events {
		if e == ev {
			n++
		}
	}
	return n
}

type fakeReminders struct {
	mu        sync.Mutex
	scheduled []Reminder
}

func (f *fakeReminders) ScheduleReminder(_ context.Context, r Reminder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, r)
	return nil
}

// ---------------------------------------------------------------------------
// Fixture
// ---------------------------------------------------------------------------

type fixture struct {
	svc       Service
	store     *MemoryStore
	gw        *fakeGateway
	clock     *fakeClock
	events    *fakeEvents
	reminders *fakeReminders
	provider  Actor
	client    Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	providerID := uuid.New()
	clientID := uuid.New()

	dir := NewMemoryDirectory()
	dir.AddProvider(Provider{
		ID:           providerID,
		Contact:      Contact{Name: "Dr. Reyes", Email: "reyes@example.com"},
		SessionPrice: 9000,
		Currency:     "USD",
	})
	dir.AddUser(User{ID: clientID, Contact: Contact{Name: "Sam", Email: "sam@example.com"}})

	avail := availability.New(availability.NewMemoryStore(), nil, 0)
	_, err := avail.SetTemplate(ctx, availability.Template{
		ProviderID:             providerID,
		SessionDurationMinutes: 60,
		Timezone:               testZone,
		Schedule: []availability.DaySchedule{{
			DayOfWeek: time.Monday,
			Ranges: []availability.TimeRange{{
				Start:  availability.MustClock("09:00"),
				End:    availability.MustClock("17:00"),
				Active: true,
			}},
		}},
	})
	if err != nil {
		t.Fatalf("SetTemplate: %v", err)
	}

	f := &fixture{
		store:     NewMemoryStore(),
		gw:        &fakeGateway{},
		clock:     &fakeClock{t: time.Date(2026, time.October, 26, 12, 0, 0, 0, time.UTC)},
		events:    &fakeEvents{},
		reminders: &fakeReminders{},
		provider:  Actor{ID: providerID, Role: RoleProvider},
		client:    Actor{ID: clientID, Role: RoleClient},
	}
	f.svc = New(f.store, dir, avail, f.gw, Config{
		CancellationWindow: 24 * time.Hour,
		ReminderLead:       time.Hour,
		SideEffectTimeout:  time.Second,
	},
		WithClock(f.clock.Now),
		WithEvents(f.events),
		WithReminders(f.reminders),
	)
	t.Cleanup(func() { f.drain(t) })
	return f
}

func (f *fixture) drain(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := f.svc.Drain(ctx); err != nil {
		t.Fatalf("Drain: %v", err)
	}
}

func (f *fixture) create(t *testing.T, start, end string) *Booking {
	t.Helper()
	b, err := f.svc.CreateBooking(context.Background(), f.client, CreateRequest{
		ProviderID: f.provider.ID,
		Date:       monday,
		StartTime:  availability.MustClock(start),
		EndTime:    availability.MustClock(end),
	})
	if err != nil {
		t.Fatalf("CreateBooking %s-%s: %v", start, end, err)
	}
	return b
}

func (f *fixture) confirm(t *testing.T, id uuid.UUID) *Booking {
	t.Helper()
	b, err := f.svc.ConfirmBooking(context.Background(), PaymentCompleted{BookingID: id, PaymentRef: "pi_1"})
	if err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}
	return b
}

// startOf returns the absolute start of clock on monday in the test zone.
func startOf(t *testing.T, clock string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(testZone)
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	return monday.At(availability.MustClock(clock), loc)
}

// ---------------------------------------------------------------------------
// GetAvailableSlots
// ---------------------------------------------------------------------------

func TestGetAvailableSlots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slots, err := f.svc.GetAvailableSlots(ctx, f.provider.ID, monday)
	if err != nil {
		t.Fatalf("GetAvailableSlots: %v", err)
	}
	if len(slots) != 8 {
		t.Fatalf("got %d slots, want 8", len(slots))
	}

	f.create(t, "10:00", "11:00")
	slots, err = f.svc.GetAvailableSlots(ctx, f.provider.ID, monday)
	if err != nil {
		t.Fatalf("GetAvailableSlots: %v", err)
	}
	if len(slots) != 7 {
		t.Fatalf("got %d slots after booking, want 7", len(slots))
	}
	for i, s := range slots {
		if s.StartTime == availability.MustClock("10:00") {
			t.Errorf("booked slot 10:00 still offered")
		}
		if i > 0 && slots[i-1].StartTime >= s.StartTime {
			t.Errorf("slots out of order at %d", i)
		}
	}

	f.clock.Set(startOf(t, "12:30"))
	slots, err = f.svc.GetAvailableSlots(ctx, f.provider.ID, monday)
	if err != nil {
		t.Fatalf("GetAvailableSlots: %v", err)
	}
	if len(slots) != 4 || slots[0].StartTime != availability.MustClock("13:00") {
		t.Errorf("slots after 12:30 = %v, want 13:00..16:00", slots)
	}
}

func TestGetAvailableSlots_NoSchedule(t *testing.T) {
	f := newFixture(t)

	slots, err := f.svc.GetAvailableSlots(context.Background(), f.provider.ID, monday.AddDays(1))
	if err != nil {
		t.Fatalf("GetAvailableSlots: %v", err)
	}
	if slots == nil || len(slots) != 0 {
		t.Errorf("slots = %v, want empty", slots)
	}

	if _, err := f.svc.GetAvailableSlots(context.Background(), uuid.New(), monday); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown provider err = %v, want ErrNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// CreateBooking
// ---------------------------------------------------------------------------

func TestCreateBooking(t *testing.T) {
	f := newFixture(t)

	b := f.create(t, "09:00", "10:00")
	if b.Status != StatusPending || b.PaymentStatus != PaymentUnpaid {
		t.Errorf("status = %s/%s, want pending/unpaid", b.Status, b.PaymentStatus)
	}
	if b.Price != 9000 || b.Currency != "usd" || b.Timezone != testZone {
		t.Errorf("booking = %+v", b)
	}
	if b.UserID != f.client.ID || b.Version != 1 {
		t.Errorf("owner/version = %s/%d", b.UserID, b.Version)
	}

	f.drain(t)
	got, err := f.store.Get(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.MeetingProvisionStatus != ProvisionProvisioned || got.MeetingID == "" {
		t.Errorf("meeting = %q (%s), want provisioned", got.MeetingID, got.MeetingProvisionStatus)
	}
	if len(f.gw.invites) != 1 || f.gw.invites[0].JoinURL == "" {
		t.Errorf("invites = %+v, want one with join url", f.gw.invites)
	}
	if f.events.count(EventCreated) != 1 {
		t.Error("created event not published")
	}
}

func TestCreateBooking_Rejections(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		actor Actor
		req   CreateRequest
		want  error
	}{
		{
			name:  "off grid",
			actor: f.client,
			req:   CreateRequest{ProviderID: f.provider.ID, Date: monday, StartTime: availability.MustClock("09:30"), EndTime: availability.MustClock("10:30")},
			want:  ErrValidation,
		},
		{
			name:  "outside availability",
			actor: f.client,
			req:   CreateRequest{ProviderID: f.provider.ID, Date: monday, StartTime: availability.MustClock("17:00"), EndTime: availability.MustClock("18:00")},
			want:  ErrValidation,
		},
		{
			name:  "day without schedule",
			actor: f.client,
			req:   CreateRequest{ProviderID: f.provider.ID, Date: monday.AddDays(1), StartTime: availability.MustClock("09:00"), EndTime: availability.MustClock("10:00")},
			want:  ErrValidation,
		},
		{
			name:  "in the past",
			actor: f.client,
			req:   CreateRequest{ProviderID: f.provider.ID, Date: monday.AddDays(-14), StartTime: availability.MustClock("09:00"), EndTime: availability.MustClock("10:00")},
			want:  ErrValidation,
		},
		{
			name:  "missing date",
			actor: f.client,
			req:   CreateRequest{ProviderID: f.provider.ID, StartTime: availability.MustClock("09:00"), EndTime: availability.MustClock("10:00")},
			want:  ErrValidation,
		},
		{
			name:  "unknown provider",
			actor: f.client,
			req:   CreateRequest{ProviderID: uuid.New(), Date: monday, StartTime: availability.MustClock("09:00"), EndTime: availability.MustClock("10:00")},
			want:  ErrNotFound,
		},
		{
			name:  "provider cannot book",
			actor: f.provider,
			req:   CreateRequest{ProviderID: f.provider.ID, Date: monday, StartTime: availability.MustClock("09:00"), EndTime: availability.MustClock("10:00")},
			want:  ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateBooking(context.Background(), tt.actor, tt.req)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCreateBooking_ConcurrentSameSlot(t *testing.T) {
	f := newFixture(t)
	const n = 25

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts []*SlotAlreadyBookedError
		others    []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.CreateBooking(context.Background(), Actor{ID: uuid.New(), Role: RoleClient}, CreateRequest{
				ProviderID: f.provider.ID,
				Date:       monday,
				StartTime:  availability.MustClock("11:00"),
				EndTime:    availability.MustClock("12:00"),
			})

			mu.Lock()
			defer mu.Unlock()
			var conflict *SlotAlreadyBookedError
			switch {
			case err == nil:
				successes++
			case errors.As(err, &conflict):
				conflicts = append(conflicts, conflict)
			default:
				others = append(others, err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Errorf("successes = %d, want 1", successes)
	}
	if len(conflicts) != n-1 {
		t.Errorf("conflicts = %d, want %d (other errors: %v)", len(conflicts), n-1, others)
	}
	for _, c := range conflicts {
		if !errors.Is(c, ErrConflict) || c.Slot.StartTime != availability.MustClock("11:00") || c.Date != monday {
			t.Errorf("conflict = %+v", c)
			break
		}
	}

	active, err := f.store.ListActive(context.Background(), f.provider.ID, monday)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 1 {
		t.Errorf("active bookings = %d, want 1", len(active))
	}
}

func TestCreateBooking_VideoFailureIsIsolated(t *testing.T) {
	tests := []struct {
		name     string
		videoErr error
		want     ProvisionStatus
	}{
		{
			name:     "provider error",
			videoErr: &gateway.IntegrationError{Collaborator: gateway.CollaboratorVideo, Operation: "create_meeting", Err: errors.New("zoom: 500")},
			want:     ProvisionFailed,
		},
		{
			name:     "provider unavailable",
			videoErr: &gateway.IntegrationError{Collaborator: gateway.CollaboratorVideo, Operation: "create_meeting", Err: gateway.ErrUnavailable},
			want:     ProvisionSkipped,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.gw.videoErr = tt.videoErr

			b := f.create(t, "13:00", "14:00")
			if b.Status != StatusPending {
				t.Fatalf("status = %s, want pending", b.Status)
			}

			f.drain(t)
			got, err := f.svc.GetBooking(context.Background(), f.client, b.ID)
			if err != nil {
				t.Fatalf("GetBooking: %v", err)
			}
			if got.Status != StatusPending || got.MeetingProvisionStatus != tt.want {
				t.Errorf("got %s/%s, want pending/%s", got.Status, got.MeetingProvisionStatus, tt.want)
			}
			if len(f.gw.invites) != 1 {
				t.Errorf("invites = %d, want 1", len(f.gw.invites))
			}
		})
	}
}

// ---------------------------------------------------------------------------
// ConfirmBooking
// ---------------------------------------------------------------------------

func TestConfirmBooking_Idempotent(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, "09:00", "10:00")

	first := f.confirm(t, b.ID)
	second := f.confirm(t, b.ID)
	f.drain(t)

	for i, got := range []*Booking{first, second} {
		if got.Status != StatusConfirmed || got.PaymentStatus != PaymentPaid {
			t.Errorf("call %d: status = %s/%s", i+1, got.Status, got.PaymentStatus)
		}
	}
	if second.Version != first.Version {
		t.Errorf("replay changed version %d -> %d", first.Version, second.Version)
	}
	if n := f.events.count(EventConfirmed); n != 1 {
		t.Errorf("confirmed events = %d, want 1", n)
	}
	if len(f.reminders.scheduled) != 1 {
		t.Fatalf("reminders = %d, want 1", len(f.reminders.scheduled))
	}
	if want := startOf(t, "09:00").Add(-time.Hour); !f.reminders.scheduled[0].At.Equal(want) {
		t.Errorf("reminder at %v, want %v", f.reminders.scheduled[0].At, want)
	}
}

func TestConfirmBooking_Rejections(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.ConfirmBooking(context.Background(), PaymentCompleted{BookingID: uuid.New()}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown booking err = %v, want ErrNotFound", err)
	}

	b := f.create(t, "09:00", "10:00")
	if _, err := f.svc.CancelBooking(context.Background(), f.client, b.ID, "changed plans"); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if _, err := f.svc.ConfirmBooking(context.Background(), PaymentCompleted{BookingID: b.ID}); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("cancelled booking err = %v, want ErrInvalidTransition", err)
	}
}

// racingStore bumps the stored version once between Get and Update.
type racingStore struct {
	*MemoryStore
	once sync.Once
}

func (s *racingStore) Update(ctx context.Context, b *Booking) error {
	s.once.Do(func() {
		cur, err := s.MemoryStore.Get(ctx, b.ID)
		if err == nil {
			_ = s.MemoryStore.Update(ctx, cur)
		}
	})
	return s.MemoryStore.Update(ctx, b)
}

func TestConfirmBooking_RetriesVersionRace(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, "09:00", "10:00")
	f.drain(t)

	racing := &racingStore{MemoryStore: f.store}
	f.svc.(*engine).store = racing

	got, err := f.svc.ConfirmBooking(context.Background(), PaymentCompleted{BookingID: b.ID, PaymentRef: "pi_9"})
	if err != nil {
		t.Fatalf("ConfirmBooking: %v", err)
	}
	if got.Status != StatusConfirmed || got.PaymentReference != "pi_9" {
		t.Errorf("got %s ref %q", got.Status, got.PaymentReference)
	}
}

// ---------------------------------------------------------------------------
// CancelBooking
// ---------------------------------------------------------------------------

func TestCancelBooking_Window(t *testing.T) {
	tests := []struct {
		name    string
		before  time.Duration
		asOwner bool
		wantErr error
	}{
		{name: "client 24h01m before", before: 24*time.Hour + time.Minute, asOwner: true},
		{name: "client exactly 24h before", before: 24 * time.Hour, asOwner: true},
		{name: "client 23h59m before", before: 23*time.Hour + 59*time.Minute, asOwner: true, wantErr: ErrPolicyViolation},
		{name: "provider 1h before", before: time.Hour},
		{name: "provider after start", before: -10 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			b := f.create(t, "15:00", "16:00")
			start := startOf(t, "15:00")
			f.clock.Set(start.Add(-tt.before))

			actor := f.provider
			if tt.asOwner {
				actor = f.client
			}
			got, err := f.svc.CancelBooking(context.Background(), actor, b.ID, "conflict")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				var expired *WindowExpiredError
				if !errors.As(err, &expired) {
					t.Fatalf("err %T is not *WindowExpiredError", err)
				}
				if !expired.Start.Equal(start) || !expired.Cutoff.Equal(start.Add(-24*time.Hour)) {
					t.Errorf("start/cutoff = %v/%v", expired.Start, expired.Cutoff)
				}
				return
			}
			if err != nil {
				t.Fatalf("CancelBooking: %v", err)
			}
			if got.Status != StatusCancelled || got.CancelledAt == nil || got.CancelledByRole != actor.Role {
				t.Errorf("got %+v", got)
			}
			if got.CancelledBy == nil || *got.CancelledBy != actor.ID || got.CancellationReason != "conflict" {
				t.Errorf("cancelled by %v reason %q", got.CancelledBy, got.CancellationReason)
			}
		})
	}
}

func TestCancelBooking_SideEffectsAndSlotRelease(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.create(t, "10:00", "11:00")
	f.drain(t)

	if _, err := f.svc.CancelBooking(ctx, f.client, b.ID, ""); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	f.drain(t)

	if f.gw.deletes != 1 {
		t.Errorf("meeting deletes = %d, want 1", f.gw.deletes)
	}
	if len(f.gw.cancellations) != 1 {
		t.Errorf("cancellation notices = %d, want 1", len(f.gw.cancellations))
	}

	again := f.create(t, "10:00", "11:00")
	if again.ID == b.ID {
		t.Error("new booking reused the cancelled id")
	}

	if _, err := f.svc.CancelBooking(ctx, f.provider, b.ID, ""); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second cancel err = %v, want ErrInvalidTransition", err)
	}
}

func TestCancelBooking_Access(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, "10:00", "11:00")

	tests := []struct {
		name  string
		actor Actor
		want  error
	}{
		{name: "other client", actor: Actor{ID: uuid.New(), Role: RoleClient}, want: ErrForbidden},
		{name: "other provider", actor: Actor{ID: uuid.New(), Role: RoleProvider}, want: ErrForbidden},
		{name: "admin", actor: Actor{ID: uuid.New(), Role: RoleAdmin}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CancelBooking(context.Background(), tt.actor, b.ID, "")
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCancelBooking_LostRace(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, "10:00", "11:00")
	f.drain(t)
	f.svc.(*engine).store = &racingStore{MemoryStore: f.store}

	if _, err := f.svc.CancelBooking(context.Background(), f.client, b.ID, ""); !errors.Is(err, ErrStateChanged) {
		t.Errorf("err = %v, want ErrStateChanged", err)
	}
}

// ---------------------------------------------------------------------------
// RescheduleBooking
// ---------------------------------------------------------------------------

func reschedule(start, end string) RescheduleRequest {
	return RescheduleRequest{Date: monday, StartTime: availability.MustClock(start), EndTime: availability.MustClock(end)}
}

func TestRescheduleBooking_RoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.create(t, "10:00", "11:00")
	f.confirm(t, b.ID)
	f.drain(t)

	moved, err := f.svc.RescheduleBooking(ctx, f.client, b.ID, reschedule("14:00", "15:00"))
	if err != nil {
		t.Fatalf("reschedule out: %v", err)
	}
	back, err := f.svc.RescheduleBooking(ctx, f.client, b.ID, reschedule("10:00", "11:00"))
	if err != nil {
		t.Fatalf("reschedule back: %v", err)
	}
	f.drain(t)

	for _, got := range []*Booking{moved, back} {
		if got.ID != b.ID || got.Status != StatusConfirmed {
			t.Errorf("got id %s status %s", got.ID, got.Status)
		}
	}
	if moved.StartTime != availability.MustClock("14:00") || back.StartTime != availability.MustClock("10:00") {
		t.Errorf("starts = %s, %s", moved.StartTime, back.StartTime)
	}

	all, err := f.svc.ListBookings(ctx, Actor{Role: RoleAdmin}, ListFilter{})
	if err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("bookings = %d, want 1", len(all))
	}
	if f.gw.updates != 2 {
		t.Errorf("meeting updates = %d, want 2", f.gw.updates)
	}
	if f.events.count(EventRescheduled) != 2 {
		t.Errorf("rescheduled events = %d", f.events.count(EventRescheduled))
	}
}

func TestRescheduleBooking_DuringProvisioningMovesMeeting(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.gw.entered = make(chan struct{}, 1)
	f.gw.gate = make(chan struct{})
	release := sync.OnceFunc(func() { close(f.gw.gate) })
	t.Cleanup(release)

	b := f.create(t, "10:00", "11:00")
	<-f.gw.entered

	if _, err := f.svc.RescheduleBooking(ctx, f.client, b.ID, reschedule("14:00", "15:00")); err != nil {
		t.Fatalf("RescheduleBooking: %v", err)
	}

	// The reschedule effect sends its invite once it has given up on moving
	// the meeting that does not exist yet.
	deadline := time.Now().Add(5 * time.Second)
	for {
		f.gw.mu.Lock()
		n := len(f.gw.invites)
		f.gw.mu.Unlock()
		if n > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("reschedule invite was not sent")
		}
		time.Sleep(5 * time.Millisecond)
	}

	release()
	f.drain(t)

	got, err := f.store.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.StartTime != availability.MustClock("14:00") {
		t.Errorf("start = %s, want 14:00", got.StartTime)
	}
	if got.MeetingID != "m-1" || got.MeetingProvisionStatus != ProvisionProvisioned {
		t.Errorf("meeting = %q %s, want m-1 provisioned", got.MeetingID, got.MeetingProvisionStatus)
	}

	f.gw.mu.Lock()
	defer f.gw.mu.Unlock()
	if len(f.gw.meetingStarts) != 1 || f.gw.meetingStarts[0] != availability.MustClock("10:00") {
		t.Errorf("meetings created for %v, want [10:00]", f.gw.meetingStarts)
	}
	if len(f.gw.updateStarts) != 1 || f.gw.updateStarts[0] != availability.MustClock("14:00") {
		t.Errorf("meeting updates %v, want [14:00]", f.gw.updateStarts)
	}
}

func TestRescheduleBooking_SameSlotIsNoop(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, "10:00", "11:00")

	got, err := f.svc.RescheduleBooking(context.Background(), f.client, b.ID, reschedule("10:00", "11:00"))
	if err != nil {
		t.Fatalf("RescheduleBooking: %v", err)
	}
	if got.Version != b.Version {
		t.Errorf("version %d -> %d, want unchanged", b.Version, got.Version)
	}
}

func TestRescheduleBooking_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.create(t, "10:00", "11:00")
	f.create(t, "12:00", "13:00")

	var conflict *SlotAlreadyBookedError
	_, err := f.svc.RescheduleBooking(ctx, f.client, a.ID, reschedule("12:00", "13:00"))
	if !errors.As(err, &conflict) || conflict.Slot.StartTime != availability.MustClock("12:00") {
		t.Errorf("collision err = %v, want *SlotAlreadyBookedError for 12:00", err)
	}

	if _, err := f.svc.RescheduleBooking(ctx, f.client, a.ID, reschedule("10:15", "11:15")); !errors.Is(err, ErrValidation) {
		t.Errorf("off-grid err = %v, want ErrValidation", err)
	}

	f.clock.Set(startOf(t, "10:00").Add(-2 * time.Hour))
	if _, err := f.svc.RescheduleBooking(ctx, f.client, a.ID, reschedule("15:00", "16:00")); !errors.Is(err, ErrPolicyViolation) {
		t.Errorf("late client err = %v, want ErrPolicyViolation", err)
	}
	if _, err := f.svc.RescheduleBooking(ctx, f.provider, a.ID, reschedule("15:00", "16:00")); err != nil {
		t.Errorf("late provider reschedule: %v", err)
	}

	got, err := f.store.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.StartTime != availability.MustClock("15:00") {
		t.Errorf("start = %s, want 15:00", got.StartTime)
	}
}

// ---------------------------------------------------------------------------
// Completion
// ---------------------------------------------------------------------------

func TestCompleteBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pending := f.create(t, "09:00", "10:00")
	b := f.create(t, "10:00", "11:00")
	f.confirm(t, b.ID)

	if _, err := f.svc.CompleteBooking(ctx, f.provider, b.ID); !errors.Is(err, ErrValidation) {
		t.Errorf("before start err = %v, want ErrValidation", err)
	}

	f.clock.Set(startOf(t, "10:30"))
	if _, err := f.svc.CompleteBooking(ctx, f.client, b.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("client err = %v, want ErrForbidden", err)
	}
	if _, err := f.svc.CompleteBooking(ctx, f.provider, pending.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("pending err = %v, want ErrInvalidTransition", err)
	}

	got, err := f.svc.CompleteBooking(ctx, f.provider, b.ID)
	if err != nil {
		t.Fatalf("CompleteBooking: %v", err)
	}
	if got.Status != StatusCompleted || got.CompletedAt == nil {
		t.Errorf("got %s completed_at %v", got.Status, got.CompletedAt)
	}
	if _, err := f.svc.CancelBooking(ctx, f.provider, b.ID, ""); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("cancel completed err = %v, want ErrInvalidTransition", err)
	}
}

func TestCompleteElapsed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	early := f.create(t, "09:00", "10:00")
	late := f.create(t, "16:00", "17:00")
	pending := f.create(t, "11:00", "12:00")
	f.confirm(t, early.ID)
	f.confirm(t, late.ID)

	f.clock.Set(startOf(t, "12:00"))
	n, err := f.svc.CompleteElapsed(ctx)
	if err != nil {
		t.Fatalf("CompleteElapsed: %v", err)
	}
	if n != 1 {
		t.Errorf("completed = %d, want 1", n)
	}

	want := map[uuid.UUID]Status{early.ID: StatusCompleted, late.ID: StatusConfirmed, pending.ID: StatusPending}
	for id, status := range want {
		got, err := f.store.Get(ctx, id)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Status != status {
			t.Errorf("%s status = %s, want %s", got.StartTime, got.Status, status)
		}
	}
}

// ---------------------------------------------------------------------------
// Payment
// ---------------------------------------------------------------------------

func TestStartCheckout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.create(t, "09:00", "10:00")

	if _, err := f.svc.StartCheckout(ctx, f.provider, b.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("provider err = %v, want ErrForbidden", err)
	}

	co, err := f.svc.StartCheckout(ctx, f.client, b.ID)
	if err != nil {
		t.Fatalf("StartCheckout: %v", err)
	}
	if co.RedirectURL == "" {
		t.Error("empty redirect url")
	}
	req := f.gw.checkouts[0]
	if req.Amount != 9000 || req.Currency != "usd" || req.CustomerEmail != "sam@example.com" {
		t.Errorf("checkout request = %+v", req)
	}

	f.confirm(t, b.ID)
	if _, err := f.svc.StartCheckout(ctx, f.client, b.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("paid booking err = %v, want ErrInvalidTransition", err)
	}
}

func TestRefundBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	unpaid := f.create(t, "09:00", "10:00")
	if _, err := f.svc.CancelBooking(ctx, f.client, unpaid.ID, ""); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}
	if _, err := f.svc.RefundBooking(ctx, f.client, unpaid.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("unpaid err = %v, want ErrInvalidTransition", err)
	}

	paid := f.create(t, "10:00", "11:00")
	f.confirm(t, paid.ID)
	if _, err := f.svc.RefundBooking(ctx, f.client, paid.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("active booking err = %v, want ErrInvalidTransition", err)
	}
	if _, err := f.svc.CancelBooking(ctx, f.provider, paid.ID, "provider sick"); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	got, err := f.svc.RefundBooking(ctx, f.client, paid.ID)
	if err != nil {
		t.Fatalf("RefundBooking: %v", err)
	}
	if got.PaymentStatus != PaymentRefunded || got.RefundID != "re_pi_1" {
		t.Errorf("payment = %s refund %q", got.PaymentStatus, got.RefundID)
	}
	if got.Status != StatusCancelled {
		t.Errorf("status = %s, want cancelled", got.Status)
	}
}

func TestRefundBooking_GatewayFailureLeavesState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.create(t, "10:00", "11:00")
	f.confirm(t, b.ID)
	if _, err := f.svc.CancelBooking(ctx, f.client, b.ID, ""); err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	f.gw.refundErr = &gateway.IntegrationError{Collaborator: gateway.CollaboratorPayment, Operation: "refund", Err: errors.New("card_declined")}
	if _, err := f.svc.RefundBooking(ctx, f.client, b.ID); !errors.Is(err, gateway.ErrIntegration) {
		t.Fatalf("err = %v, want ErrIntegration", err)
	}
	got, _ := f.store.Get(ctx, b.ID)
	if got.PaymentStatus != PaymentPaid {
		t.Errorf("payment status = %s, want paid", got.PaymentStatus)
	}
}

// ---------------------------------------------------------------------------
// Reads and reminders
// ---------------------------------------------------------------------------

func TestGetAndListBookings_Access(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.create(t, "09:00", "10:00")
	f.create(t, "10:00", "11:00")

	if _, err := f.svc.GetBooking(ctx, f.provider, b.ID); err != nil {
		t.Errorf("provider read: %v", err)
	}
	if _, err := f.svc.GetBooking(ctx, Actor{ID: uuid.New(), Role: RoleClient}, b.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger err = %v, want ErrForbidden", err)
	}
	if _, err := f.svc.GetBooking(ctx, f.client, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing err = %v, want ErrNotFound", err)
	}

	other := Actor{ID: uuid.New(), Role: RoleClient}
	mine, err := f.svc.ListBookings(ctx, other, ListFilter{ProviderID: &f.provider.ID})
	if err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
	if len(mine) != 0 {
		t.Errorf("stranger sees %d bookings", len(mine))
	}

	theirs, err := f.svc.ListBookings(ctx, f.provider, ListFilter{})
	if err != nil {
		t.Fatalf("ListBookings: %v", err)
	}
	if len(theirs) != 2 || theirs[0].StartTime != availability.MustClock("10:00") {
		t.Errorf("provider list = %d bookings", len(theirs))
	}

	bogus := Status("archived")
	if _, err := f.svc.ListBookings(ctx, f.client, ListFilter{Status: &bogus}); !errors.Is(err, ErrValidation) {
		t.Errorf("bad status err = %v, want ErrValidation", err)
	}
}

func TestSendReminder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.create(t, "10:00", "11:00")
	f.confirm(t, b.ID)

	if err := f.svc.SendReminder(ctx, b.ID, monday, availability.MustClock("10:00")); err != nil {
		t.Fatalf("SendReminder: %v", err)
	}
	if len(f.gw.reminders) != 1 {
		t.Fatalf("reminders sent = %d, want 1", len(f.gw.reminders))
	}

	if _, err := f.svc.RescheduleBooking(ctx, f.client, b.ID, reschedule("14:00", "15:00")); err != nil {
		t.Fatalf("RescheduleBooking: %v", err)
	}
	if err := f.svc.SendReminder(ctx, b.ID, monday, availability.MustClock("10:00")); err != nil {
		t.Fatalf("stale SendReminder: %v", err)
	}
	if err := f.svc.SendReminder(ctx, uuid.New(), monday, availability.MustClock("10:00")); err != nil {
		t.Fatalf("unknown SendReminder: %v", err)
	}
	if len(f.gw.reminders) != 1 {
		t.Errorf("reminders sent = %d, want still 1", len(f.gw.reminders))
	}
}

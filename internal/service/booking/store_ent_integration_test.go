//go:build integration

package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/internal/repo"
	"github.com/jasimarif/psychology-app/internal/service/availability"
	"github.com/jasimarif/psychology-app/pkg/crypto"
	"github.com/jasimarif/psychology-app/pkg/database/pgtest"
)

var testDB *pgtest.DB

func TestMain(m *testing.M) {
	pgtest.Main(m, &testDB)
}

const sealKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newEntStore(t *testing.T) (*repo.Client, Store) {
	t.Helper()
	client := testDB.Client(t)
	sealer, err := crypto.NewSealer(sealKey)
	if err != nil {
		t.Fatalf("NewSealer: %v", err)
	}
	return client, NewEntStore(client, sealer)
}

func seedProvider(t *testing.T, client *repo.Client) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := client.Provider.Create().
		SetID(id).
		SetFullName("Dr. Okafor").
		SetEmail("okafor@example.com").
		SetSessionPrice(12000).
		SetCurrency("usd").
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed provider: %v", err)
	}
	return id
}

func pendingBooking(providerID uuid.UUID, date availability.Date, start string) *Booking {
	c := availability.MustClock(start)
	now := time.Date(2026, time.October, 26, 12, 0, 0, 0, time.UTC)
	return &Booking{
		ID:                     uuid.New(),
		UserID:                 uuid.New(),
		ProviderID:             providerID,
		Date:                   date,
		StartTime:              c,
		EndTime:                c.Add(60),
		Timezone:               testZone,
		Price:                  12000,
		Currency:               "usd",
		Status:                 StatusPending,
		PaymentStatus:          PaymentUnpaid,
		MeetingProvisionStatus: ProvisionPending,
		Version:                1,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

func TestEntStore_ConcurrentInsertSameSlot(t *testing.T) {
	client, store := newEntStore(t)
	providerID := seedProvider(t, client)
	const n = 16

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		inserted  int
		conflicts int
		others    []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.Insert(context.Background(), pendingBooking(providerID, monday, "09:00"))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				inserted++
			case errors.Is(err, errDuplicateSlot):
				conflicts++
			default:
				others = append(others, err)
			}
		}()
	}
	wg.Wait()

	if inserted != 1 || conflicts != n-1 {
		t.Errorf("inserted = %d, conflicts = %d, want 1 and %d (other errors: %v)", inserted, conflicts, n-1, others)
	}
}

func TestEntStore_RoundTrip(t *testing.T) {
	client, store := newEntStore(t)
	ctx := context.Background()
	providerID := seedProvider(t, client)

	b := pendingBooking(providerID, monday, "10:00")
	b.Notes = "first session"
	b.MeetingPassword = "unused"
	if err := store.Insert(ctx, b); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if ok, err := store.SetMeeting(ctx, b.ID, MeetingUpdate{
		MeetingID: "m-1", JoinURL: "https://video.example/j/1", Password: "s3cret", Status: ProvisionProvisioned,
	}); err != nil || !ok {
		t.Fatalf("SetMeeting = %v, %v", ok, err)
	}

	raw, err := client.Booking.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("raw Get: %v", err)
	}
	if raw.MeetingPassword == "s3cret" {
		t.Error("meeting password stored in plaintext")
	}

	got, err := store.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Date != monday || got.StartTime != b.StartTime || got.EndTime != b.EndTime {
		t.Errorf("slot = %s %s-%s", got.Date, got.StartTime, got.EndTime)
	}
	if got.MeetingPassword != "s3cret" || got.MeetingID != "m-1" || got.MeetingProvisionStatus != ProvisionProvisioned {
		t.Errorf("meeting = %q %q %s", got.MeetingID, got.MeetingPassword, got.MeetingProvisionStatus)
	}
	if got.Notes != "first session" || got.CancelledBy != nil || got.CancelledAt != nil {
		t.Errorf("got %+v", got)
	}

	if _, err := store.Get(ctx, uuid.New()); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("missing Get err = %v", err)
	}
}

func TestEntStore_UpdateLostRace(t *testing.T) {
	client, store := newEntStore(t)
	ctx := context.Background()
	providerID := seedProvider(t, client)

	b := pendingBooking(providerID, monday, "11:00")
	if err := store.Insert(ctx, b); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	first, _ := store.Get(ctx, b.ID)
	second, _ := store.Get(ctx, b.ID)

	first.Status = StatusConfirmed
	first.PaymentStatus = PaymentPaid
	if err := store.Update(ctx, first); err != nil {
		t.Fatalf("first Update: %v", err)
	}
	if first.Version != 2 {
		t.Errorf("version = %d, want 2", first.Version)
	}

	by := uuid.New()
	at := time.Date(2026, time.October, 27, 9, 0, 0, 0, time.UTC)
	second.Status = StatusCancelled
	second.CancelledBy = &by
	second.CancelledAt = &at
	if err := store.Update(ctx, second); !errors.Is(err, errVersionMismatch) {
		t.Fatalf("stale Update err = %v, want errVersionMismatch", err)
	}

	got, err := store.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != StatusConfirmed || got.Version != 2 || got.CancelledBy != nil {
		t.Errorf("after lost race: status %s version %d cancelled_by %v", got.Status, got.Version, got.CancelledBy)
	}

	ghost := pendingBooking(providerID, monday, "15:00")
	if err := store.Update(ctx, ghost); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("Update of missing booking err = %v, want ErrBookingNotFound", err)
	}
}

func TestEntStore_SlotIndexFollowsStatus(t *testing.T) {
	client, store := newEntStore(t)
	ctx := context.Background()
	providerID := seedProvider(t, client)

	a := pendingBooking(providerID, monday, "12:00")
	b := pendingBooking(providerID, monday, "13:00")
	for _, bk := range []*Booking{a, b} {
		if err := store.Insert(ctx, bk); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	b.StartTime, b.EndTime = a.StartTime, a.EndTime
	if err := store.Update(ctx, b); !errors.Is(err, errDuplicateSlot) {
		t.Fatalf("move onto held slot err = %v, want errDuplicateSlot", err)
	}

	now := time.Date(2026, time.October, 27, 9, 0, 0, 0, time.UTC)
	a.Status = StatusCancelled
	a.CancelledAt = &now
	if err := store.Update(ctx, a); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if ok, err := store.SetMeeting(ctx, a.ID, MeetingUpdate{MeetingID: "late", Status: ProvisionProvisioned}); err != nil || ok {
		t.Errorf("SetMeeting on cancelled = %v, %v; want false", ok, err)
	}

	if err := store.Insert(ctx, pendingBooking(providerID, monday, "12:00")); err != nil {
		t.Errorf("slot not released after cancel: %v", err)
	}

	active, err := store.ListActive(ctx, providerID, monday)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 2 || active[0].StartTime != availability.MustClock("12:00") {
		t.Errorf("active = %+v", active)
	}
}

func TestEntStore_ListFilters(t *testing.T) {
	client, store := newEntStore(t)
	ctx := context.Background()
	providerID := seedProvider(t, client)

	tuesday := monday.AddDays(1)
	early := pendingBooking(providerID, monday, "09:00")
	late := pendingBooking(providerID, tuesday, "09:00")
	late.UserID = early.UserID
	late.Status = StatusConfirmed
	for _, bk := range []*Booking{early, late} {
		if err := store.Insert(ctx, bk); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	confirmed := StatusConfirmed
	tests := []struct {
		name   string
		filter ListFilter
		want   []uuid.UUID
	}{
		{"by user newest first", ListFilter{UserID: &early.UserID}, []uuid.UUID{late.ID, early.ID}},
		{"by status", ListFilter{ProviderID: &providerID, Status: &confirmed}, []uuid.UUID{late.ID}},
		{"date range", ListFilter{ProviderID: &providerID, From: monday, To: monday}, []uuid.UUID{early.ID}},
		{"paged", ListFilter{ProviderID: &providerID, Page: 2, PerPage: 1}, []uuid.UUID{early.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d bookings, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("got[%d] = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}

	until, err := store.ListConfirmedUntil(ctx, tuesday)
	if err != nil {
		t.Fatalf("ListConfirmedUntil: %v", err)
	}
	found := false
	for _, bk := range until {
		if bk.ID == early.ID {
			t.Error("pending booking listed as confirmed")
		}
		found = found || bk.ID == late.ID
	}
	if !found {
		t.Error("confirmed booking missing from ListConfirmedUntil")
	}
}

func TestCreateBooking_ConcurrentSameSlotOnPostgres(t *testing.T) {
	client, store := newEntStore(t)
	ctx := context.Background()
	providerID := seedProvider(t, client)

	dir := NewEntDirectory(client)
	avail := availability.New(availability.NewEntStore(client), nil, 0)
	_, err := avail.SetTemplate(ctx, availability.Template{
		ProviderID:             providerID,
		SessionDurationMinutes: 60,
		Timezone:               testZone,
		Schedule: []availability.DaySchedule{{
			DayOfWeek: time.Monday,
			Ranges:    []availability.TimeRange{{Start: availability.MustClock("09:00"), End: availability.MustClock("17:00"), Active: true}},
		}},
	})
	if err != nil {
		t.Fatalf("SetTemplate: %v", err)
	}

	clock := &fakeClock{t: time.Date(2026, time.October, 26, 12, 0, 0, 0, time.UTC)}
	svc := New(store, dir, avail, &fakeGateway{}, Config{
		CancellationWindow: 24 * time.Hour,
		SideEffectTimeout:  time.Second,
	}, WithClock(clock.Now))
	t.Cleanup(func() {
		drainCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = svc.Drain(drainCtx)
	})

	const n = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
		others    []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateBooking(ctx, Actor{ID: uuid.New(), Role: RoleClient}, CreateRequest{
				ProviderID: providerID,
				Date:       monday,
				StartTime:  availability.MustClock("14:00"),
				EndTime:    availability.MustClock("15:00"),
			})

			mu.Lock()
			defer mu.Unlock()
			var conflict *SlotAlreadyBookedError
			switch {
			case err == nil:
				successes++
			case errors.As(err, &conflict):
				conflicts++
			default:
				others = append(others, err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 || conflicts != n-1 {
		t.Errorf("successes = %d, conflicts = %d, want 1 and %d (other errors: %v)", successes, conflicts, n-1, others)
	}
}

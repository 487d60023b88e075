package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/internal/service/availability"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusConfirmed, StatusPending, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			if got := canTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("canTransition = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckWindow_RecomputedFromNow(t *testing.T) {
	b := &Booking{
		UserID:    uuid.New(),
		Date:      availability.Date{Year: 2026, Month: time.March, Day: 9},
		StartTime: availability.MustClock("10:00"),
		EndTime:   availability.MustClock("11:00"),
		Timezone:  "UTC",
	}
	client := Actor{ID: b.UserID, Role: RoleClient}
	start := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)

	if err := checkWindow(b, client, start.Add(-48*time.Hour), 24*time.Hour, "cancellation"); err != nil {
		t.Errorf("early: %v", err)
	}
	err := checkWindow(b, client, start.Add(-time.Hour), 24*time.Hour, "cancellation")
	if !errors.Is(err, ErrPolicyViolation) {
		t.Fatalf("late err = %v, want ErrPolicyViolation", err)
	}
	if err := checkWindow(b, Actor{Role: RoleAdmin}, start.Add(time.Hour), 24*time.Hour, "cancellation"); err != nil {
		t.Errorf("admin: %v", err)
	}
	if err := checkWindow(b, client, start.Add(-3*time.Hour), 2*time.Hour, "reschedule"); err != nil {
		t.Errorf("narrow window: %v", err)
	}
}

func TestMemoryStore_VersionAndSlotChecks(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	providerID := uuid.New()
	date := availability.Date{Year: 2026, Month: time.March, Day: 9}

	mk := func(start string) *Booking {
		c := availability.MustClock(start)
		return &Booking{
			ID: uuid.New(), ProviderID: providerID, Date: date,
			StartTime: c, EndTime: c.Add(60), Status: StatusPending, Version: 1,
		}
	}

	a := mk("09:00")
	if err := s.Insert(ctx, a); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := s.Insert(ctx, mk("09:00")); !errors.Is(err, errDuplicateSlot) {
		t.Errorf("duplicate insert err = %v", err)
	}

	stale, _ := s.Get(ctx, a.ID)
	fresh, _ := s.Get(ctx, a.ID)
	fresh.Notes = "first"
	if err := s.Update(ctx, fresh); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if fresh.Version != 2 {
		t.Errorf("version = %d, want 2", fresh.Version)
	}
	stale.Notes = "second"
	if err := s.Update(ctx, stale); !errors.Is(err, errVersionMismatch) {
		t.Errorf("stale update err = %v, want errVersionMismatch", err)
	}

	b := mk("10:00")
	if err := s.Insert(ctx, b); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	b.StartTime, b.EndTime = a.StartTime, a.EndTime
	if err := s.Update(ctx, b); !errors.Is(err, errDuplicateSlot) {
		t.Errorf("colliding move err = %v, want errDuplicateSlot", err)
	}

	fresh.Status = StatusCancelled
	if err := s.Update(ctx, fresh); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if ok, err := s.SetMeeting(ctx, a.ID, MeetingUpdate{MeetingID: "m", Status: ProvisionProvisioned}); err != nil || ok {
		t.Errorf("SetMeeting on cancelled = %v, %v; want false", ok, err)
	}
	if err := s.Insert(ctx, mk("09:00")); err != nil {
		t.Errorf("slot not released after cancel: %v", err)
	}
}

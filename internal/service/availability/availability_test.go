package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestService_SetTemplate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := New(store, nil, 0)

	tmpl := template(60, DaySchedule{DayOfWeek: time.Monday, Ranges: []TimeRange{rng("09:00", "12:00")}})
	saved, err := svc.SetTemplate(ctx, tmpl)
	if err != nil {
		t.Fatalf("SetTemplate: %v", err)
	}
	if saved.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not set")
	}

	got, err := svc.Template(ctx, tmpl.ProviderID)
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	if got.SessionDurationMinutes != 60 || len(got.Schedule) != 1 {
		t.Errorf("Template = %+v", got)
	}

	_, slots, err := svc.Slots(ctx, tmpl.ProviderID, monday)
	if err != nil {
		t.Fatalf("Slots: %v", err)
	}
	if len(slots) != 3 {
		t.Errorf("got %d slots, want 3", len(slots))
	}
}

func TestService_SetTemplateRejectsInvalid(t *testing.T) {
	svc := New(NewMemoryStore(), nil, 0)

	bad := template(60, DaySchedule{DayOfWeek: time.Monday, Ranges: []TimeRange{rng("10:00", "09:00")}})
	if _, err := svc.SetTemplate(context.Background(), bad); !errors.Is(err, ErrInvalidAvailability) {
		t.Errorf("err = %v, want ErrInvalidAvailability", err)
	}

	noProvider := template(60)
	noProvider.ProviderID = uuid.Nil
	if _, err := svc.SetTemplate(context.Background(), noProvider); !errors.Is(err, ErrInvalidAvailability) {
		t.Errorf("err = %v, want ErrInvalidAvailability", err)
	}
}

func TestService_TemplateNotFound(t *testing.T) {
	svc := New(NewMemoryStore(), nil, time.Minute)
	if _, err := svc.Template(context.Background(), uuid.New()); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("err = %v, want ErrTemplateNotFound", err)
	}
}

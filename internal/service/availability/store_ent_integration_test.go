//go:build integration

package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/pkg/database/pgtest"
)

var testDB *pgtest.DB

func TestMain(m *testing.M) {
	pgtest.Main(m, &testDB)
}

func TestEntStore_UpsertTemplate(t *testing.T) {
	ctx := context.Background()
	client := testDB.Client(t)
	store := NewEntStore(client)

	tmpl := template(50,
		DaySchedule{DayOfWeek: time.Monday, Ranges: []TimeRange{rng("09:00", "12:00"), {Start: MustClock("13:00"), End: MustClock("15:00")}}},
	)
	tmpl.UpdatedAt = time.Date(2026, time.October, 26, 12, 0, 0, 0, time.UTC)

	if _, err := store.UpsertTemplate(ctx, tmpl); !errors.Is(err, ErrProviderNotFound) {
		t.Fatalf("unknown provider err = %v, want ErrProviderNotFound", err)
	}

	if _, err := client.Provider.Create().SetID(tmpl.ProviderID).Save(ctx); err != nil {
		t.Fatalf("seed provider: %v", err)
	}
	if _, err := store.GetTemplate(ctx, tmpl.ProviderID); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("GetTemplate before upsert err = %v", err)
	}

	if _, err := store.UpsertTemplate(ctx, tmpl); err != nil {
		t.Fatalf("UpsertTemplate: %v", err)
	}
	got, err := store.GetTemplate(ctx, tmpl.ProviderID)
	if err != nil {
		t.Fatalf("GetTemplate: %v", err)
	}
	if got.SessionDurationMinutes != 50 || len(got.Schedule) != 1 || len(got.Schedule[0].Ranges) != 2 {
		t.Fatalf("GetTemplate = %+v", got)
	}
	if got.Schedule[0].Ranges[1].Active {
		t.Error("inactive range came back active")
	}

	tmpl.SessionDurationMinutes = 30
	tmpl.Timezone = "Europe/Berlin"
	tmpl.Schedule = nil
	if _, err := store.UpsertTemplate(ctx, tmpl); err != nil {
		t.Fatalf("second UpsertTemplate: %v", err)
	}
	got, err = store.GetTemplate(ctx, tmpl.ProviderID)
	if err != nil {
		t.Fatalf("GetTemplate: %v", err)
	}
	if got.SessionDurationMinutes != 30 || got.Timezone != "Europe/Berlin" || len(got.Schedule) != 0 {
		t.Errorf("after overwrite = %+v", got)
	}

	if _, err := store.GetTemplate(ctx, uuid.New()); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("missing template err = %v", err)
	}
}

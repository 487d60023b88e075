package availability

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/internal/repo"
	entprovider "github.com/jasimarif/psychology-app/internal/repo/provider"
	entavail "github.com/jasimarif/psychology-app/internal/repo/provideravailability"
)

type entStore struct {
	db *repo.Client
}

// NewEntStore returns a Store backed by the provider_availability table.
func NewEntStore(db *repo.Client) Store {
	return &entStore{db: db}
}

func (s *entStore) GetTemplate(ctx context.Context, providerID uuid.UUID) (*Template, error) {
	row, err := s.db.ProviderAvailability.Get(ctx, providerID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("get availability template: %w", err)
	}

	t := Template{
		ProviderID:             row.ID,
		SessionDurationMinutes: row.SessionDurationMinutes,
		Timezone:               row.Timezone,
		UpdatedAt:              row.UpdatedAt,
	}
	if err := json.Unmarshal(row.Schedule, &t.Schedule); err != nil {
		return nil, fmt.Errorf("decode availability schedule: %w", err)
	}
	return &t, nil
}

func (s *entStore) UpsertTemplate(ctx context.Context, t Template) (*Template, error) {
	exists, err := s.db.Provider.Query().Where(entprovider.ID(t.ProviderID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check provider: %w", err)
	}
	if !exists {
		return nil, ErrProviderNotFound
	}

	if t.Schedule == nil {
		t.Schedule = []DaySchedule{}
	}
	schedule, err := json.Marshal(t.Schedule)
	if err != nil {
		return nil, fmt.Errorf("encode availability schedule: %w", err)
	}

	err = s.db.ProviderAvailability.Create().
		SetID(t.ProviderID).
		SetSessionDurationMinutes(t.SessionDurationMinutes).
		SetTimezone(t.Timezone).
		SetSchedule(schedule).
		SetUpdatedAt(t.UpdatedAt).
		OnConflictColumns(entavail.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("upsert availability template: %w", err)
	}
	return &t, nil
}
